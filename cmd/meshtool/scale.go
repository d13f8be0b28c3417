package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/netisu/meshtool"
	"github.com/spf13/cobra"
)

var scaleOutput string

var scaleCmd = &cobra.Command{
	Use:   "scale [file] [target-diagonal]",
	Short: "Uniformly scale a mesh to a target bounding-box diagonal",
	Long: `Uniformly scale the mesh so that its bounding-box diagonal equals the
target length, and write the result in the same format as the input.
Without -o the output lands next to the input as <name>_scaled.<ext>.`,
	Args: cobra.ExactArgs(2),
	Run:  runScale,
}

func init() {
	rootCmd.AddCommand(scaleCmd)
	scaleCmd.Flags().StringVarP(&scaleOutput, "output", "o", "", "output file path")
}

func runScale(cmd *cobra.Command, args []string) {
	filename := args[0]
	target, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid target diagonal %q\n", args[1])
		os.Exit(1)
	}

	mesh, format := loadMesh(filename)
	diagonal, err := meshtool.Diagonal(mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Scaling: %.4f -> %.4f\n", diagonal, target)

	scaled, err := meshtool.Scale(mesh, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	output := scaleOutput
	if output == "" {
		output = derivedPath(filename, "_scaled")
	}
	if err := meshtool.WriteFile(output, scaled, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved: %s\n", output)
}

// derivedPath inserts a suffix before the input's extension:
// model.stl -> model_scaled.stl.
func derivedPath(input, suffix string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}
