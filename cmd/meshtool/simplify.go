package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/netisu/meshtool"
	"github.com/spf13/cobra"
)

var simplifyOutput string

var simplifyCmd = &cobra.Command{
	Use:   "simplify [file] [factor]",
	Short: "Reduce a mesh's triangle count",
	Long: `Decimate the mesh to roughly factor times its current triangle count,
with factor between 0 and 1, and write the result in the input's format.
Without -o the output lands next to the input as <name>_simplified.<ext>.`,
	Args: cobra.ExactArgs(2),
	Run:  runSimplify,
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
	simplifyCmd.Flags().StringVarP(&simplifyOutput, "output", "o", "", "output file path")
}

func runSimplify(cmd *cobra.Command, args []string) {
	filename := args[0]
	factor, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid factor %q\n", args[1])
		os.Exit(1)
	}

	mesh, format := loadMesh(filename)
	simplified, err := meshtool.Decimate(mesh, factor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Triangles: %d -> %d\n", mesh.TriangleCount(), simplified.TriangleCount())

	output := simplifyOutput
	if output == "" {
		output = derivedPath(filename, "_simplified")
	}
	if err := meshtool.WriteFile(output, simplified, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved: %s\n", output)
}
