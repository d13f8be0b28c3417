package main

import (
	"fmt"
	"os"

	"github.com/netisu/meshtool"
	"github.com/spf13/cobra"
)

var diagonalCmd = &cobra.Command{
	Use:   "diagonal [file]",
	Short: "Print the bounding-box diagonal of a mesh",
	Long: `Print the distance between the minimum and maximum corners of the
mesh's axis-aligned bounding box, in the input file's units.`,
	Args: cobra.ExactArgs(1),
	Run:  runDiagonal,
}

func init() {
	rootCmd.AddCommand(diagonalCmd)
}

func runDiagonal(cmd *cobra.Command, args []string) {
	mesh, _ := loadMesh(args[0])
	diagonal, err := meshtool.Diagonal(mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Diagonal: %.4f\n", diagonal)
}
