package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trianglesCmd = &cobra.Command{
	Use:   "triangles [file]",
	Short: "Print the triangle count of a mesh",
	Long:  "Print the total number of triangular faces in the mesh.",
	Args:  cobra.ExactArgs(1),
	Run:   runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)
}

func runTriangles(cmd *cobra.Command, args []string) {
	mesh, _ := loadMesh(args[0])
	fmt.Printf("Triangles: %d\n", mesh.TriangleCount())
}
