package main

import (
	"fmt"
	"os"

	"github.com/netisu/meshtool"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meshtool",
	Short: "A CLI tool for analyzing and scaling 3D mesh files",
	Long: `meshtool is a command-line tool for analyzing and manipulating 3D mesh files.
It supports binary STL, ASCII STL and Wavefront OBJ, detecting the format
from the file content.

Examples:
  # Get the volume of a mesh
  meshtool volume model.stl

  # Scale a mesh to a 100mm bounding-box diagonal
  meshtool scale input.obj 100 -o output.obj`,
	Version: "1.0.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadMesh decodes the given file or exits with a message.
func loadMesh(filename string) (*meshtool.Mesh, meshtool.Format) {
	mesh, format, err := meshtool.DecodeFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing mesh file: %v\n", err)
		os.Exit(1)
	}
	return mesh, format
}
