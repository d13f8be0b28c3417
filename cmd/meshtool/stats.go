package main

import (
	"fmt"
	"os"

	"github.com/netisu/meshtool"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Print comprehensive statistics for a mesh",
	Long:  "Print the detected format, triangle count, unique vertex count, bounding-box diagonal and signed volume.",
	Args:  cobra.ExactArgs(1),
	Run:   runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) {
	filename := args[0]
	mesh, format := loadMesh(filename)

	diagonal, err := meshtool.Diagonal(mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	volume := meshtool.Volume(mesh)
	welded := mesh.Weld()

	fmt.Println("Statistics")
	fmt.Println("==========")
	fmt.Printf("File:            %s\n", filename)
	fmt.Printf("Format:          %s\n", format)
	fmt.Printf("Triangles:       %d\n", mesh.TriangleCount())
	fmt.Printf("Unique vertices: %d\n", len(welded.Vertices))
	fmt.Printf("Diagonal:        %.4f units\n", diagonal)
	fmt.Printf("Volume:          %.4f cubic units\n", volume)

	warnUnits(filename, volume, diagonal)
}

// warnUnits flags suspiciously tiny volumes: a model measured in meters or
// inches usually lands well below one cubic unit when millimeters were
// expected.
func warnUnits(filename string, volume, diagonal float64) {
	if volume >= 1 || volume <= -1 {
		return
	}
	fmt.Fprintf(os.Stderr, "\nWarning: the object in %q is very small and may be modeled in meters or inches\n", filename)
	fmt.Fprintf(os.Stderr, "Warning: consider scaling it, e.g.: meshtool scale %s %.2f\n", filename, diagonal*1000)
}
