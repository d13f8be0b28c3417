package main

import (
	"fmt"

	"github.com/netisu/meshtool"
	"github.com/spf13/cobra"
)

var volumeCmd = &cobra.Command{
	Use:   "volume [file]",
	Short: "Print the signed volume of a mesh",
	Long: `Print the signed volume of the mesh in cubic input units. The value is
exact for closed, consistently wound meshes; a negative sign means the
triangles are wound inward.`,
	Args: cobra.ExactArgs(1),
	Run:  runVolume,
}

func init() {
	rootCmd.AddCommand(volumeCmd)
}

func runVolume(cmd *cobra.Command, args []string) {
	mesh, _ := loadMesh(args[0])
	fmt.Printf("Volume: %.4f\n", meshtool.Volume(mesh))
}
