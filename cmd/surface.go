package cmd

import "github.com/spf13/cobra"

var surfaceCmd = &cobra.Command{
	Use:   "surface",
	Short: "Multi-section 3D surface lofting",
}

func init() {
	rootCmd.AddCommand(surfaceCmd)
}
