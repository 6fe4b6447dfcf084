package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aerogeom/gocst/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocst",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gocst v%s\n", version.Version)
		fmt.Println("CST airfoil and surface modeling tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
