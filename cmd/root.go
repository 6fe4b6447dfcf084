package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gocst",
	Short: "CST airfoil and surface modeling tool",
	Long: `gocst - parametric aerodynamic geometry with the CST method

A CLI tool that builds, perturbs, fits and validates airfoil and wing
geometry from Class-Shape-Transformation (CST) parameters.

This tool helps aerodynamicists:
  - Generate airfoils from CST coefficients with thickness and tail control
  - Fit CST coefficients to sampled airfoil coordinates
  - Apply local Gaussian / Hicks-Henne bump deformations
  - Check airfoil geometry against sanity rules
  - Loft multi-section 3D surfaces and export Tecplot / plot3d grids`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  gocst - CST airfoil and surface modeling tool")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • CST airfoil generation (thickness constraint, trailing edge tail)")
		fmt.Println("    • Least-squares CST coefficient fitting")
		fmt.Println("    • Gaussian and Hicks-Henne bump deformation")
		fmt.Println("    • Rule-based geometric validity checks")
		fmt.Println("    • Multi-section surface lofting with Tecplot / plot3d output")
		fmt.Println()
		fmt.Println("  Use 'gocst --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
