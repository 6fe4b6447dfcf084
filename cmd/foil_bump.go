package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aerogeom/gocst/internal/foil"
	"github.com/aerogeom/gocst/internal/surface"
)

var (
	foilBumpFile   string
	foilBumpCenter float64
	foilBumpHeight float64
	foilBumpSpan   float64
	foilBumpSide   int
	foilBumpOrder  int
	foilBumpOutput string
)

var foilBumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Apply a local bump to an airfoil",
	Long: `Add a local bump (Gaussian away from the edges, Hicks-Henne near
them) to one surface of an airfoil read from a Tecplot .dat file. The
opposite surface is rescaled so the maximum thickness is conserved.
With --order the deformed airfoil is re-fitted to a CST representation
of that order.

The bump height is relative to the airfoil's maximum thickness.

Example:
  gocst foil bump -f base.dat --center 0.3 --height 0.05 --span 0.4 --side 1 -o bumped.dat`,
	RunE: runFoilBump,
}

func init() {
	foilCmd.AddCommand(foilBumpCmd)

	foilBumpCmd.Flags().StringVarP(&foilBumpFile, "file", "f", "", "Path to the airfoil .dat file [required]")
	foilBumpCmd.MarkFlagRequired("file")

	foilBumpCmd.Flags().Float64Var(&foilBumpCenter, "center", 0.5, "Chordwise bump center in (0,1)")
	foilBumpCmd.Flags().Float64Var(&foilBumpHeight, "height", 0.02, "Bump height relative to the maximum thickness, signed")
	foilBumpCmd.Flags().Float64Var(&foilBumpSpan, "span", 0.3, "Chordwise bump span")
	foilBumpCmd.Flags().IntVar(&foilBumpSide, "side", 1, "Surface: >0 upper, otherwise lower")
	foilBumpCmd.Flags().IntVar(&foilBumpOrder, "order", 0, "Re-fit the result to a CST of this order (0: keep raw)")
	foilBumpCmd.Flags().StringVarP(&foilBumpOutput, "output", "o", "", "Write the deformed airfoil to a Tecplot .dat file [required]")
	foilBumpCmd.MarkFlagRequired("output")
}

func runFoilBump(cmd *cobra.Command, args []string) error {
	x, yu, yl, err := surface.ReadFoil(foilBumpFile)
	if err != nil {
		return err
	}

	bump := foil.Bump{
		Center: foilBumpCenter,
		Height: foilBumpHeight,
		Span:   foilBumpSpan,
		Side:   foilBumpSide,
	}
	yuNew, ylNew, err := foil.BumpModify(x, yu, yl, []foil.Bump{bump}, foilBumpOrder)
	if err != nil {
		return err
	}

	if err := surface.WriteFoil(foilBumpOutput, 0, x, yuNew, ylNew, true); err != nil {
		return err
	}

	kind := "Gaussian"
	if foil.SelectBumpKind(bump.Center) == foil.BumpHicksHenne {
		kind = "Hicks-Henne"
	}
	fmt.Printf("%s bump at x=%.3f applied, result written to %s\n", kind, bump.Center, foilBumpOutput)

	return nil
}
