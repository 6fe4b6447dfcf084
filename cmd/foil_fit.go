package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aerogeom/gocst/internal/foil"
	"github.com/aerogeom/gocst/internal/surface"
)

var (
	foilFitFile  string
	foilFitOrder int
)

var foilFitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit CST coefficients to a sampled airfoil",
	Long: `Recover CST coefficients for the upper and lower surfaces of an
airfoil stored in a Tecplot .dat file (two zones, upper then lower), by
linear least squares. The trailing edge tail is detrended before
fitting, so finite-thickness trailing edges fit cleanly.

Example:
  gocst foil fit -f rae2822.dat -n 7`,
	RunE: runFoilFit,
}

func init() {
	foilCmd.AddCommand(foilFitCmd)

	foilFitCmd.Flags().StringVarP(&foilFitFile, "file", "f", "", "Path to the airfoil .dat file [required]")
	foilFitCmd.MarkFlagRequired("file")
	foilFitCmd.Flags().IntVarP(&foilFitOrder, "order", "n", 7, "Number of CST coefficients per surface")
}

func runFoilFit(cmd *cobra.Command, args []string) error {
	x, yu, yl, err := surface.ReadFoil(foilFitFile)
	if err != nil {
		return err
	}

	cstU, cstL, err := foil.FitFoil(x, yu, x, yl, foilFitOrder)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("CST FIT of %s (order %d):\n", foilFitFile, foilFitOrder)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  i\tupper\tlower\n")
	for i := range cstU {
		fmt.Fprintf(w, "  %d\t%+.6f\t%+.6f\n", i, cstU[i], cstL[i])
	}
	w.Flush()

	// Round-trip residual of the fit, sampled on the input distribution.
	tail := yu[len(x)-1] - yl[len(x)-1]
	af, err := foil.CSTFoil(len(x), cstU, cstL, x, nil, tail)
	if err != nil {
		return err
	}
	var rms float64
	for i := range x {
		du := af.YUpper[i] - yu[i]
		dl := af.YLower[i] - yl[i]
		rms += du*du + dl*dl
	}
	rms = math.Sqrt(rms / float64(2*len(x)))
	fmt.Printf("\n  RMS residual: %.3e\n\n", rms)

	return nil
}
