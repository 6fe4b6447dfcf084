package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aerogeom/gocst/internal/foil"
	"github.com/aerogeom/gocst/internal/surface"
)

var (
	foilCheckFile string
	foilCheckRLE  float64
)

var checkRuleNames = [foil.NumValidityRules]string{
	"Negative thickness",
	"Max thickness location in [0.15, 0.75]",
	"Thickness distribution smoothness",
	"Surface curvature limit (x >= 0.1)",
	"Camber limit within [0.2, 0.7]",
	"Leading edge radius consistency",
	"Convex leading edge",
}

var foilCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an airfoil against geometric sanity rules",
	Long: `Evaluate the geometric validity rules (thickness, curvature,
camber, leading edge) against an airfoil read from a Tecplot .dat file.

Example:
  gocst foil check -f candidate.dat --rle 0.015`,
	RunE: runFoilCheck,
}

func init() {
	foilCmd.AddCommand(foilCheckCmd)

	foilCheckCmd.Flags().StringVarP(&foilCheckFile, "file", "f", "", "Path to the airfoil .dat file [required]")
	foilCheckCmd.MarkFlagRequired("file")
	foilCheckCmd.Flags().Float64Var(&foilCheckRLE, "rle", 0, "Leading edge radius (0: skip the radius rule)")
}

func runFoilCheck(cmd *cobra.Command, args []string) error {
	x, yu, yl, err := surface.ReadFoil(foilCheckFile)
	if err != nil {
		return err
	}

	report, err := foil.CheckValid(x, yu, yl, foilCheckRLE)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("VALIDITY REPORT for %s:\n", foilCheckFile)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	failed := 0
	for i, flag := range report {
		status := "PASS"
		if flag != 0 {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "  Rule %d:\t%s\t%s\n", i+1, checkRuleNames[i], status)
	}
	w.Flush()
	fmt.Println()

	if failed > 0 {
		fmt.Printf("%d of %d rules failed\n", failed, foil.NumValidityRules)
	} else {
		fmt.Println("All rules passed")
	}

	return nil
}
