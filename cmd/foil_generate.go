package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aerogeom/gocst/internal/diagram"
	"github.com/aerogeom/gocst/internal/foil"
	"github.com/aerogeom/gocst/internal/surface"
)

var (
	foilGenUpper     string
	foilGenLower     string
	foilGenPoints    int
	foilGenThickness float64
	foilGenTail      float64
	foilGenOutput    string
	foilGenPlot      string
	foilGenShowASCII bool
)

var foilGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an airfoil from CST coefficients",
	Long: `Build the upper and lower surfaces of an airfoil from CST
coefficients, optionally scaled to a target relative thickness and
opened to a trailing edge tail.

Examples:
  gocst foil generate -u 0.17,0.15,0.16,0.13,0.15,0.13,0.14 \
                      -l -0.17,-0.15,-0.16,-0.13,-0.15,-0.13,-0.14 \
                      --thickness 0.12 -o naca0012.dat
  gocst foil generate -u ... -l ... --plot foil.png`,
	RunE: runFoilGenerate,
}

func init() {
	foilCmd.AddCommand(foilGenerateCmd)

	foilGenerateCmd.Flags().StringVarP(&foilGenUpper, "upper", "u", "", "Upper surface CST coefficients, comma separated [required]")
	foilGenerateCmd.Flags().StringVarP(&foilGenLower, "lower", "l", "", "Lower surface CST coefficients, comma separated [required]")
	foilGenerateCmd.MarkFlagRequired("upper")
	foilGenerateCmd.MarkFlagRequired("lower")

	foilGenerateCmd.Flags().IntVarP(&foilGenPoints, "points", "n", 201, "Points per surface")
	foilGenerateCmd.Flags().Float64VarP(&foilGenThickness, "thickness", "t", 0, "Target relative maximum thickness (0: natural)")
	foilGenerateCmd.Flags().Float64Var(&foilGenTail, "tail", 0, "Relative trailing edge thickness")
	foilGenerateCmd.Flags().StringVarP(&foilGenOutput, "output", "o", "", "Write the airfoil to a Tecplot .dat file")
	foilGenerateCmd.Flags().StringVar(&foilGenPlot, "plot", "", "Export a profile diagram (png, svg, pdf)")
	foilGenerateCmd.Flags().BoolVar(&foilGenShowASCII, "ascii", false, "Sketch the profile in the terminal")
}

func runFoilGenerate(cmd *cobra.Command, args []string) error {
	cstU, err := parseCoefficients(foilGenUpper)
	if err != nil {
		return err
	}
	cstL, err := parseCoefficients(foilGenLower)
	if err != nil {
		return err
	}

	var thickness *float64
	if cmd.Flags().Changed("thickness") {
		thickness = &foilGenThickness
	}

	af, err := foil.CSTFoil(foilGenPoints, cstU, cstL, nil, thickness, foilGenTail)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("CST AIRFOIL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Points per surface:\t%d\n", foilGenPoints)
	fmt.Fprintf(w, "  CST order:\t%d\n", len(cstU)-1)
	fmt.Fprintf(w, "  Max thickness:\t%.6f\n", af.MaxThickness)
	fmt.Fprintf(w, "  Leading edge radius:\t%.6f\n", af.RLE)
	fmt.Fprintf(w, "  Trailing edge tail:\t%.6f\n", foilGenTail)
	w.Flush()
	fmt.Println()

	if foilGenShowASCII {
		fmt.Println(diagram.DrawASCIIFoil(af.X, af.YUpper, af.YLower, 72, 16))
	}

	if foilGenOutput != "" {
		if err := surface.WriteFoil(foilGenOutput, 0, af.X, af.YUpper, af.YLower, true); err != nil {
			return err
		}
		fmt.Printf("Airfoil written to %s\n", foilGenOutput)
	}

	if foilGenPlot != "" {
		thicknessDist, curvU, curvL, camber, err := foil.ThicknessCamberCurvature(af.X, af.YUpper, af.YLower)
		if err != nil {
			return err
		}
		data := diagram.FoilDiagramData{
			Name:           "CST airfoil",
			X:              af.X,
			YUpper:         af.YUpper,
			YLower:         af.YLower,
			Camber:         camber,
			Thickness:      thicknessDist,
			CurvatureUpper: curvU,
			CurvatureLower: curvL,
		}
		if err := diagram.ExportFoilDiagram(data, foilGenPlot); err != nil {
			return err
		}
		fmt.Printf("Diagram written to %s\n", foilGenPlot)
	}

	return nil
}
