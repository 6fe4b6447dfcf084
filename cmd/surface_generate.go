package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aerogeom/gocst/internal/surface"
)

var (
	surfaceGenFile     string
	surfaceGenSplit    bool
	surfaceGenOnePiece bool
	surfaceGenTecplot  string
	surfaceGenPlot3D   string
	surfaceGenFoils    bool
)

var surfaceGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a lofted surface from a JSON definition",
	Long: `Build a 3D surface from the control sections defined in a JSON
file: every section airfoil is generated from its CST coefficients,
placed by chord/twist/leading edge, and adjacent sections are lofted
into surface patches.

Examples:
  gocst surface generate -f wing.json --tecplot wing.dat
  gocst surface generate -f wing.json --plot3d wing.grd --split`,
	RunE: runSurfaceGenerate,
}

func init() {
	surfaceCmd.AddCommand(surfaceGenerateCmd)

	surfaceGenerateCmd.Flags().StringVarP(&surfaceGenFile, "file", "f", "", "Path to the surface JSON definition [required]")
	surfaceGenerateCmd.MarkFlagRequired("file")

	surfaceGenerateCmd.Flags().BoolVar(&surfaceGenSplit, "split", false, "Generate separate upper and lower patches")
	surfaceGenerateCmd.Flags().BoolVar(&surfaceGenOnePiece, "one-piece", false, "Merge spanwise patches into one Tecplot zone")
	surfaceGenerateCmd.Flags().StringVar(&surfaceGenTecplot, "tecplot", "", "Write the surface to a Tecplot .dat file")
	surfaceGenerateCmd.Flags().StringVar(&surfaceGenPlot3D, "plot3d", "", "Write the surface to a plot3d .grd file")
	surfaceGenerateCmd.Flags().BoolVar(&surfaceGenFoils, "foils", false, "Also write every section airfoil to <name>-foil.dat")
}

func runSurfaceGenerate(cmd *cobra.Command, args []string) error {
	surf, err := surface.LoadFromFile(surfaceGenFile)
	if err != nil {
		return err
	}

	if err := surf.Generate(surfaceGenSplit); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("SURFACE %s:\n", surf.Name)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Sections:\t%d\n", len(surf.Secs))
	fmt.Fprintf(w, "  Patches:\t%d\n", len(surf.Patches))
	fmt.Fprintf(w, "  Points per surface:\t%d\n", surf.NN)
	fmt.Fprintf(w, "  Spanwise points:\t%d\n", surf.NS)
	for i, sec := range surf.Secs {
		fmt.Fprintf(w, "  Section %d:\tz=%.3f chord=%.3f twist=%.2f RLE=%.5f\n",
			i+1, sec.ZLE, sec.Chord, sec.Twist, sec.RLE)
	}
	w.Flush()
	fmt.Println()

	if surfaceGenFoils {
		fname := surf.Name + "-foil.dat"
		for i, sec := range surf.Secs {
			if err := surface.WriteFoil(fname, i, sec.XX, sec.YUpper, sec.YLower, true); err != nil {
				return err
			}
		}
		fmt.Printf("Section airfoils written to %s\n", fname)
	}

	if surfaceGenTecplot != "" {
		if err := surf.WriteTecplot(surfaceGenTecplot, surfaceGenOnePiece); err != nil {
			return err
		}
		fmt.Printf("Tecplot surface written to %s\n", surfaceGenTecplot)
	}

	if surfaceGenPlot3D != "" {
		if err := surf.WritePlot3D(surfaceGenPlot3D); err != nil {
			return err
		}
		fmt.Printf("plot3d surface written to %s\n", surfaceGenPlot3D)
	}

	return nil
}
