package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var foilCmd = &cobra.Command{
	Use:   "foil",
	Short: "Airfoil generation, fitting, deformation and checking",
}

func init() {
	rootCmd.AddCommand(foilCmd)
}

// parseCoefficients parses a comma-separated CST coefficient list.
func parseCoefficients(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	coef := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad coefficient %q: %w", p, err)
		}
		coef = append(coef, v)
	}
	return coef, nil
}
