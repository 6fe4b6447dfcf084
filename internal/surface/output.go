package surface

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ansel1/merry"

	"github.com/aerogeom/gocst/internal/foil"
	"github.com/aerogeom/gocst/internal/geom"
)

// WriteFoil writes an airfoil to a Tecplot ASCII file as one upper and
// one lower zone. id 0 truncates the file and writes the variable
// header; id > 0 appends to an existing file. withInfo adds curvature,
// thickness and camber columns.
func WriteFoil(fname string, id int, x, yu, yl []float64, withInfo bool) error {
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if id == 0 {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	f, err := os.OpenFile(fname, flags, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if id == 0 {
		if withInfo {
			fmt.Fprintln(w, "Variables= X  Y  Curvature Thickness Camber")
		} else {
			fmt.Fprintln(w, "Variables= X  Y")
		}
	}

	var thickness, curvU, curvL, camber []float64
	if withInfo {
		thickness, curvU, curvL, camber, err = foil.ThicknessCamberCurvature(x, yu, yl)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "zone T=\"Upp-%d\" i= %d\n", id, len(x))
	for i := range x {
		fmt.Fprintf(w, "   %.9f  %.9f", x[i], yu[i])
		if withInfo {
			fmt.Fprintf(w, "  %.9f  %.9f  %.9f", curvU[i], thickness[i], camber[i])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "zone T=\"Low-%d\" i= %d\n", id, len(x))
	for i := range x {
		fmt.Fprintf(w, "   %.9f  %.9f", x[i], yl[i])
		if withInfo {
			fmt.Fprintf(w, "  %.9f  %.9f  %.9f", curvL[i], thickness[i], camber[i])
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}

// ReadFoil reads the first upper/lower zone pair from a Tecplot airfoil
// file written by WriteFoil. Only the first two columns are used; both
// zones must share the x-distribution.
func ReadFoil(fname string) (x, yu, yl []float64, err error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	var zones [][2][]float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "Variables") {
			continue
		}
		if strings.HasPrefix(line, "zone") {
			if len(zones) == 2 {
				break
			}
			zones = append(zones, [2][]float64{})
			continue
		}
		if len(zones) == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		xv, err1 := strconv.ParseFloat(fields[0], 64)
		yv, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return nil, nil, nil, merry.Errorf("bad data line in %s: %q", fname, line)
		}
		last := len(zones) - 1
		zones[last][0] = append(zones[last][0], xv)
		zones[last][1] = append(zones[last][1], yv)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, nil, err
	}

	if len(zones) != 2 || len(zones[0][0]) != len(zones[1][0]) {
		return nil, nil, nil, merry.Appendf(geom.ErrInvalidInput,
			"%s: expected two equal-sized airfoil zones", fname)
	}

	return zones[0][0], zones[0][1], zones[1][1], nil
}

// WriteTecplot writes the generated patches to a Tecplot ASCII file.
// With onePiece the spanwise patches are merged into one zone per side
// (or one zone total when not split), dropping the duplicated boundary
// stations between bays.
func (s *Surface) WriteTecplot(fname string, onePiece bool) error {
	if len(s.Patches) == 0 {
		return merry.New("surface has no patches, call Generate first")
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "Variables= X  Y  Z")

	if !onePiece {
		for isec, p := range s.Patches {
			ns := len(p.X)
			nn := len(p.X[0])
			switch {
			case s.Split && isec%2 == 0:
				fmt.Fprintf(w, "zone T=\"SecUpp %d\" i= %d j= %d\n", isec, nn, ns)
			case s.Split && isec%2 == 1:
				fmt.Fprintf(w, "zone T=\"SecLow %d\" i= %d j= %d\n", isec, nn, ns)
			default:
				fmt.Fprintf(w, "zone T=\"Section %d\" i= %d j= %d\n", isec, nn, ns)
			}
			writePatchRows(w, p, len(p.X))
		}
		return w.Flush()
	}

	nBays := len(s.Patches)
	nParts := 1
	if s.Split {
		nParts = 2
		nBays = len(s.Patches) / 2
	}
	nPoint := nBays*(s.NS-1) + 1

	for part := 0; part < nParts; part++ {
		nn := len(s.Patches[0].X[0])
		switch {
		case s.Split && part == 0:
			fmt.Fprintf(w, "zone T=\"SecUpp\" i= %d j= %d\n", nn, nPoint)
		case s.Split && part == 1:
			fmt.Fprintf(w, "zone T=\"SecLow\" i= %d j= %d\n", nn, nPoint)
		default:
			fmt.Fprintf(w, "zone T=\"Section\" i= %d j= %d\n", nn, nPoint)
		}

		lastBay := len(s.Patches) - 1
		if s.Split {
			lastBay = len(s.Patches) - 2
		}
		for isec, p := range s.Patches {
			if s.Split && isec%2 != part {
				continue
			}
			// All bays but the last drop their final station, the next
			// bay repeats it.
			rows := len(p.X)
			if isec < lastBay {
				rows--
			}
			writePatchRows(w, p, rows)
		}
	}

	return w.Flush()
}

func writePatchRows(w *bufio.Writer, p Patch, rows int) {
	for i := 0; i < rows; i++ {
		for j := range p.X[i] {
			fmt.Fprintf(w, "  %.9f   %.9f   %.9f\n", p.X[i][j], p.Y[i][j], p.Z[i][j])
		}
	}
}

// WritePlot3D writes the generated patches to a plot3d format .grd file:
// the patch count, the dimensions of each patch, then the X, Y and Z
// blocks of each patch, three values per line.
func (s *Surface) WritePlot3D(fname string) error {
	if len(s.Patches) == 0 {
		return merry.New("surface has no patches, call Generate first")
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", len(s.Patches))
	for _, p := range s.Patches {
		fmt.Fprintf(w, "%d %d 1\n", len(p.X[0]), len(p.X))
	}

	for _, p := range s.Patches {
		writePlot3DBlock(w, p.X)
		writePlot3DBlock(w, p.Y)
		writePlot3DBlock(w, p.Z)
	}

	return w.Flush()
}

func writePlot3DBlock(w *bufio.Writer, v [][]float64) {
	count := 0
	for i := range v {
		for j := range v[i] {
			fmt.Fprintf(w, " %.9f ", v[i][j])
			count++
			if count%3 == 0 {
				fmt.Fprintln(w)
			}
		}
	}
	if count%3 != 0 {
		fmt.Fprintln(w)
	}
}
