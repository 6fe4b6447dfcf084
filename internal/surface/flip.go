package surface

import "strings"

// Flip reorients the generated patches and the plot center. axis lists
// 90-degree turns about the named axes ("+X", "-X", "+Y", "-Y", "+Z",
// "-Z", space separated, applied in order); plane lists mirror planes
// ("XY", "YZ", "ZX"). Flip is meant to run last, after Generate.
func (s *Surface) Flip(axis, plane string) {
	for _, a := range strings.Fields(axis) {
		switch a {
		case "+X":
			for i := range s.Patches {
				tmp := negated(s.Patches[i].Z)
				s.Patches[i].Z = s.Patches[i].Y
				s.Patches[i].Y = tmp
			}
			s.Center[1], s.Center[2] = -s.Center[2], s.Center[1]
		case "-X":
			for i := range s.Patches {
				tmp := negated(s.Patches[i].Y)
				s.Patches[i].Y = s.Patches[i].Z
				s.Patches[i].Z = tmp
			}
			s.Center[1], s.Center[2] = s.Center[2], -s.Center[1]
		case "+Y":
			for i := range s.Patches {
				tmp := negated(s.Patches[i].X)
				s.Patches[i].X = s.Patches[i].Z
				s.Patches[i].Z = tmp
			}
			s.Center[0], s.Center[2] = s.Center[2], -s.Center[0]
		case "-Y":
			for i := range s.Patches {
				tmp := negated(s.Patches[i].Z)
				s.Patches[i].Z = s.Patches[i].X
				s.Patches[i].X = tmp
			}
			s.Center[0], s.Center[2] = -s.Center[2], s.Center[0]
		case "+Z":
			for i := range s.Patches {
				tmp := negated(s.Patches[i].Y)
				s.Patches[i].Y = s.Patches[i].X
				s.Patches[i].X = tmp
			}
			s.Center[0], s.Center[1] = -s.Center[1], s.Center[0]
		case "-Z":
			for i := range s.Patches {
				tmp := negated(s.Patches[i].X)
				s.Patches[i].X = s.Patches[i].Y
				s.Patches[i].Y = tmp
			}
			s.Center[0], s.Center[1] = s.Center[1], -s.Center[0]
		default:
			log.Info("unknown flip axis, skipped", "axis", a)
		}
	}

	for _, p := range strings.Fields(plane) {
		switch p {
		case "XY":
			for i := range s.Patches {
				s.Patches[i].Z = negated(s.Patches[i].Z)
			}
			s.Center[2] = -s.Center[2]
		case "YZ":
			for i := range s.Patches {
				s.Patches[i].X = negated(s.Patches[i].X)
			}
			s.Center[0] = -s.Center[0]
		case "ZX":
			for i := range s.Patches {
				s.Patches[i].Y = negated(s.Patches[i].Y)
			}
			s.Center[1] = -s.Center[1]
		default:
			log.Info("unknown mirror plane, skipped", "plane", p)
		}
	}
}

func negated(v [][]float64) [][]float64 {
	out := make([][]float64, len(v))
	for i := range v {
		out[i] = make([]float64, len(v[i]))
		for j := range v[i] {
			out[i][j] = -v[i][j]
		}
	}
	return out
}
