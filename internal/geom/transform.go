package geom

import "math"

// Axis selects the rotation axis for Rotate3D. The positive axis
// direction defines the positive rotation angle.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Rotate3D rotates a 3D point sequence by angle (degrees) about an
// axis-parallel line through origin. Coordinate slices not involved in
// the rotation may be nil; the returned slices are copies.
func Rotate3D(x, y, z []float64, angle float64, origin [3]float64, axis Axis) (xr, yr, zr []float64) {
	cc := math.Cos(angle / 180 * math.Pi)
	ss := math.Sin(angle / 180 * math.Pi)

	xr = append([]float64(nil), x...)
	yr = append([]float64(nil), y...)
	zr = append([]float64(nil), z...)

	switch axis {
	case AxisX:
		for i := range y {
			yr[i] = origin[1] + (y[i]-origin[1])*cc - (z[i]-origin[2])*ss
			zr[i] = origin[2] + (y[i]-origin[1])*ss + (z[i]-origin[2])*cc
		}
	case AxisY:
		for i := range z {
			zr[i] = origin[2] + (z[i]-origin[2])*cc - (x[i]-origin[0])*ss
			xr[i] = origin[0] + (z[i]-origin[2])*ss + (x[i]-origin[0])*cc
		}
	case AxisZ:
		for i := range x {
			xr[i] = origin[0] + (x[i]-origin[0])*cc - (y[i]-origin[1])*ss
			yr[i] = origin[1] + (x[i]-origin[0])*ss + (y[i]-origin[1])*cc
		}
	}

	return xr, yr, zr
}

// TransformFoil applies chord scaling, twist rotation and leading edge
// translation to a unit airfoil.
//
//	scale:  chord length
//	rot:    twist angle in degrees about +z, nil for none
//	x0, y0: rotation and scaling center, nil for the leading edge
//	dx, dy: leading edge translation
//	proj:   keep the x-projection of the rotated chord equal to scale
//
// Returns the transformed upper and lower x and y sequences.
func TransformFoil(x, yu, yl []float64, scale float64, rot, x0, y0 *float64, dx, dy float64, proj bool) (xuNew, xlNew, yuNew, ylNew []float64) {
	n := len(x)
	xuNew = make([]float64, n)
	xlNew = make([]float64, n)
	yuNew = make([]float64, n)
	ylNew = make([]float64, n)

	for i := 0; i < n; i++ {
		xuNew[i] = dx + x[i]
		xlNew[i] = dx + x[i]
		yuNew[i] = dy + yu[i]
		ylNew[i] = dy + yl[i]
	}

	cx := xuNew[0]
	if x0 != nil {
		cx = *x0
	}
	cy := 0.5 * (yuNew[0] + ylNew[0])
	if y0 != nil {
		cy = *y0
	}

	// Scaling that keeps the projected chord length when the section is
	// twisted.
	rr := 1.0
	if proj && rot != nil {
		rr = math.Cos(*rot / 180 * math.Pi)
	}
	for i := 0; i < n; i++ {
		xuNew[i] = cx + (xuNew[i]-cx)*scale/rr
		xlNew[i] = cx + (xlNew[i]-cx)*scale/rr
		yuNew[i] = cy + (yuNew[i]-cy)*scale/rr
		ylNew[i] = cy + (ylNew[i]-cy)*scale/rr
	}

	if rot != nil {
		origin := [3]float64{cx, cy, 0}
		xuNew, yuNew, _ = Rotate3D(xuNew, yuNew, nil, *rot, origin, AxisZ)
		xlNew, ylNew, _ = Rotate3D(xlNew, ylNew, nil, *rot, origin, AxisZ)
	}

	return xuNew, xlNew, yuNew, ylNew
}
