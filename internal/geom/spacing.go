package geom

import "math"

// Default parameters of the clustered point distribution. a0 governs the
// refinement near x=0, a1 near x=1.
const (
	DefaultClusterA0   = 0.0079
	DefaultClusterA1   = 0.96
	DefaultClusterBeta = 1.0
)

// CosineSpacing maps index i in [0, n-1] to x in [0, 1] with points
// clustered toward both ends. The map is normalized so that
// CosineSpacing(0, n, ...) = 0 and CosineSpacing(n-1, n, ...) = 1 exactly,
// and is strictly increasing in i.
func CosineSpacing(i, n int, a0, a1, beta float64) float64 {
	aa := math.Pow((1-math.Cos(a0*math.Pi))/2, beta)
	dd := math.Pow((1-math.Cos(a1*math.Pi))/2, beta) - aa
	yt := float64(i) / float64(n-1)
	a := math.Pi * (a0*(1-yt) + a1*yt)

	return (math.Pow((1-math.Cos(a))/2, beta) - aa) / dd
}

// ClusteredDistribution returns the default n-point distribution used for
// CST curves whenever the caller supplies none: cosine spacing with the
// default clustering parameters, refined at the leading and trailing edges.
func ClusteredDistribution(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = CosineSpacing(i, n, DefaultClusterA0, DefaultClusterA1, DefaultClusterBeta)
	}
	return x
}
