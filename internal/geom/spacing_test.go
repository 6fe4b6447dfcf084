package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSpacingEndpoints(t *testing.T) {
	for _, n := range []int{2, 5, 11, 101, 1001} {
		assert.Equal(t, 0.0, CosineSpacing(0, n, DefaultClusterA0, DefaultClusterA1, DefaultClusterBeta), "n=%d", n)
		assert.InDelta(t, 1.0, CosineSpacing(n-1, n, DefaultClusterA0, DefaultClusterA1, DefaultClusterBeta), 1e-15, "n=%d", n)
	}
}

func TestCosineSpacingStrictlyIncreasing(t *testing.T) {
	const n = 201
	prev := CosineSpacing(0, n, DefaultClusterA0, DefaultClusterA1, DefaultClusterBeta)
	for i := 1; i < n; i++ {
		cur := CosineSpacing(i, n, DefaultClusterA0, DefaultClusterA1, DefaultClusterBeta)
		assert.Greater(t, cur, prev, "i=%d", i)
		prev = cur
	}
}

func TestClusteredDistributionRefinesEnds(t *testing.T) {
	x := ClusteredDistribution(101)
	require.Len(t, x, 101)

	// The spacing near both ends must be tighter than in the middle.
	dLE := x[1] - x[0]
	dTE := x[100] - x[99]
	dMid := x[51] - x[50]
	assert.Less(t, dLE, dMid)
	assert.Less(t, dTE, dMid)
}
