package resultset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmeanstree/core"
)

func TestWorstDistBeforeFull(t *testing.T) {
	r := NewKNN(3)
	assert.Equal(t, math.MaxFloat64, r.WorstDist())
	assert.False(t, r.Full())
}

func TestRetainsKClosest(t *testing.T) {
	r := NewKNN(2)
	r.AddPoint(5, core.PointID(0))
	r.AddPoint(1, core.PointID(1))
	r.AddPoint(3, core.PointID(2))
	r.AddPoint(0.5, core.PointID(3))

	require.True(t, r.Full())
	results := r.Results()
	require.Len(t, results, 2)
	assert.Equal(t, core.PointID(3), results[0].ID)
	assert.Equal(t, core.PointID(1), results[1].ID)
	assert.Equal(t, 0.5, results[0].Dist)
	assert.Equal(t, 1.0, results[1].Dist)
}

func TestWorstDistTracksRoot(t *testing.T) {
	r := NewKNN(1)
	r.AddPoint(2, core.PointID(0))
	assert.Equal(t, 2.0, r.WorstDist())
	r.AddPoint(1, core.PointID(1))
	assert.Equal(t, 1.0, r.WorstDist())
	r.AddPoint(5, core.PointID(2))
	assert.Equal(t, 1.0, r.WorstDist())
}

func TestZeroKIgnoresEverything(t *testing.T) {
	r := NewKNN(0)
	r.AddPoint(1, core.PointID(0))
	assert.True(t, r.Full())
	assert.Empty(t, r.Results())
}
