package pareto

import (
	"math"
	"math/rand"
	"testing"

	"github.com/huandu/go-clone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allDirections = [][2]Direction{
	{Maximize, Maximize},
	{Maximize, Minimize},
	{Minimize, Maximize},
	{Minimize, Minimize},
}

func TestClassifyEmpty(t *testing.T) {
	for _, dirs := range allDirections {
		got, err := Classify(nil, dirs[0], dirs[1])
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Len(t, got, 0)
	}
}

func TestClassifyTwoPoints(t *testing.T) {
	got, err := Classify([]Point{{1, 1}, {2, 2}}, Maximize, Maximize)
	require.NoError(t, err)
	assert.Equal(t, Mask{false, true}, got)

	got, err = Classify([]Point{{1, 1}, {2, 2}}, Minimize, Minimize)
	require.NoError(t, err)
	assert.Equal(t, Mask{true, false}, got)
}

func TestClassifyIncomparablePointsSurvive(t *testing.T) {
	got, err := Classify([]Point{{1, 2}, {2, 1}, {0, 0}}, Maximize, Maximize)
	require.NoError(t, err)
	assert.Equal(t, Mask{true, true, false}, got)
	assert.Equal(t, []int{0, 1}, got.Indices())
	assert.Equal(t, 2, got.Count())
}

func TestClassifyIdenticalPointsAllOnFront(t *testing.T) {
	points := []Point{{3, 4}, {3, 4}, {3, 4}, {3, 4}}
	for _, dirs := range [][2]Direction{{Maximize, Maximize}, {Minimize, Minimize}} {
		got, err := Classify(points, dirs[0], dirs[1])
		require.NoError(t, err)
		assert.Equal(t, Mask{true, true, true, true}, got, "directions %v", dirs)
	}
}

func TestClassifyTiedClustersKeepEachOther(t *testing.T) {
	points := []Point{{5, 1}, {5, 1}, {1, 5}, {1, 5}, {0, 0}, {0, 0}}
	got, err := Classify(points, Maximize, Maximize)
	require.NoError(t, err)
	assert.Equal(t, Mask{true, true, true, true, false, false}, got)
}

func TestClassifyEqualOnOneAxis(t *testing.T) {
	// (2,2) beats (2,1) on y only; weak dominance removes (2,1).
	got, err := Classify([]Point{{2, 1}, {2, 2}}, Maximize, Maximize)
	require.NoError(t, err)
	assert.Equal(t, Mask{false, true}, got)
}

func TestClassifyMixedDirectionAsymmetry(t *testing.T) {
	t.Run("x max, y min: tie on minimized axis does not dominate", func(t *testing.T) {
		// Point 1 is better on x and equal on y. Under the strict y rule it
		// does not eliminate point 0.
		got, err := Classify([]Point{{1, 5}, {2, 5}}, Maximize, Minimize)
		require.NoError(t, err)
		assert.Equal(t, Mask{true, true}, got)
	})

	t.Run("x max, y min: tie on maximized axis still dominates", func(t *testing.T) {
		got, err := Classify([]Point{{2, 5}, {2, 4}}, Maximize, Minimize)
		require.NoError(t, err)
		assert.Equal(t, Mask{false, true}, got)
	})

	t.Run("x min, y max: tie on minimized axis does not dominate", func(t *testing.T) {
		got, err := Classify([]Point{{5, 1}, {5, 2}}, Minimize, Maximize)
		require.NoError(t, err)
		assert.Equal(t, Mask{true, true}, got)
	})

	t.Run("x min, y max: tie on maximized axis still dominates", func(t *testing.T) {
		got, err := Classify([]Point{{5, 2}, {4, 2}}, Minimize, Maximize)
		require.NoError(t, err)
		assert.Equal(t, Mask{false, true}, got)
	})

	t.Run("identical points eliminate nobody", func(t *testing.T) {
		for _, dirs := range [][2]Direction{{Maximize, Minimize}, {Minimize, Maximize}} {
			got, err := Classify([]Point{{1, 1}, {1, 1}}, dirs[0], dirs[1])
			require.NoError(t, err)
			assert.Equal(t, Mask{true, true}, got)
		}
	})
}

func TestClassifyAxisSwapSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := randomPoints(rng, 150, 6)
	swapped := make([]Point, len(points))
	for i, p := range points {
		swapped[i] = Point{X: p.Y, Y: p.X}
	}

	for _, dirs := range [][2]Direction{{Maximize, Maximize}, {Minimize, Minimize}} {
		a, err := Classify(points, dirs[0], dirs[1])
		require.NoError(t, err)
		b, err := Classify(swapped, dirs[1], dirs[0])
		require.NoError(t, err)
		assert.Equal(t, a.Indices(), b.Indices())
	}
}

func TestClassifyIsIdempotentAndDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := randomPoints(rng, 80, 10)
	snapshot := clone.Clone(points).([]Point)

	for _, dirs := range allDirections {
		first, err := Classify(points, dirs[0], dirs[1])
		require.NoError(t, err)
		second, err := Classify(points, dirs[0], dirs[1])
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, first, len(points))
	}
	assert.Equal(t, snapshot, points)
}

func TestClassifyMatchesBruteForceDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		points := randomPoints(rng, 1+rng.Intn(60), 5)
		for _, dirs := range allDirections {
			got, err := Classify(points, dirs[0], dirs[1])
			require.NoError(t, err)
			for i := range points {
				want := true
				for j := range points {
					if i != j && Dominates(points[j], points[i], dirs[0], dirs[1]) {
						want = false
					}
				}
				require.Equal(t, want, got[i], "trial %d point %d directions %v", trial, i, dirs)
			}
		}
	}
}

func TestClassifyFrontPointsAreNotDominatedByEachOther(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	points := randomPoints(rng, 200, 20)
	for _, dirs := range [][2]Direction{{Maximize, Maximize}, {Minimize, Minimize}} {
		got, err := Classify(points, dirs[0], dirs[1])
		require.NoError(t, err)
		front := got.Indices()
		require.NotEmpty(t, front)
		for _, a := range front {
			for _, b := range front {
				assert.False(t, Dominates(points[a], points[b], dirs[0], dirs[1]))
			}
		}
	}
}

func TestClassifyNaNIsNeverDominated(t *testing.T) {
	nan := math.NaN()
	points := []Point{{nan, 0}, {10, 10}, {0, nan}, {1, 1}}
	got, err := Classify(points, Maximize, Maximize)
	require.NoError(t, err)
	assert.Equal(t, Mask{true, true, true, false}, got)
}

func TestClassifyRejectsInvalidDirections(t *testing.T) {
	_, err := Classify([]Point{{1, 1}}, Direction("sideways"), Maximize)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Classify(nil, Maximize, Direction(""))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClassifyColumns(t *testing.T) {
	got, err := ClassifyColumns([]float64{1, 2, 0}, []float64{2, 1, 0}, Maximize, Maximize)
	require.NoError(t, err)
	assert.Equal(t, Mask{true, true, false}, got)

	_, err = ClassifyColumns([]float64{1, 2}, []float64{1}, Maximize, Maximize)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPointsFromRows(t *testing.T) {
	points, err := PointsFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 2}, {3, 4}}, points)

	_, err = PointsFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = PointsFromRows([][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// randomPoints draws integer-valued coordinates so ties are common.
func randomPoints(rng *rand.Rand, n, span int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: float64(rng.Intn(span)), Y: float64(rng.Intn(span))}
	}
	return points
}
