package pareto

import (
	"github.com/pkg/errors"
)

// Mask marks, per input point, whether it is on the Pareto front.
type Mask []bool

// Indices returns the positions of the non-dominated points in input order.
func (m Mask) Indices() []int {
	out := make([]int, 0, len(m))
	for i, nd := range m {
		if nd {
			out = append(out, i)
		}
	}
	return out
}

// Count returns the number of non-dominated points.
func (m Mask) Count() int {
	n := 0
	for _, nd := range m {
		if nd {
			n++
		}
	}
	return n
}

// Classify returns the non-dominated mask for points.
// Complexity is O(n^2), which is fine for design studies of a few hundred points.
func Classify(points []Point, dirX, dirY Direction) (Mask, error) {
	dominates, err := ruleFor(dirX, dirY)
	if err != nil {
		return nil, err
	}
	nd := make(Mask, len(points))
	for i := range points {
		nd[i] = !dominated(points, i, dominates)
	}
	return nd, nil
}

// dominated reports whether any other point dominates points[i].
func dominated(points []Point, i int, dominates rule) bool {
	for j := range points {
		if i == j {
			continue
		}
		if dominates(points[j], points[i]) {
			return true
		}
	}
	return false
}

// ClassifyColumns classifies two parallel numeric columns.
func ClassifyColumns(xs, ys []float64, dirX, dirY Direction) (Mask, error) {
	points, err := Zip(xs, ys)
	if err != nil {
		return nil, err
	}
	return Classify(points, dirX, dirY)
}

// Zip pairs two equal-length columns into points.
func Zip(xs, ys []float64) ([]Point, error) {
	if len(xs) != len(ys) {
		return nil, errors.Wrapf(ErrInvalidInput, "column lengths differ: x has %d values, y has %d", len(xs), len(ys))
	}
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return points, nil
}

// PointsFromRows converts rows of scores into points. Every row must hold
// exactly two values.
func PointsFromRows(rows [][]float64) ([]Point, error) {
	points := make([]Point, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, errors.Wrapf(ErrInvalidInput, "row %d has %d values, expected 2", i, len(row))
		}
		points[i] = Point{X: row[0], Y: row[1]}
	}
	return points, nil
}
