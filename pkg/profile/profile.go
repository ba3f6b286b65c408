// Package profile scores one design point against the rest of its dataset,
// metric by metric, as normalised "goodness" bars.
package profile

import (
	"encoding/json"
	"math"

	"github.com/goldsmith323/Robotic-Constructability/pkg/dataset"
	"github.com/goldsmith323/Robotic-Constructability/pkg/pareto"
	"github.com/goldsmith323/Robotic-Constructability/pkg/policy"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// DefaultBarWidth matches the bar length of the study's point popups.
const DefaultBarWidth = 100.0

// Bar is one metric of a profile.
type Bar struct {
	Column    string           `json:"column" yaml:"column"`
	Direction pareto.Direction `json:"direction" yaml:"direction"`
	Value     float64          `json:"value" yaml:"value"`
	// Min and Max ignore NaN and infinite cells.
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
	// Normalized is (Value-Min)/(Max-Min), 0 for constant columns and
	// non-finite values.
	Normalized float64 `json:"normalized" yaml:"normalized"`
	// Ratio is Normalized for maximized metrics and 1-Normalized otherwise,
	// so 1 is always best.
	Ratio float64 `json:"ratio" yaml:"ratio"`
	Width float64 `json:"width" yaml:"width"`
}

// MarshalJSON writes non-finite values and bounds as null.
func (b Bar) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Column     string           `json:"column"`
		Direction  pareto.Direction `json:"direction"`
		Value      *float64         `json:"value"`
		Min        *float64         `json:"min"`
		Max        *float64         `json:"max"`
		Normalized float64          `json:"normalized"`
		Ratio      float64          `json:"ratio"`
		Width      float64          `json:"width"`
	}{b.Column, b.Direction, finite(b.Value), finite(b.Min), finite(b.Max), b.Normalized, b.Ratio, b.Width})
}

// Profile is the set of bars for one row.
type Profile struct {
	Row  int    `json:"row" yaml:"row"`
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Bars []Bar  `json:"bars" yaml:"bars"`
}

// Build computes the profile of row. Metrics whose column is missing from the
// table are skipped; non-numeric metric columns are an error.
func Build(t *dataset.Table, row int, metrics []policy.Metric, maxWidth float64) (*Profile, error) {
	if row < 0 || row >= t.Len() {
		return nil, errors.Wrapf(pareto.ErrInvalidInput, "row %d out of range [0, %d)", row, t.Len())
	}
	if maxWidth <= 0 {
		maxWidth = DefaultBarWidth
	}

	p := &Profile{Row: row}
	for _, m := range metrics {
		if !t.HasColumn(m.Column) {
			continue
		}
		values, err := t.Float64s(m.Column)
		if err != nil {
			return nil, errors.Wrapf(err, "metric %q", m.Column)
		}
		dir := m.Direction
		if !dir.Valid() {
			dir = pareto.Minimize
		}
		p.Bars = append(p.Bars, bar(m.Column, dir, values, row, maxWidth))
	}
	return p, nil
}

// bar scales values[row] between the finite extremes of the column. A
// non-finite value gets an empty bar.
func bar(column string, dir pareto.Direction, values []float64, row int, maxWidth float64) Bar {
	b := Bar{
		Column:    column,
		Direction: dir,
		Value:     values[row],
		Min:       math.NaN(),
		Max:       math.NaN(),
	}
	known := make([]float64, 0, len(values))
	for _, v := range values {
		if finite(v) != nil {
			known = append(known, v)
		}
	}
	if len(known) > 0 {
		b.Min, b.Max = floats.Min(known), floats.Max(known)
	}
	if finite(b.Value) == nil {
		return b
	}

	if b.Max > b.Min {
		b.Normalized = (b.Value - b.Min) / (b.Max - b.Min)
	}
	if dir == pareto.Maximize {
		b.Ratio = b.Normalized
	} else {
		b.Ratio = 1 - b.Normalized
	}
	b.Width = b.Ratio * maxWidth
	return b
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
