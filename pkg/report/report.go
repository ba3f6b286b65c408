// Package report turns a classified column pair into rows that can be
// rendered in several output formats.
package report

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/goldsmith323/Robotic-Constructability/pkg/highlight"
	"github.com/goldsmith323/Robotic-Constructability/pkg/pareto"
	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

// Row is one design point.
type Row struct {
	Index  int     `json:"index" yaml:"index"`
	ID     string  `json:"id" yaml:"id"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Front  bool    `json:"front" yaml:"front"`
	Marker string  `json:"marker,omitempty" yaml:"marker,omitempty"`
	Symbol string  `json:"symbol,omitempty" yaml:"symbol,omitempty"`
}

// MarshalJSON writes NaN and infinite coordinates as null.
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index  int      `json:"index"`
		ID     string   `json:"id"`
		X      *float64 `json:"x"`
		Y      *float64 `json:"y"`
		Front  bool     `json:"front"`
		Marker string   `json:"marker,omitempty"`
		Symbol string   `json:"symbol,omitempty"`
	}{r.Index, r.ID, finite(r.X), finite(r.Y), r.Front, r.Marker, r.Symbol})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Report is the outcome of classifying one column pair.
type Report struct {
	RunID      string           `json:"run_id" yaml:"run_id"`
	Source     string           `json:"source,omitempty" yaml:"source,omitempty"`
	XColumn    string           `json:"x_column" yaml:"x_column"`
	YColumn    string           `json:"y_column" yaml:"y_column"`
	XDirection pareto.Direction `json:"x_direction" yaml:"x_direction"`
	YDirection pareto.Direction `json:"y_direction" yaml:"y_direction"`
	// Classified is false for excluded column pairs; Front is then false on
	// every row.
	Classified bool `json:"classified" yaml:"classified"`
	FrontCount int  `json:"front_count" yaml:"front_count"`
	// TotalCount is the number of input points, including rows dropped by
	// FrontOnly.
	TotalCount int   `json:"total_count" yaml:"total_count"`
	Rows       []Row `json:"rows" yaml:"rows"`
}

// Input collects everything Build needs.
type Input struct {
	RunID      string
	Source     string
	XColumn    string
	YColumn    string
	XDirection pareto.Direction
	YDirection pareto.Direction
	Points     []pareto.Point
	IDs        []string
	// Mask is nil when the pair was not classified.
	Mask       pareto.Mask
	Highlights *highlight.Set
	FrontOnly  bool
}

// Build assembles a report. IDs and Mask, when set, must be parallel to Points.
func Build(in Input) (*Report, error) {
	if in.IDs != nil && len(in.IDs) != len(in.Points) {
		return nil, errors.Wrapf(pareto.ErrInvalidInput, "%d ids for %d points", len(in.IDs), len(in.Points))
	}
	if in.Mask != nil && len(in.Mask) != len(in.Points) {
		return nil, errors.Wrapf(pareto.ErrInvalidInput, "mask has %d entries for %d points", len(in.Mask), len(in.Points))
	}

	r := &Report{
		RunID:      in.RunID,
		Source:     in.Source,
		XColumn:    in.XColumn,
		YColumn:    in.YColumn,
		XDirection: in.XDirection,
		YDirection: in.YDirection,
		Classified: in.Mask != nil,
		TotalCount: len(in.Points),
		Rows:       make([]Row, 0, len(in.Points)),
	}
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	for i, p := range in.Points {
		row := Row{Index: i, X: p.X, Y: p.Y}
		if in.IDs != nil {
			row.ID = in.IDs[i]
		}
		if in.Mask != nil {
			row.Front = in.Mask[i]
		}
		if row.Front {
			r.FrontCount++
		}
		if in.Highlights != nil {
			if m, ok := in.Highlights.Marker(i); ok {
				row.Marker = m
				row.Symbol = highlight.Symbol(m)
			}
		}
		if in.FrontOnly && !row.Front && row.Marker == "" {
			continue
		}
		r.Rows = append(r.Rows, row)
	}
	return r, nil
}

// DefaultFileName derives "<x>_vs_<y>.<ext>" from the column names.
func DefaultFileName(r *Report, ext string) string {
	name := strcase.ToSnake(slug(r.XColumn)) + "_vs_" + strcase.ToSnake(slug(r.YColumn))
	return name + "." + strings.TrimPrefix(ext, ".")
}

// slug keeps letters, digits and spaces so units like "(kgCO2e)" do not leak
// punctuation into file names.
func slug(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
