// Package policy decides, per dataset column, which optimization direction
// applies and whether a column pair is classified at all.
//
// A Policy is usually loaded from YAML:
//
//	default: minimize
//	maximize:
//	  - "robot viability rating*"
//	exclude:
//	  - index
//	  - "Ru*"
//	id_column: index
//	metrics:
//	  - column: embodied carbon (kgCO2e)
//	    direction: minimize
//	markers: ["^", "s", "o"]
//
// Entries in maximize, minimize and exclude are exact column names, or glob
// patterns when they contain '*' or '?'.
package policy

import (
	"strings"

	"github.com/goldsmith323/Robotic-Constructability/pkg/pareto"
	"github.com/huandu/go-clone"
	"github.com/mb0/glob"
	"github.com/rs/zerolog/log"
)

// Metric is a column shown in point profiles.
type Metric struct {
	Column    string           `json:"column" yaml:"column" jsonschema:"minLength=1"`
	Direction pareto.Direction `json:"direction,omitempty" yaml:"direction,omitempty" jsonschema:"enum=maximize,enum=max,enum=maximise,enum=bigger,enum=higher,enum=minimize,enum=min,enum=minimise,enum=smaller,enum=lower"`
}

// Policy maps columns to directions.
type Policy struct {
	// Default applies to columns not listed in Maximize or Minimize.
	Default  pareto.Direction `json:"default,omitempty" yaml:"default,omitempty" jsonschema:"enum=maximize,enum=max,enum=maximise,enum=bigger,enum=higher,enum=minimize,enum=min,enum=minimise,enum=smaller,enum=lower,description=Direction for columns not listed elsewhere"`
	Maximize []string         `json:"maximize,omitempty" yaml:"maximize,omitempty" jsonschema:"description=Columns where bigger is better"`
	Minimize []string         `json:"minimize,omitempty" yaml:"minimize,omitempty" jsonschema:"description=Columns where smaller is better"`
	// Exclude lists columns that are plotted but never Pareto-classified.
	Exclude  []string `json:"exclude,omitempty" yaml:"exclude,omitempty" jsonschema:"description=Columns that disable Pareto classification"`
	IDColumn string   `json:"id_column,omitempty" yaml:"id_column,omitempty" jsonschema:"description=Column identifying design points"`
	Metrics  []Metric `json:"metrics,omitempty" yaml:"metrics,omitempty" jsonschema:"description=Columns shown in point profiles"`
	Markers  []string `json:"markers,omitempty" yaml:"markers,omitempty" jsonschema:"description=Marker codes cycled through when highlighting points"`
}

const (
	wallRating = "robot viability rating [wall panels] (0 to 1)"
	roofRating = "robot viability rating [roof panels] (0 to 1)"
)

// Default returns the policy used by the robotic constructability study.
func Default() *Policy {
	return &Policy{
		Default:  pareto.Minimize,
		Maximize: []string{"robot viability rating*"},
		Exclude: []string{
			"index", "Ru1", "Ru2", "Ru3",
			"v1", "v2", "v3", "v4", "v5",
			"boundrary area (m2)", "length (m)", "width (m)",
		},
		IDColumn: "index",
		Metrics: []Metric{
			{Column: "embodied carbon (kgCO2e)", Direction: pareto.Minimize},
			{Column: "mobile robot travel time (min)", Direction: pareto.Minimize},
			{Column: wallRating, Direction: pareto.Maximize},
			{Column: roofRating, Direction: pareto.Maximize},
		},
		Markers: []string{"^", "s", "o", "P", "X", "v"},
	}
}

// Clone returns a deep copy.
func (p *Policy) Clone() *Policy {
	return clone.Clone(p).(*Policy)
}

// Resolution is the outcome of resolving an x/y column pair.
type Resolution struct {
	X pareto.Direction
	Y pareto.Direction
	// Classify is false when either column is excluded.
	Classify bool
}

// Direction returns the direction for a single column.
func (p *Policy) Direction(column string) pareto.Direction {
	if matchAny(p.Maximize, column) {
		return pareto.Maximize
	}
	if matchAny(p.Minimize, column) {
		return pareto.Minimize
	}
	if p.Default.Valid() {
		return p.Default
	}
	return pareto.Minimize
}

// Excluded reports whether column disables classification.
func (p *Policy) Excluded(column string) bool {
	return matchAny(p.Exclude, column)
}

// Resolve returns the directions for an x/y pair.
func (p *Policy) Resolve(xColumn, yColumn string) Resolution {
	r := Resolution{
		X:        p.Direction(xColumn),
		Y:        p.Direction(yColumn),
		Classify: !p.Excluded(xColumn) && !p.Excluded(yColumn),
	}
	log.Debug().
		Str("x", xColumn).Str("x_direction", r.X.String()).
		Str("y", yColumn).Str("y_direction", r.Y.String()).
		Bool("classify", r.Classify).
		Msg("Resolved axis directions")
	return r
}

func matchAny(entries []string, column string) bool {
	for _, e := range entries {
		if e == column {
			return true
		}
		if !strings.ContainsAny(e, "*?") {
			continue
		}
		ok, err := glob.Match(e, column)
		if err != nil {
			log.Warn().Err(err).Str("pattern", e).Msg("Invalid column pattern")
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
