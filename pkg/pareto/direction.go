package pareto

import (
	"strings"

	"github.com/pkg/errors"
)

// Direction is the per-axis preference.
type Direction string

const (
	// Maximize means bigger values are better.
	Maximize Direction = "maximize"
	// Minimize means smaller values are better.
	Minimize Direction = "minimize"
)

// Valid reports whether d is one of the enumerated directions.
func (d Direction) Valid() bool {
	return d == Maximize || d == Minimize
}

func (d Direction) String() string {
	return string(d)
}

// Short returns "max" or "min", or the raw value for invalid directions.
func (d Direction) Short() string {
	switch d {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	default:
		return string(d)
	}
}

// ParseDirection accepts the canonical names plus a few aliases.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximise", "bigger", "higher":
		return Maximize, nil
	case "min", "minimize", "minimise", "smaller", "lower":
		return Minimize, nil
	default:
		return "", errors.Wrapf(ErrInvalidInput, "unknown direction %q", s)
	}
}

// UnmarshalText lets directions decode from YAML, JSON and flag values.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d), nil
}

func validateDirections(dirX, dirY Direction) error {
	if !dirX.Valid() {
		return errors.Wrapf(ErrInvalidInput, "x direction %q", string(dirX))
	}
	if !dirY.Valid() {
		return errors.Wrapf(ErrInvalidInput, "y direction %q", string(dirY))
	}
	return nil
}
