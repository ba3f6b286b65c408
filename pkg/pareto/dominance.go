package pareto

// Point is a single (x, y) score. Points have no identity beyond their index
// in the input slice.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// rule reports whether j dominates i.
type rule func(j, i Point) bool

func dominatesMaxMax(j, i Point) bool {
	return j.X >= i.X && j.Y >= i.Y && (j.X > i.X || j.Y > i.Y)
}

func dominatesMinMin(j, i Point) bool {
	return j.X <= i.X && j.Y <= i.Y && (j.X < i.X || j.Y < i.Y)
}

// Weak on the maximized x axis, strict on the minimized y axis.
func dominatesMaxMin(j, i Point) bool {
	return j.X >= i.X && j.Y < i.Y
}

// Strict on the minimized x axis, weak on the maximized y axis.
func dominatesMinMax(j, i Point) bool {
	return j.X < i.X && j.Y >= i.Y
}

func ruleFor(dirX, dirY Direction) (rule, error) {
	if err := validateDirections(dirX, dirY); err != nil {
		return nil, err
	}
	switch {
	case dirX == Maximize && dirY == Maximize:
		return dominatesMaxMax, nil
	case dirX == Maximize:
		return dominatesMaxMin, nil
	case dirY == Maximize:
		return dominatesMinMax, nil
	default:
		return dominatesMinMin, nil
	}
}

// Dominates returns true if a dominates b under the given directions.
// Invalid directions never dominate.
func Dominates(a, b Point, dirX, dirY Direction) bool {
	r, err := ruleFor(dirX, dirY)
	if err != nil {
		return false
	}
	return r(a, b)
}
