package pareto

import "github.com/pkg/errors"

// ErrInvalidInput is returned for malformed points, mismatched columns and
// unknown directions. It is always wrapped with details; match it with
// errors.Is.
var ErrInvalidInput = errors.New("invalid input")
