package pareto

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minChunk keeps small inputs on a single goroutine.
const minChunk = 64

// Classifier holds a direction pair and splits the outer loop of the
// pairwise scan across workers. The zero Workers value uses GOMAXPROCS.
type Classifier struct {
	X       Direction
	Y       Direction
	Workers int
}

// NewClassifier returns a classifier for the given directions.
func NewClassifier(dirX, dirY Direction) *Classifier {
	return &Classifier{X: dirX, Y: dirY}
}

// Classify returns the same mask as the package-level Classify. The context
// is checked between chunks.
func (c *Classifier) Classify(ctx context.Context, points []Point) (Mask, error) {
	dominates, err := ruleFor(c.X, c.Y)
	if err != nil {
		return nil, err
	}

	n := len(points)
	nd := make(Mask, n)
	workers := c.workers()
	if workers <= 1 || n <= minChunk {
		for i := range points {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			nd[i] = !dominated(points, i, dominates)
		}
		return nd, nil
	}

	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		lo, hi := start, start+chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				// each goroutine writes a disjoint range of nd
				nd[i] = !dominated(points, i, dominates)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nd, nil
}

func (c *Classifier) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
