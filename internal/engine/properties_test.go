package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/freqmod/gobranches/internal/engine"
)

// product returns the number of root-to-leaf paths a fixed-shape tree
// with the given branch widths at each level has, so each concurrent
// tree below can assert it terminated within its own known bound
// instead of relying on a single global timeout (P4).
func product(widths ...int) int {
	n := 1
	for _, w := range widths {
		n *= w
	}
	return n
}

// driveFixedShape runs a tree with the given per-level widths to
// completion and returns how many runs it took, for comparison against
// product(widths...) (P1: exhaustive coverage implies run count equals
// the product of branch widths for a tree with no conditional shape).
func driveFixedShape(widths []int) (int, error) {
	e := engine.New(testLogger())
	defer e.Cleanup()

	runs := 0
	for {
		runs++
		for i, w := range widths {
			name := "level"
			if _, err := e.Start(name, w, nil, engine.Location{File: "properties_test.go", Line: i + 1, Func: "driveFixedShape"}); err != nil {
				return runs, err
			}
		}
		for range widths {
			if err := e.End("level", engine.Location{}); err != nil {
				return runs, err
			}
		}
		verdict, err := e.RestartDecision()
		if err != nil {
			return runs, err
		}
		if verdict == engine.Complete {
			return runs, nil
		}
	}
}

// TestProperty_ExhaustiveCoverageAndTermination drives several
// differently-shaped trees concurrently, bounding fan-out with a
// semaphore the way a larger property-based stress suite would, and
// asserts each terminates in exactly the number of runs its shape
// predicts (P1, P4).
func TestProperty_ExhaustiveCoverageAndTermination(t *testing.T) {
	shapes := [][]int{
		{2},
		{3, 2},
		{2, 2, 2},
		{4, 3},
		{2, 5, 2},
	}

	sem := semaphore.NewWeighted(3)
	g, ctx := errgroup.WithContext(context.Background())

	for _, shape := range shapes {
		shape := shape
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			runs, err := driveFixedShape(shape)
			if err != nil {
				return err
			}
			if want := product(shape...); runs != want {
				t.Errorf("shape %v: got %d runs, want %d", shape, runs, want)
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
