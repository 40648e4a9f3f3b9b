package engine_test

import (
	"io"
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/freqmod/gobranches/internal/bterrors"
	"github.com/freqmod/gobranches/internal/btlog"
	"github.com/freqmod/gobranches/internal/engine"
)

func testLogger() *btlog.Logger {
	return btlog.New(nil, io.Discard)
}

var here = engine.Location{File: "engine_test.go", Line: 1, Func: "test"}

// drive runs body to completion, returning the selector sequence
// observed on each run, in the order the runs happened.
func drive(t *testing.T, body func(e *engine.Engine) []int) [][]int {
	t.Helper()
	e := engine.New(testLogger())
	var got [][]int
	for {
		got = append(got, body(e))
		verdict, err := e.RestartDecision()
		require.NoError(t, err)
		if verdict == engine.Complete {
			break
		}
	}
	e.Cleanup()
	return got
}

func TestScenario_SingleBranch(t *testing.T) {
	defer leaktest.Check(t)()

	got := drive(t, func(e *engine.Engine) []int {
		v, err := e.Start("aba", 3, nil, here)
		require.NoError(t, err)
		require.NoError(t, e.End("aba", here))
		return []int{v}
	})

	want := [][]int{{0}, {1}, {2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("selector sequences mismatch (-want +got):\n%s", diff)
	}
}

func TestScenario_TwoSequentialBranches(t *testing.T) {
	defer leaktest.Check(t)()

	got := drive(t, func(e *engine.Engine) []int {
		a, err := e.Start("aba", 3, nil, here)
		require.NoError(t, err)
		require.NoError(t, e.End("aba", here))

		b, err := e.Start("baba", 2, nil, here)
		require.NoError(t, err)
		require.NoError(t, e.End("baba", here))

		return []int{a, b}
	})

	want := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("selector sequences mismatch (-want +got):\n%s", diff)
	}
}

func TestScenario_NestedBranches(t *testing.T) {
	defer leaktest.Check(t)()

	got := drive(t, func(e *engine.Engine) []int {
		a, err := e.Start("aba", 3, nil, here)
		require.NoError(t, err)

		b, err := e.Start("bqba", 2, nil, here)
		require.NoError(t, err)
		require.NoError(t, e.End("bqba", here))

		require.NoError(t, e.End("aba", here))
		return []int{a, b}
	})

	want := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("selector sequences mismatch (-want +got):\n%s", diff)
	}
}

func TestScenario_VaryingNestedBranches(t *testing.T) {
	defer leaktest.Check(t)()

	got := drive(t, func(e *engine.Engine) []int {
		a, err := e.Start("aba", 3, nil, here)
		require.NoError(t, err)
		seq := []int{a}

		switch a {
		case 0:
			b, err := e.Start("baba", 2, nil, here)
			require.NoError(t, err)
			require.NoError(t, e.End("baba", here))
			seq = append(seq, b)
		case 2:
			c, err := e.Start("caba", 4, nil, here)
			require.NoError(t, err)
			require.NoError(t, e.End("caba", here))
			seq = append(seq, c)
		}

		require.NoError(t, e.End("aba", here))
		return seq
	})

	want := [][]int{{0, 0}, {0, 1}, {1}, {2, 0}, {2, 1}, {2, 2}, {2, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("selector sequences mismatch (-want +got):\n%s", diff)
	}
}

func TestScenario_DoublyNestedBranches(t *testing.T) {
	defer leaktest.Check(t)()

	got := drive(t, func(e *engine.Engine) []int {
		outer, err := e.Start("outer", 3, nil, here)
		require.NoError(t, err)
		seq := []int{outer}

		switch outer {
		case 0:
			b, err := e.Start("case0", 2, nil, here)
			require.NoError(t, err)
			require.NoError(t, e.End("case0", here))
			seq = append(seq, b)
		case 2:
			middle, err := e.Start("middle", 3, nil, here)
			require.NoError(t, err)
			seq = append(seq, middle)
			if middle == 0 {
				inner, err := e.Start("inner", 4, nil, here)
				require.NoError(t, err)
				require.NoError(t, e.End("inner", here))
				seq = append(seq, inner)
			}
			require.NoError(t, e.End("middle", here))
		}

		require.NoError(t, e.End("outer", here))
		return seq
	})

	want := [][]int{
		{0, 0}, {0, 1},
		{1},
		{2, 0, 0}, {2, 0, 1}, {2, 0, 2}, {2, 0, 3},
		{2, 1}, {2, 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("selector sequences mismatch (-want +got):\n%s", diff)
	}
}

func TestStartRejectsArityBelowTwo(t *testing.T) {
	e := engine.New(testLogger())
	_, err := e.Start("x", 1, nil, here)
	require.ErrorIs(t, err, bterrors.ErrUsage)
}

func TestEndRejectsNameMismatch(t *testing.T) {
	e := engine.New(testLogger())
	_, err := e.Start("aba", 3, nil, here)
	require.NoError(t, err)
	err = e.End("wrong-name", here)
	require.ErrorIs(t, err, bterrors.ErrNameMismatch)
}

func TestEndRejectsNoOpenBranch(t *testing.T) {
	e := engine.New(testLogger())
	err := e.End("aba", here)
	require.ErrorIs(t, err, bterrors.ErrUsage)
}

func TestStartRejectsOutsideRun(t *testing.T) {
	e := engine.New(testLogger())
	e.Cleanup()
	_, err := e.Start("aba", 3, nil, here)
	require.ErrorIs(t, err, bterrors.ErrUsage)
}
