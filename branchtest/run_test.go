package branchtest_test

import (
	"fmt"
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/stretchr/testify/require"

	"github.com/freqmod/gobranches/branchtest"
)

// fakeT satisfies branchtest.TestingT without touching the real
// testing package's failure machinery, so misuse scenarios can assert
// on the reported message instead of actually failing the outer test.
type fakeT struct {
	fatalf string
}

func (f *fakeT) Helper() {}

func (f *fakeT) Fatalf(format string, args ...interface{}) {
	f.fatalf = fmt.Sprintf(format, args...)
}

func TestRun_ExploresEveryCombination(t *testing.T) {
	defer leaktest.Check(t)()

	var got [][]int
	ft := &fakeT{}
	branchtest.Run(ft, func(c *branchtest.Case) {
		a := c.StartCount("aba", 3)
		b := c.StartCount("baba", 2)
		got = append(got, []int{a, b})
		c.EndNamed("baba")
		c.EndNamed("aba")
	})

	require.Empty(t, ft.fatalf)
	require.Len(t, got, 6)
}

func TestRun_EndWithNoOpenBranchFails(t *testing.T) {
	ft := &fakeT{}
	branchtest.Run(ft, func(c *branchtest.Case) {
		c.End()
	})
	require.Contains(t, ft.fatalf, "usage error")
}

func TestRun_EndNameMismatchFails(t *testing.T) {
	ft := &fakeT{}
	branchtest.Run(ft, func(c *branchtest.Case) {
		c.StartCount("a", 2)
		c.EndNamed("b")
	})
	require.Contains(t, ft.fatalf, "branch end name mismatch")
}

func TestRun_ArityBelowTwoFails(t *testing.T) {
	ft := &fakeT{}
	branchtest.Run(ft, func(c *branchtest.Case) {
		c.StartCount("a", 1)
	})
	require.Contains(t, ft.fatalf, "usage error")
}

func TestRunFunc_DrivesToCompletion(t *testing.T) {
	defer leaktest.Check(t)()

	var runs int
	branchtest.RunFunc(func(c *branchtest.Case, state any) {
		runs++
		c.StartCount("x", 2)
		c.EndNamed("x")
	}, nil)

	require.Equal(t, 2, runs)
}
