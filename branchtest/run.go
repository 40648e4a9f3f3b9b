package branchtest

import (
	"os"

	"github.com/pkg/errors"

	"github.com/freqmod/gobranches/internal/btlog"
	"github.com/freqmod/gobranches/internal/config"
	"github.com/freqmod/gobranches/internal/engine"
)

// Run drives body through every combination of the branch points it
// declares via the Case handle it is given, one run per combination,
// stopping once the restart decision reports every path discovered
// across those runs has executed exactly once.
//
// If body's run ends in error (a structural mismatch, a pairing
// mismatch, or any other engine error), Run prints the current path
// (unless config.AutoPrintOnEscape has been turned off), frees the
// tree, and reports the failure via t.Fatalf -- mirroring the harness
// teardown behavior of the C ancestor this module is descended from,
// which would otherwise run a user-supplied teardown against an
// inconsistent tree.
func Run(t TestingT, body func(c *Case)) {
	t.Helper()

	c := &Case{e: engine.New(btlog.New(nil, os.Stderr))}
	defer func() {
		r := recover()
		if r == nil {
			if c.e.Enabled() {
				c.abort()
			}
			return
		}
		esc, ok := r.(escape)
		if !ok {
			c.abort()
			panic(r)
		}
		c.abort()
		t.Fatalf("%v", errors.Wrap(esc.err, "branchtest: run aborted"))
	}()

	for {
		body(c)
		verdict, err := c.e.RestartDecision()
		if err != nil {
			c.abort()
			t.Fatalf("%v", errors.Wrap(err, "branchtest: run aborted"))
			return
		}
		if verdict == engine.Complete {
			break
		}
	}
	c.e.Cleanup()
}

// RunFunc is the custom-function equivalent of Run, for harnesses that
// hand the engine a plain function and an opaque state value instead
// of a *testing.T. It is not reentrant: the Case it builds owns engine
// state for the duration of the call, and calling RunFunc again from
// inside fn is undefined, exactly as for the test wrapper.
//
// Unlike Run, RunFunc has no TestingT to report a failure through: on
// an engine error it prints the current path (same AutoPrintOnEscape
// rule as Run), frees the tree, and re-panics with the underlying
// error so the caller's own recover (or the process, if there is none)
// observes the failure.
func RunFunc(fn func(c *Case, state any), state any) {
	c := &Case{e: engine.New(btlog.New(nil, os.Stderr))}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		esc, ok := r.(escape)
		if !ok {
			c.abort()
			panic(r)
		}
		c.abort()
		panic(errors.Wrap(esc.err, "branchtest: run aborted"))
	}()

	for {
		fn(c, state)
		verdict, err := c.e.RestartDecision()
		if err != nil {
			c.abort()
			panic(errors.Wrap(err, "branchtest: run aborted"))
		}
		if verdict == engine.Complete {
			break
		}
	}
	c.e.Cleanup()
}

// abort prints the current path, if configured to, and frees the
// tree. Called from the escape handlers of both Run and RunFunc,
// before the failure is reported through whatever channel the caller
// has available.
func (c *Case) abort() {
	if config.AutoPrintOnEscape {
		c.PrintCurrentPath()
	}
	c.e.Cleanup()
}
