package branchtest

import (
	"runtime"

	"github.com/freqmod/gobranches/internal/engine"
)

// Case is the handle a test body uses to declare branch points. It is
// valid only for the duration of one Run or RunFunc call; using one
// after that call has returned is a usage error the same as calling
// its methods before the first run started.
type Case struct {
	e *engine.Engine
}

// StartCount opens a branch point with N twigs (N must be at least
// two) and an optional set of names, one per twig, used in
// PrintCurrentPath's output instead of a bare index. It returns the
// selector chosen for this run, in [0, n).
func (c *Case) StartCount(name string, n int, twigNames ...string) int {
	var names []string
	if len(twigNames) > 0 {
		names = twigNames
	}
	loc := callerLocation(2)
	v, err := c.e.Start(name, n, names, loc)
	if err != nil {
		panic(escape{err})
	}
	return v
}

// Start is shorthand for StartCount with two twigs and no name.
func (c *Case) Start() int {
	loc := callerLocation(2)
	v, err := c.e.Start("", 2, nil, loc)
	if err != nil {
		panic(escape{err})
	}
	return v
}

// EndNamed closes the innermost open branch. name must match the name
// given to the StartCount call that opened it.
func (c *Case) EndNamed(name string) {
	loc := callerLocation(2)
	if err := c.e.End(name, loc); err != nil {
		panic(escape{err})
	}
}

// End closes the innermost open branch opened with Start (or with
// StartCount using an empty name).
func (c *Case) End() {
	loc := callerLocation(2)
	if err := c.e.End("", loc); err != nil {
		panic(escape{err})
	}
}

// callerLocation reports the file, line, and function name of the
// caller skip frames up from callerLocation itself, standing in for
// the __FILE__/__LINE__/__func__ macros the C ancestor of this module
// relied on at every branch_start/branch_end call site.
func callerLocation(skip int) engine.Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return engine.Location{}
	}
	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return engine.Location{File: file, Line: line, Func: name}
}
