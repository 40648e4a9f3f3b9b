package engine

import (
	"github.com/freqmod/gobranches/internal/assert"
	"github.com/freqmod/gobranches/internal/bterrors"
	"github.com/freqmod/gobranches/internal/btlog"
)

// RestartVerdict is the outcome of RestartDecision: whether the test
// body must run again to reach an undiscovered combination, or
// whether every combination discovered so far has now been executed.
type RestartVerdict int

const (
	Complete RestartVerdict = iota
	Restart
)

// Engine drives one test invocation's worth of branch exploration. It
// is not safe for concurrent use: spec.md models it as thread-local
// state, and this port scopes that lifetime explicitly to one Engine
// value per Run/RunFunc call instead of relying on goroutine-local
// storage, which Go has no portable notion of. Two goroutines sharing
// one Engine concurrently is a caller bug, not a supported mode.
type Engine struct {
	trunk         *Twig
	currentBranch *Branch
	currentTwig   *Twig
	nestingLevel  int

	prevMutateSubbranch *Branch
	prevMutateNesting   int
	nextMutateSubbranch *Branch
	nextMutateNesting   int

	runCount int

	enabled bool

	log *btlog.Logger
}

// New returns a freshly initialized Engine, ready to drive the first
// run of a test body.
func New(log *btlog.Logger) *Engine {
	trunk := newTrunk()
	return &Engine{
		trunk:       trunk,
		currentTwig: trunk,
		enabled:     true,
		log:         log,
	}
}

// Enabled reports whether a run is in progress. It goes false once
// Cleanup has run, and is checked by Run's escape handler to decide
// whether the test body exited mid-run without panicking (t.Fatal, or
// any other runtime.Goexit) rather than completing normally.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// Start opens a branch point: name may be empty, numTwigs must be at
// least two, and twigNames, if non-nil, must have length numTwigs. It
// returns the selector value for this run's choice at this point.
func (e *Engine) Start(name string, numTwigs int, twigNames []string, loc Location) (int, error) {
	const method = "Start"

	if numTwigs < 2 {
		err := bterrors.Usage(method, "branch start in function %s requested for %d twigs, only 2 or more are supported", loc.Func, numTwigs)
		e.reportError(loc, err)
		return 0, err
	}
	if !e.enabled {
		err := bterrors.Usage(method, "branch start in function %s with name %q called outside a run", loc.Func, name)
		e.reportError(loc, err)
		return 0, err
	}

	switch e.currentTwig.State {
	case Uninitialized:
		return e.startDiscover(name, numTwigs, twigNames, loc)
	case Discovered:
		return e.startRevisit(name, numTwigs, twigNames, loc)
	default:
		err := bterrors.LogicBug(method, "twig %v in unrecognized state %v", loc, e.currentTwig.State)
		e.reportError(loc, err)
		return 0, err
	}
}

func (e *Engine) startDiscover(name string, numTwigs int, twigNames []string, loc Location) (int, error) {
	twig := e.currentTwig
	branch := newBranch(name, loc, numTwigs, twigNames, twig)
	node := twig.subbranches.PushBack(branch)

	twig.cursor = twig.cursor.Next()
	assert.Assert(twig.cursor == node, "newly appended branch is not at the advanced cursor")

	e.currentBranch = branch
	e.currentTwig = branch.Twigs[branch.CurrentTwigIdx]
	e.nestingLevel++
	e.log.Debugf("branch %q discovered at %s, selecting twig %d", name, loc, e.currentTwig.Value)
	return e.currentTwig.Value, nil
}

func (e *Engine) startRevisit(name string, numTwigs int, twigNames []string, loc Location) (int, error) {
	const method = "Start"
	twig := e.currentTwig

	next := twig.cursor.Next()
	if next == twig.subbranches.Head() {
		err := bterrors.StructureMismatch(method, "more branches executed under %s this run than in previous runs", loc)
		e.reportError(loc, err)
		return 0, err
	}
	twig.cursor = next
	branch := next.Value()

	assert.Assert(branch.ParentTwig == twig, "revisited branch's parent twig does not match current twig")

	if err := branchInfoEqual(branch, name, numTwigs, loc); err != nil {
		e.reportError(loc, err)
		return 0, err
	}

	e.currentBranch = branch
	e.tryMutate()
	e.currentTwig = branch.Twigs[branch.CurrentTwigIdx]
	e.nestingLevel++
	e.log.Debugf("branch %q revisited at %s, selecting twig %d", name, loc, e.currentTwig.Value)
	return e.currentTwig.Value, nil
}

// branchInfoEqual validates that the branch recorded at this cursor on
// a previous run matches the arguments of this call. File and
// function are compared by content, as in the C original (they arrive
// via __FILE__/__func__ equivalents whose storage identity is not
// portable); name is also compared by content here rather than by
// pointer/interface identity — see the Open Questions in DESIGN.md for
// why this module takes the simpler-semantics alternative the
// specification allows instead of chasing Go string header identity.
func branchInfoEqual(branch *Branch, name string, numTwigs int, loc Location) error {
	const method = "branchInfoEqual"
	if branch.Name != name ||
		branch.NumTwigs != numTwigs ||
		branch.Loc.File != loc.File ||
		branch.Loc.Line != loc.Line ||
		branch.Loc.Func != loc.Func {
		return bterrors.StructureMismatch(method,
			"branch at %s changed shape between runs: was name=%q twigs=%d loc=%s, now name=%q twigs=%d loc=%s",
			loc, branch.Name, branch.NumTwigs, branch.Loc, name, numTwigs, loc)
	}
	return nil
}

// tryMutate applies the scheduled mutation for this run, if this
// Branch is the one scheduled to advance, or resets this Branch's
// selector to zero if we are descending into a subtree downstream of
// the branch that just mutated (or just finished mutating).
func (e *Engine) tryMutate() {
	b := e.currentBranch
	switch {
	case e.prevMutateSubbranch == b:
		b.CurrentTwigIdx++
		e.prevMutateSubbranch = nil
	case e.nestingLevel > e.prevMutateNesting,
		e.nestingLevel+1 == e.prevMutateNesting && e.prevMutateSubbranch == nil:
		b.CurrentTwigIdx = 0
	}
}

// End closes the innermost open branch. name must match the name
// given to the branch_start it closes.
func (e *Engine) End(name string, loc Location) error {
	const method = "End"

	if !e.enabled {
		err := bterrors.Usage(method, "branch end in function %s called outside a run", loc.Func)
		e.reportError(loc, err)
		return err
	}
	if e.currentBranch == nil {
		err := bterrors.Usage(method, "branch end requested in function %s using name %q, but no branch is open", loc.Func, name)
		e.reportError(loc, err)
		return err
	}
	if name != e.currentBranch.Name {
		err := bterrors.NameMismatch(method, "branch end in function %s using name %q, expected %q as used by the matching branch start", loc.Func, name, e.currentBranch.Name)
		e.reportError(loc, err)
		return err
	}
	if e.currentBranch.ParentTwig.cursor.Value() != e.currentBranch {
		err := bterrors.PairingMismatch(method, "inconsistent branch start/end pairing in function %s using name %q", loc.Func, name)
		e.reportError(loc, err)
		return err
	}

	switch e.currentTwig.State {
	case Uninitialized:
		e.currentTwig.State = Discovered
	case Discovered:
		// Already discovered on a previous run; nothing to update.
	default:
		err := bterrors.LogicBug(method, "twig closed at %s in unrecognized state %v", loc, e.currentTwig.State)
		e.reportError(loc, err)
		return err
	}

	if e.currentBranch.CurrentTwigIdx+1 < e.currentBranch.NumTwigs &&
		e.nextMutateNesting <= e.nestingLevel {
		e.nextMutateSubbranch = e.currentBranch
		e.nextMutateNesting = e.nestingLevel
	}

	closingBranch := e.currentBranch
	innerTwig := e.currentTwig
	innerTwig.cursor = innerTwig.subbranches.Head()

	e.currentTwig = closingBranch.ParentTwig
	e.currentBranch = e.currentTwig.ParentBranch
	e.nestingLevel--

	e.log.Debugf("branch %q closed at %s", name, loc)
	return nil
}

// reportError writes the one diagnostic line spec.md requires for
// every error, in addition to whatever structured logging the caller
// has configured.
func (e *Engine) reportError(loc Location, err error) {
	e.log.Errorf(loc.File, loc.Line, "%v", err)
}

// Cleanup releases the entire tree and disables the engine. Calling it
// again is harmless; calling Start or End afterwards reports a usage
// error rather than panicking.
func (e *Engine) Cleanup() {
	e.trunk.subbranches.Free(freeBranch)
	e.currentBranch = nil
	e.enabled = false
}
