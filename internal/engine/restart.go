package engine

import (
	"github.com/freqmod/gobranches/internal/bterrors"
	"github.com/freqmod/gobranches/internal/config"
)

// RestartDecision is called once the test body has returned from one
// run. It validates that the run ended in a balanced state, rotates
// the scheduled mutation into effect, and reports whether another run
// is needed to reach a combination not yet executed.
func (e *Engine) RestartDecision() (RestartVerdict, error) {
	const method = "RestartDecision"

	e.runCount++
	if config.MaxRuns > 0 && e.runCount > config.MaxRuns {
		err := bterrors.RunCapExceeded(method, "restart loop needed run %d, exceeding the configured cap of %d", e.runCount, config.MaxRuns)
		e.reportError(e.currentTrunkLocation(), err)
		return Complete, err
	}

	if e.currentTwig != e.trunk || e.nestingLevel != 0 {
		err := bterrors.PairingMismatch(method, "branch ends don't match branch starts at top level")
		e.reportError(e.currentTrunkLocation(), err)
		return Complete, err
	}
	if e.trunk.cursor.Next() != e.trunk.subbranches.Head() {
		err := bterrors.StructureMismatch(method, "number of branches in top level not consistent between runs")
		e.reportError(e.currentTrunkLocation(), err)
		return Complete, err
	}

	if e.trunk.State == Uninitialized {
		e.trunk.State = Discovered
	}

	e.prevMutateSubbranch = e.nextMutateSubbranch
	e.prevMutateNesting = e.nextMutateNesting
	e.nextMutateSubbranch = nil
	e.nextMutateNesting = 0

	// Rewind to the start of the top-level list. Reading the
	// now-reset cursor's value mirrors the C original exactly: the
	// sentinel head never holds a real branch, so currentBranch
	// becomes nil here regardless of whether the trunk has children --
	// the first real branch is only assigned once the test body calls
	// Start again on the next run.
	e.trunk.cursor = e.trunk.subbranches.Head()
	e.currentBranch = e.trunk.cursor.Value()

	if e.prevMutateSubbranch != nil {
		if config.MaxRuns > 0 && e.runCount >= config.MaxRuns {
			err := bterrors.RunCapExceeded(method, "restart loop needed run %d, exceeding the configured cap of %d", e.runCount+1, config.MaxRuns)
			e.reportError(e.currentTrunkLocation(), err)
			return Complete, err
		}
		return Restart, nil
	}
	return Complete, nil
}

// currentTrunkLocation is used to attribute top-level pairing/structure
// errors to some source location, since these are reported between
// runs rather than at a specific branch_start/branch_end call site.
func (e *Engine) currentTrunkLocation() Location {
	if e.currentBranch != nil {
		return e.currentBranch.Loc
	}
	return Location{}
}
