package branchtest

// escape is the sentinel panic value used to transfer control out of
// a test body on an engine error, standing in for the C ancestor's
// longjmp-based _fail(). Only Run and RunFunc's own recover sites
// understand it; it must never escape past them.
type escape struct {
	err error
}
