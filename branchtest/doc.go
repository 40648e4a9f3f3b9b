// Package branchtest drives a test body through every combination of
// the branch points it declares, one run per combination, by calling
// StartCount/Start at each decision point and EndNamed/End when it
// closes. Run (or RunFunc, for harnesses that hand the engine a plain
// function and an opaque state value instead of a *testing.T) repeats
// the body until every root-to-leaf path it has discovered across
// those runs has executed exactly once.
//
// A branch point declared conditionally (only reached on some
// selector values of an enclosing branch) is fine: the tree shape is
// discovered incrementally, and only paths actually reachable from the
// trunk ever need to be executed.
package branchtest
