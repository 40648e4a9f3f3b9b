// Package bterrors defines the error kinds the engine can report (see
// the error handling design in the specification this module
// implements) and the wrapping convention used everywhere else in
// this module: every exported error wraps one of the sentinels below
// with %w, so callers can use errors.Is to branch on kind, and the
// message still carries the fully qualified source of the error, the
// way internal/tree/error.go and internal/storage/error.go do it in
// the filesystem this package's conventions are borrowed from.
package bterrors

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is returned for caller misuse: branch_start/branch_end
	// called outside of a run, an arity below two, or branch_end with
	// no corresponding open branch.
	ErrUsage = errors.New("usage error")

	// ErrStructureMismatch is returned when two runs disagree about the
	// structure discovered at the same cursor: name, arity, source
	// location, or sibling count.
	ErrStructureMismatch = errors.New("structural mismatch between runs")

	// ErrNameMismatch is returned when branch_end's name does not match
	// the name given to the branch_start it is meant to close.
	ErrNameMismatch = errors.New("branch end name mismatch")

	// ErrPairingMismatch is returned when branch starts and ends are
	// unbalanced, either mid-run or at the end of a run.
	ErrPairingMismatch = errors.New("branch start/end pairing mismatch")

	// ErrLogicBug is returned when the engine observes a state that
	// should be unreachable if its own bookkeeping is correct.
	ErrLogicBug = errors.New("internal logic error")

	// ErrRunCapExceeded is returned when config.MaxRuns is nonzero and
	// the restart loop would need another run past that cap. It wraps
	// ErrLogicBug: in a correctly bounded test, this is unreachable, so
	// hitting it means either the cap was set too low or the test body
	// isn't converging.
	ErrRunCapExceeded = fmt.Errorf("run cap exceeded: %w", ErrLogicBug)
)

// errorf wraps one of the sentinels above with a message naming the
// package and function in which it was raised, following the
// errorf(typeMethod, format, args...) convention used throughout this
// corpus for package-scoped error construction.
func errorf(kind error, typeMethod, format string, args ...interface{}) error {
	return fmt.Errorf("github.com/freqmod/gobranches/internal/engine."+typeMethod+": "+format+": %w", append(args, kind)...)
}

// Usage builds an ErrUsage-wrapping error.
func Usage(typeMethod, format string, args ...interface{}) error {
	return errorf(ErrUsage, typeMethod, format, args...)
}

// StructureMismatch builds an ErrStructureMismatch-wrapping error.
func StructureMismatch(typeMethod, format string, args ...interface{}) error {
	return errorf(ErrStructureMismatch, typeMethod, format, args...)
}

// NameMismatch builds an ErrNameMismatch-wrapping error.
func NameMismatch(typeMethod, format string, args ...interface{}) error {
	return errorf(ErrNameMismatch, typeMethod, format, args...)
}

// PairingMismatch builds an ErrPairingMismatch-wrapping error.
func PairingMismatch(typeMethod, format string, args ...interface{}) error {
	return errorf(ErrPairingMismatch, typeMethod, format, args...)
}

// LogicBug builds an ErrLogicBug-wrapping error.
func LogicBug(typeMethod, format string, args ...interface{}) error {
	return errorf(ErrLogicBug, typeMethod, format, args...)
}

// RunCapExceeded builds an ErrRunCapExceeded-wrapping error.
func RunCapExceeded(typeMethod, format string, args ...interface{}) error {
	return errorf(ErrRunCapExceeded, typeMethod, format, args...)
}
