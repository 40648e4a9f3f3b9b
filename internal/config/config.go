package config

import (
	"os"
	"strconv"
)

var (
	// AutoPrintOnEscape controls whether Run's escape handler calls
	// PrintCurrentPath automatically when a test body exits mid-run
	// (panic, t.Fatal, or any other non-local exit). Overridden by the
	// BRANCHTEST_AUTOPRINT environment variable ("0"/"false" to
	// disable). Defaults to true: silently losing the branch path on
	// the one run that actually failed is the single most useful piece
	// of diagnostic information this module can offer, so turning it
	// off is opt-out rather than opt-in.
	AutoPrintOnEscape = true

	// MaxRuns caps how many times the restart loop in Run/RunFunc will
	// run the test body; when another run past the cap would be needed
	// it gives up and reports a logic error instead, as a safety valve against a test body whose branch points
	// never converge (e.g. one that calls StartCount with an argument
	// that depends on wall-clock time). Zero means unbounded, which is
	// the correct setting for any test whose tree has a finite branch
	// product, i.e. every test that follows the contract in spec.md.
	// Overridden by the BRANCHTEST_MAX_RUNS environment variable.
	MaxRuns = 0
)

func init() {
	if v := os.Getenv("BRANCHTEST_AUTOPRINT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			AutoPrintOnEscape = b
		}
	}
	if v := os.Getenv("BRANCHTEST_MAX_RUNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			MaxRuns = n
		}
	}
}
