package branchtest

import "os"

// PrintCurrentPath writes the chain of selected twigs from the trunk
// to wherever the test body currently is, to the process's error
// stream. Run's escape handler calls this automatically when
// config.AutoPrintOnEscape is set (the default); call it directly to
// get the same diagnostic at any other point in a test body.
func (c *Case) PrintCurrentPath() {
	c.e.PrintCurrentPath(os.Stderr)
}
