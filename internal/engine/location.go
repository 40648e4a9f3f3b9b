package engine

import "fmt"

// Location is the source position where a Branch was first
// discovered: the file, line, and enclosing function name. It is
// recorded at discovery time and compared against on every subsequent
// run that reaches the same cursor, as part of the structural
// consistency check.
type Location struct {
	File string
	Line int
	Func string
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d (in %s)", l.File, l.Line, l.Func)
}
