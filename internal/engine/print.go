package engine

import (
	"fmt"
	"io"
	"strings"
)

// pathTwigs returns the chain of selected twigs from the trunk down
// to the current twig, shallowest first.
func (e *Engine) pathTwigs() []*Twig {
	var path []*Twig
	t := e.currentTwig
	for t.ParentBranch != nil {
		path = append(path, t)
		t = t.ParentBranch.ParentTwig
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PrintCurrentPath writes the chain of selected twigs from the trunk
// to the current twig to w. At each level, it first writes every
// sibling branch under the enclosing twig that was visited earlier
// this run (at its currently selected twig), then the twig actually on
// the path, exactly matching the diagnostic format of this module's
// C ancestor.
func (e *Engine) PrintCurrentPath(w io.Writer) {
	fmt.Fprintln(w)
	for nesting, twig := range e.pathTwigs() {
		enclosing := twig.ParentBranch.ParentTwig
		for n := enclosing.subbranches.Head().Next(); n != enclosing.subbranches.Head() && n.Value() != twig.ParentBranch; n = n.Next() {
			sib := n.Value()
			writeTwigLine(w, sib.Twigs[sib.CurrentTwigIdx], nesting)
		}
		writeTwigLine(w, twig, nesting)
	}
}

func writeTwigLine(w io.Writer, twig *Twig, nesting int) {
	indent := strings.Repeat("  ", nesting)
	branch := twig.ParentBranch
	if branch.TwigNames != nil {
		fmt.Fprintf(w, "%s- %s (%s, %d)\n", indent, branch.Name, branch.TwigNames[twig.Value], twig.Value)
	} else {
		fmt.Fprintf(w, "%s- %s (%d)\n", indent, branch.Name, twig.Value)
	}
}
