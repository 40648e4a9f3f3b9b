package engine

import "github.com/freqmod/gobranches/internal/blist"

// TwigState records whether a twig has been fully executed at least
// once. A DISCOVERED twig's subbranches list is the authoritative
// structural record for that selector value; an UNINITIALIZED twig has
// never been chosen before and will be populated by whatever the test
// body does the first time it is.
type TwigState int

const (
	Uninitialized TwigState = iota
	Discovered
)

func (s TwigState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Discovered:
		return "discovered"
	default:
		return "invalid"
	}
}

// Branch is a decision point discovered while running a test body: a
// named source location with N twigs, one of which is selected on any
// given run.
type Branch struct {
	Name      string
	Loc       Location
	NumTwigs  int
	TwigNames []string // optional, len == NumTwigs when present

	// ParentTwig is the Twig under which this Branch was first
	// discovered. It is never nil: top-level branches are discovered
	// under the trunk.
	ParentTwig *Twig

	// Twigs holds this Branch's N children, indexed by selector value.
	Twigs []*Twig

	// CurrentTwigIdx is which twig this Branch will select on the
	// next (or current) run.
	CurrentTwigIdx int
}

// Twig is one of a Branch's N children, identified by its index
// (the selector value returned to the test body). It owns the ordered
// list of Branches subsequently discovered beneath it.
type Twig struct {
	Value int
	State TwigState

	// ParentBranch is the Branch this twig belongs to. Only the trunk
	// has a nil ParentBranch.
	ParentBranch *Branch

	subbranches *blist.List[*Branch]

	// cursor tracks the last child Branch visited during the current
	// run; it is subbranches.Head() when no child has been visited yet
	// this run (the "before first" position).
	cursor *blist.Node[*Branch]
}

func newTwig(value int, parentBranch *Branch) *Twig {
	t := &Twig{
		Value:        value,
		State:        Uninitialized,
		ParentBranch: parentBranch,
		subbranches:  blist.New[*Branch](),
	}
	t.cursor = t.subbranches.Head()
	return t
}

func newTrunk() *Twig {
	return newTwig(0, nil)
}

func newBranch(name string, loc Location, numTwigs int, twigNames []string, parentTwig *Twig) *Branch {
	b := &Branch{
		Name:       name,
		Loc:        loc,
		NumTwigs:   numTwigs,
		TwigNames:  twigNames,
		ParentTwig: parentTwig,
		Twigs:      make([]*Twig, numTwigs),
	}
	for i := 0; i < numTwigs; i++ {
		b.Twigs[i] = newTwig(i, b)
	}
	return b
}

// freeBranch recursively frees every twig's subbranch list beneath b.
// It is the cleanup callback passed to blist.List.Free when tearing
// down a whole forest.
func freeBranch(b *Branch) {
	for _, t := range b.Twigs {
		t.subbranches.Free(freeBranch)
	}
}
