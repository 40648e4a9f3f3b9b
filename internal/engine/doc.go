// Package engine implements the branch tree and the exploration state
// machine that discovers it. A Branch is an n-ary decision point
// encountered while a test body runs; each of its twigs is one of the
// n selections, and each twig in turn records the Branches discovered
// beneath it, in the order they were first seen. The trunk is the
// synthetic twig at the root of this forest, holding the top-level
// branches of one test.
//
// The Engine drives one test invocation: Start is called at every
// branch point, returning which twig to take this run; End closes the
// innermost open branch; RestartDecision, called once the test body
// has returned, decides whether the tree is now fully enumerated or
// whether another run is needed; it schedules the branch that must
// advance on that run and rewinds the cursor to the start of the trunk.
package engine
