// Package blist implements a circular doubly linked list with a
// sentinel head node, in the style of the intrusive lists used
// throughout test frameworks of C heritage: appending is O(1) at the
// tail, removal is O(1) given a node, and the empty list is the
// sentinel pointing to itself.
//
// Unlike the C original this list is owning rather than intrusive: a
// Node holds its payload directly rather than the payload embedding a
// Node, so there is no unsafe pointer arithmetic and no manual
// allocation bookkeeping. Iteration order is insertion order; callers
// of this package rely on that for branch sibling ordering.
package blist
