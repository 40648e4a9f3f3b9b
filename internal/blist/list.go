package blist

// Node is one element of a List. The zero value is not useful; nodes
// are only ever produced by List.PushBack or obtained via Head.
type Node[T any] struct {
	value      T
	next, prev *Node[T]
}

// Value returns the payload held by n. Calling Value on a list's Head
// node returns the zero value of T; the head never holds real data.
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the node following n, wrapping back to the list head
// once the tail is passed.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List is a circular doubly linked list with a sentinel head element.
// The zero value is not ready for use; call Init or New.
type List[T any] struct {
	head Node[T]
}

// New returns an initialized, empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.Init()
	return l
}

// Init resets l to the empty list, discarding any elements it held.
func (l *List[T]) Init() {
	l.head.next = &l.head
	l.head.prev = &l.head
}

// Head returns the sentinel node. It is never a real element; it is
// useful as a loop boundary and as the "before the first element"
// cursor position.
func (l *List[T]) Head() *Node[T] {
	return &l.head
}

// PushBack inserts v at the tail of l and returns the new node.
func (l *List[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{value: v}
	at := &l.head
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
	return n
}

// Remove unlinks n from whichever list it belongs to. n must not be a
// list's head node.
func Remove[T any](n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
}

// Empty reports whether l has no elements.
func (l *List[T]) Empty() bool {
	return l.head.next == &l.head
}

// First returns the first element of l and true, or nil and false if
// l is empty.
func (l *List[T]) First() (*Node[T], bool) {
	if l.Empty() {
		return nil, false
	}
	return l.head.next, true
}

// Free removes every element of l, invoking cleanup (if non-nil) on
// each element's value in order, starting from the head.
func (l *List[T]) Free(cleanup func(T)) {
	for !l.Empty() {
		n := l.head.next
		Remove(n)
		if cleanup != nil {
			cleanup(n.value)
		}
	}
}
