// Package visitor provides generic tree traversal with visit/departure
// hooks and sentinel-error based pruning.
package visitor

import "errors"

// Control errors a Visit implementation may return to steer traversal.
// Any other error aborts the walk and propagates to the caller.
var (
	// ErrSkipChildren continues the walk without descending into the
	// current node's children.
	ErrSkipChildren = errors.New("visitor: skip children")

	// ErrStopWalk ends the walk immediately. Walk and Walkabout return
	// nil in this case.
	ErrStopWalk = errors.New("visitor: stop walk")
)

// Visitor receives nodes during traversal. Depart is only invoked by
// Walkabout, after all of a node's children have been processed.
type Visitor[T any] interface {
	Visit(node T) error
	Depart(node T)
}

// Func adapts a plain function to a Visitor with a no-op Depart.
type Func[T any] func(node T) error

// Visit implements Visitor.
func (f Func[T]) Visit(node T) error { return f(node) }

// Depart implements Visitor.
func (Func[T]) Depart(T) {}

// Walk traverses the tree rooted at node depth-first, calling v.Visit on
// each node. The children function yields a node's direct children.
func Walk[T any](node T, v Visitor[T], children func(T) []T) error {
	err := walk(node, v, children, false)
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}

// Walkabout is Walk with departure: v.Depart runs for every node whose
// Visit succeeded, after its subtree has been processed.
func Walkabout[T any](node T, v Visitor[T], children func(T) []T) error {
	err := walk(node, v, children, true)
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}

func walk[T any](node T, v Visitor[T], children func(T) []T, depart bool) error {
	switch err := v.Visit(node); {
	case errors.Is(err, ErrSkipChildren):
		if depart {
			v.Depart(node)
		}
		return nil
	case err != nil:
		return err
	}
	for _, child := range children(node) {
		if err := walk(child, v, children, depart); err != nil {
			return err
		}
	}
	if depart {
		v.Depart(node)
	}
	return nil
}
