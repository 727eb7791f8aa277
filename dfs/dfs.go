package dfs

import (
	"fmt"

	"github.com/katalvlaran/patterns/fstree"
)

// frame pairs a frontier node with its depth from the root.
type frame struct {
	node  fstree.Node
	depth int
}

// Iterator emits nodes in depth-first pre-order using a LIFO frontier.
// It satisfies fstree.Iterator. The zero value is an exhausted iterator.
type Iterator struct {
	stack    []frame
	maxDepth int // < 0: unlimited
}

var _ fstree.Iterator = (*Iterator)(nil)

// NewIterator returns an iterator whose frontier holds only root.
// A nil root yields an iterator that is already exhausted.
func NewIterator(root fstree.Node) *Iterator {
	return newIterator(root, -1)
}

func newIterator(root fstree.Node, maxDepth int) *Iterator {
	it := &Iterator{maxDepth: maxDepth}
	if root != nil {
		it.stack = append(it.stack, frame{node: root, depth: 0})
	}

	return it
}

// HasNext reports whether the frontier is non-empty.
func (it *Iterator) HasNext() bool {
	return len(it.stack) > 0
}

// Next pops the most recently pushed node and pushes its children in
// reverse order. Returns fstree.ErrIteratorExhausted when empty.
func (it *Iterator) Next() (fstree.Node, error) {
	f, err := it.pop()
	if err != nil {
		return nil, err
	}

	return f.node, nil
}

// pop is Next with the emitted node's depth.
func (it *Iterator) pop() (frame, error) {
	if !it.HasNext() {
		return frame{}, fstree.ErrIteratorExhausted
	}
	top := len(it.stack) - 1
	f := it.stack[top]
	it.stack[top] = frame{} // drop the reference
	it.stack = it.stack[:top]

	if it.maxDepth >= 0 && f.depth >= it.maxDepth {
		return f, nil
	}
	children, ok := f.node.Children()
	if !ok {
		return f, nil
	}
	// reverse push: the first child ends on top of the stack
	for i := len(children) - 1; i >= 0; i-- {
		it.stack = append(it.stack, frame{node: children[i], depth: f.depth + 1})
	}

	return f, nil
}

// Walk drains a fresh depth-first iterator over root, applying opts.
// On a hook error or cancellation it returns the partial Result together
// with the error.
func Walk(root fstree.Node, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	it := newIterator(root, o.MaxDepth)
	res := &Result{
		Order: make([]fstree.Node, 0),
		Depth: make([]int, 0),
	}
	for it.HasNext() {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		f, err := it.pop()
		if err != nil {
			return res, err
		}
		res.Order = append(res.Order, f.node)
		res.Depth = append(res.Depth, f.depth)

		if o.OnVisit != nil {
			if err = o.OnVisit(f.node.Name(), f.depth); err != nil {
				return res, fmt.Errorf("dfs: OnVisit hook for %q: %w", f.node.Name(), err)
			}
		}
	}

	return res, nil
}
