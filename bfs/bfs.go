package bfs

import (
	"fmt"

	"github.com/katalvlaran/patterns/fstree"
)

// queueItem pairs a frontier node with its depth from the root.
type queueItem struct {
	node  fstree.Node
	depth int
}

// Iterator emits nodes level by level using a FIFO frontier.
// It satisfies fstree.Iterator. The zero value is an exhausted iterator.
type Iterator struct {
	queue    []queueItem
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
		it.queue = append(it.queue, queueItem{node: root, depth: 0})
	}

	return it
}

// HasNext reports whether the frontier is non-empty.
func (it *Iterator) HasNext() bool {
	return len(it.queue) > 0
}

// Next dequeues the earliest-added node and appends its children, if any,
// in left-to-right order. Returns fstree.ErrIteratorExhausted when empty.
func (it *Iterator) Next() (fstree.Node, error) {
	item, err := it.dequeue()
	if err != nil {
		return nil, err
	}

	return item.node, nil
}

// dequeue is Next with the emitted node's depth.
func (it *Iterator) dequeue() (queueItem, error) {
	if !it.HasNext() {
		return queueItem{}, fstree.ErrIteratorExhausted
	}
	item := it.queue[0]
	it.queue[0] = queueItem{}
	it.queue = it.queue[1:]

	it.enqueueChildren(item)

	return item, nil
}

// enqueueChildren appends the children of a container unless that would
// exceed maxDepth.
func (it *Iterator) enqueueChildren(item queueItem) {
	if it.maxDepth >= 0 && item.depth >= it.maxDepth {
		return
	}
	children, ok := item.node.Children()
	if !ok {
		return
	}
	for _, c := range children {
		it.queue = append(it.queue, queueItem{node: c, depth: item.depth + 1})
	}
}

// Walk runs a breadth-first traversal of root, applying any number of
// functional Options. Returns ErrOptionViolation for bad options,
// ctx.Err() on cancellation, or a wrapped OnVisit error; in the last two
// cases the partial Result is returned as well.
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
		// cancellation check (once per node)
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		item, err := it.dequeue()
		if err != nil {
			return res, err
		}
		res.Order = append(res.Order, item.node)
		res.Depth = append(res.Depth, item.depth)
		if err = o.OnVisit(item.node.Name(), item.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %q: %w", item.node.Name(), err)
		}
	}

	return res, nil
}
