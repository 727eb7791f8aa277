// Package bfs implements a breadth-first (level-order) iterator over an
// fstree.Node, driven by an explicit FIFO frontier.
//
// What
//
//   - Iterator: pull-style HasNext / Next. The frontier starts with only the
//     root. Next dequeues the earliest-added node and, if it is a container,
//     appends all its children to the back of the queue in left-to-right order.
//   - Walk: drains a fresh Iterator with functional options (context,
//     visit hook, depth limit) and reports the visit order with depths.
//
// Determinism
//
//	Children are enqueued in Directory insertion order, so the visit sequence
//	is fully reproducible for a given tree.
//
// Complexity (N = nodes)
//
//   - Time:   O(N)
//   - Memory: O(W) for the queue, W = widest level
//
// Usage
//
//	it := bfs.NewIterator(root)
//	for it.HasNext() {
//	    n, err := it.Next()
//	    ...
//	}
//
//	res, err := bfs.Walk(root,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	    bfs.WithOnVisit(func(name string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - fstree.ErrIteratorExhausted  Next past the end.
//   - ErrOptionViolation           invalid Option (negative MaxDepth).
//   - ctx.Err() on cancellation, and wrapped OnVisit hook errors.
package bfs
