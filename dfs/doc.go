// Package dfs implements a depth-first, pre-order iterator over an fstree.Node,
// driven by an explicit LIFO frontier instead of recursion.
//
// What:
//
//   - Iterator: pull-style HasNext / Next over the tree. The frontier starts
//     with only the root. Next pops the most recently pushed node and, if it
//     is a container, pushes its children in reverse order so the first child
//     is popped next. The result is pre-order, left-to-right among siblings.
//   - Walk: drains a fresh Iterator with functional options:
//   - WithContext:  cancellation checked before each emitted node
//   - WithOnVisit:  hook per emitted node; an error aborts the walk
//   - WithMaxDepth: do not expand containers at depth >= limit
//   - Validate: three-color check that a node graph is a strict tree
//     (no cycles, no shared children) before it is handed to an iterator.
//
// Guarantees:
//
//   - Each reachable node is emitted exactly once; the tree is never mutated.
//   - An empty container is emitted like a leaf (nothing is pushed).
//   - Next on an empty frontier returns fstree.ErrIteratorExhausted and a nil node.
//   - Iterators are not restartable; build a new one to walk again.
//
// Complexity:
//
//   - Time:   O(N) for a full traversal of N nodes.
//   - Memory: O(W·H) frontier in the worst case (W = max fan-out, H = height).
//
// Errors:
//
//   - fstree.ErrIteratorExhausted  Next past the end.
//   - ErrOptionViolation           negative WithMaxDepth.
//   - ErrCycleDetected             Validate found a container inside itself.
//   - ErrSharedNode                Validate found a node with two parents.
//   - context.Canceled / DeadlineExceeded from WithContext.
//   - wrapped OnVisit hook errors.
package dfs
