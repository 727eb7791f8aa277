package fstree

import "iter"

// Collect drains it and returns the emitted nodes in order.
func Collect(it Iterator) []Node {
	out := make([]Node, 0)
	for it.HasNext() {
		n, err := it.Next()
		if err != nil {
			break
		}
		out = append(out, n)
	}

	return out
}

// Names maps nodes to their names.
func Names(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}

	return out
}

// All adapts it to a range-over-func sequence.
// Breaking out of the loop leaves the remaining nodes in it.
func All(it Iterator) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for it.HasNext() {
			n, err := it.Next()
			if err != nil {
				return
			}
			if !yield(n) {
				return
			}
		}
	}
}
