// Package iterator narrates both traversals of a file tree: the depth-first
// walk from package dfs followed by the breadth-first walk from package bfs.
package iterator

import (
	"fmt"
	"io"

	"github.com/katalvlaran/patterns/bfs"
	"github.com/katalvlaran/patterns/dfs"
	"github.com/katalvlaran/patterns/fstree"
)

// Headers printed before each traversal.
const (
	DFSHeader = "DFS Traversal"
	BFSHeader = "BFS Traversal"
)

// Demo prints both traversals of fstree.Sample to w.
func Demo(w io.Writer) error {
	return Print(w, fstree.Sample())
}

// Print writes the DFS header and names, then the BFS header and names,
// one per line. Each traversal uses a fresh iterator over root.
// Graphs that are not strict trees are rejected before anything is printed.
func Print(w io.Writer, root fstree.Node) error {
	if err := dfs.Validate(root); err != nil {
		return fmt.Errorf("iterator: %w", err)
	}
	if err := drain(w, DFSHeader, dfs.NewIterator(root)); err != nil {
		return err
	}

	return drain(w, BFSHeader, bfs.NewIterator(root))
}

func drain(w io.Writer, header string, it fstree.Iterator) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("iterator: write header: %w", err)
	}
	for it.HasNext() {
		n, err := it.Next()
		if err != nil {
			return fmt.Errorf("iterator: %s: %w", header, err)
		}
		if _, err = fmt.Fprintln(w, n.Name()); err != nil {
			return fmt.Errorf("iterator: write %q: %w", n.Name(), err)
		}
	}

	return nil
}
