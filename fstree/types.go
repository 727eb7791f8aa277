// Package fstree declares Node, File, Directory, the Iterator contract,
// and the sentinel errors shared by the traversal packages.
package fstree

import "errors"

// Sentinel errors for tree construction and traversal.
var (
	// ErrIteratorExhausted is returned by Iterator.Next when HasNext reports false.
	ErrIteratorExhausted = errors.New("fstree: iterator exhausted")

	// ErrEmptyName indicates a node description without a name.
	ErrEmptyName = errors.New("fstree: node name is empty")
)

// Node is any element of the tree.
//
// Children is the capability query used by traversals: it returns the ordered
// children and true for a container, or nil and false for a leaf. An empty
// container returns an empty slice and true.
type Node interface {
	Name() string
	Children() ([]Node, bool)
}

// Iterator yields tree nodes one at a time.
//
// HasNext has no side effects. Next returns ErrIteratorExhausted, and a nil
// Node, once the frontier is empty. Iterators are finite and not restartable.
type Iterator interface {
	HasNext() bool
	Next() (Node, error)
}

// File is a leaf node.
type File struct {
	name string
}

// NewFile returns a leaf named name.
func NewFile(name string) *File {
	return &File{name: name}
}

// Name returns the file name.
func (f *File) Name() string { return f.name }

// Children reports that a File is not a container.
func (f *File) Children() ([]Node, bool) { return nil, false }

// Directory is a container node holding an ordered list of children.
type Directory struct {
	name     string
	children []Node
}

// NewDirectory returns an empty container named name.
func NewDirectory(name string) *Directory {
	return &Directory{name: name, children: make([]Node, 0)}
}

// Name returns the directory name.
func (d *Directory) Name() string { return d.name }

// Children returns the children in insertion order and true.
// The returned slice is owned by d and must not be modified.
func (d *Directory) Children() ([]Node, bool) { return d.children, true }

// Add appends nodes in the given order and returns d for chaining.
// Nil nodes are skipped.
func (d *Directory) Add(nodes ...Node) *Directory {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		d.children = append(d.children, n)
	}

	return d
}

// Len returns the number of direct children.
func (d *Directory) Len() int { return len(d.children) }

// Count returns the number of nodes in the tree rooted at root,
// root included. A nil root counts as zero.
// Complexity: O(N) time, O(H) stack for a tree of height H.
func Count(root Node) int {
	if root == nil {
		return 0
	}
	total := 1
	children, ok := root.Children()
	if !ok {
		return total
	}
	for _, c := range children {
		total += Count(c)
	}

	return total
}
