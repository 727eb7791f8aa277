// Package dfs checks that a node graph really is a tree before it is walked.
// Validate runs a recursive depth-first search with three-color marking:
// reaching a Gray node is a back edge (cycle), reaching a Black node means
// two containers share a child.
//
// Complexity:
//
//   - Time:   O(N)  (each node expanded once)
//   - Memory: O(N)  (state map + recursion stack)
package dfs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/patterns/fstree"
)

// VertexState values used by Validate.
const (
	White = iota // White: not reached yet.
	Gray         // Gray: on the current path.
	Black        // Black: node and all descendants checked.
)

var (
	// ErrCycleDetected indicates a container that is its own descendant.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrSharedNode indicates a node owned by more than one container.
	ErrSharedNode = errors.New("dfs: node has more than one parent")
)

// Validate reports whether root is a strict tree: no cycles and no node
// reachable through two parents. Iterators must only be given validated
// trees; on a cyclic graph they never become exhausted.
// Node implementations must be comparable (pointer types are).
func Validate(root fstree.Node) error {
	if root == nil {
		return nil
	}
	state := make(map[fstree.Node]int)
	path := make([]string, 0)

	return validateVisit(root, state, &path)
}

// validateVisit colors n Gray, checks each child, then colors n Black.
// path holds the names on the current branch for error messages.
func validateVisit(n fstree.Node, state map[fstree.Node]int, path *[]string) error {
	state[n] = Gray
	*path = append(*path, n.Name())

	children, _ := n.Children()
	for _, c := range children {
		switch state[c] {
		case White:
			if err := validateVisit(c, state, path); err != nil {
				return err
			}
		case Gray:
			return fmt.Errorf("%w: %s -> %s", ErrCycleDetected, strings.Join(*path, "/"), c.Name())
		case Black:
			return fmt.Errorf("%w: %q under %s", ErrSharedNode, c.Name(), strings.Join(*path, "/"))
		}
	}

	*path = (*path)[:len(*path)-1]
	state[n] = Black

	return nil
}
