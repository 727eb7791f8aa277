// Package bfs provides tunable options and error definitions
// for breadth-first walks over an fstree.Node.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/patterns/fstree"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures Walk behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*WalkOptions)

// WalkOptions holds parameters and callbacks to customize Walk.
type WalkOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is emitted. If it returns an error,
	// Walk aborts and propagates that error.
	OnVisit func(name string, depth int) error

	// MaxDepth, if >= 0, keeps nodes deeper than it out of the queue.
	// Negative means no limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a WalkOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == -1)
//   - no-op OnVisit
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Ctx:      context.Background(),
		OnVisit:  func(string, int) error { return nil },
		MaxDepth: -1,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk below the given depth.
//
//	d >= 0: only nodes at depth <= d are visited (0 = root only)
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a breadth-first walk:
//   - Order: nodes in visit sequence.
//   - Depth: Depth[i] is the level of Order[i] (root = 0).
type Result struct {
	Order []fstree.Node
	Depth []int
}

// Names returns the names of Order.
func (r *Result) Names() []string {
	return fstree.Names(r.Order)
}

// Levels groups visited names by depth: Levels()[d] lists level d left to right.
func (r *Result) Levels() [][]string {
	levels := make([][]string, 0)
	for i, n := range r.Order {
		d := r.Depth[i]
		for len(levels) <= d {
			levels = append(levels, []string{})
		}
		levels[d] = append(levels[d], n.Name())
	}

	return levels
}
