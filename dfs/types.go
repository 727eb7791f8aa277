// Package dfs defines options, errors, and the result type for depth-first walks.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/patterns/fstree"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("dfs: invalid option supplied")

// Option configures Walk via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Walk.
type Option func(*WalkOptions)

// WalkOptions holds parameters and callbacks for Walk.
type WalkOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is called for each emitted node with its depth
	// (root = 0). Returning an error aborts the walk.
	OnVisit func(name string, depth int) error

	// MaxDepth, if non-negative, stops expanding containers at that depth.
	// 0 emits only the root. Default is -1 (no limit).
	MaxDepth int

	err error
}

// DefaultOptions returns WalkOptions with a background context,
// no hook, and no depth limit.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithContext sets the context checked before each emitted node.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *WalkOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits container expansion to depths below limit.
//
//	limit >= 0: nodes deeper than limit are not emitted
//	limit <  0: ErrOptionViolation
func WithMaxDepth(limit int) Option {
	return func(o *WalkOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// Result captures a depth-first walk.
type Result struct {
	// Order holds nodes in pre-order emission sequence.
	Order []fstree.Node

	// Depth[i] is the depth of Order[i]; the root has depth 0.
	Depth []int
}

// Names returns the names of Order.
func (r *Result) Names() []string {
	return fstree.Names(r.Order)
}
