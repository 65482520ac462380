package task

import (
	"context"
	"slices"
)

// Group is a cancellation scope for scheduled tasks
// Groups form a tree; cancelling a group cancels every descendant
// A nil parent creates a root group
// Groups are owned by the frame goroutine like the Scheduler
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc

	parent   *Group
	children []*Group
	cleanups []*cleanup
	done     bool
}

type cleanup struct {
	fn func()
}

// NewGroup creates a child group of parent
func NewGroup(parent *Group) *Group {
	base := context.Background()
	if parent != nil {
		base = parent.ctx
	}
	ctx, cancel := context.WithCancel(base)
	g := &Group{ctx: ctx, cancel: cancel, parent: parent}
	if parent != nil {
		if parent.done {
			g.done = true
			cancel()
		} else {
			parent.children = append(parent.children, g)
		}
	}
	return g
}

// Cancel drops all tasks of the group and its children before their next run
// Cleanups of the subtree run synchronously, children first, each in registration order
// Safe to call on nil and more than once
func (g *Group) Cancel() {
	if g == nil || g.done {
		return
	}
	g.cancelTree()
	if g.parent != nil {
		g.parent.children = slices.DeleteFunc(g.parent.children, func(c *Group) bool {
			return c == g
		})
	}
}

func (g *Group) cancelTree() {
	g.done = true
	g.cancel()
	children := g.children
	g.children = nil
	for _, c := range children {
		c.cancelTree()
	}
	cleanups := g.cleanups
	g.cleanups = nil
	for _, c := range cleanups {
		c.fn()
	}
}

// OnCancel registers fn to run when the group or an ancestor is cancelled
// The returned release func unregisters fn; fn runs immediately on an already cancelled group
func (g *Group) OnCancel(fn func()) (release func()) {
	if g == nil {
		return func() {}
	}
	if g.done || g.ctx.Err() != nil {
		fn()
		return func() {}
	}
	c := &cleanup{fn: fn}
	g.cleanups = append(g.cleanups, c)
	return func() {
		g.cleanups = slices.DeleteFunc(g.cleanups, func(o *cleanup) bool {
			return o == c
		})
	}
}

// Canceled reports whether the group or one of its ancestors was cancelled
func (g *Group) Canceled() bool {
	if g == nil {
		return false
	}
	return g.ctx.Err() != nil
}

// Context exposes the group as a context for blocking helpers
func (g *Group) Context() context.Context {
	if g == nil {
		return context.Background()
	}
	return g.ctx
}
