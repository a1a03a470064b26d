// Package hooking provides the hook infrastructure that display components use
// to report what they do, together with a set of tracers that consume the
// reports.
package hooking

import (
	"sync"
	"sync/atomic"
)

// HookPos names a point at which a domain invokes its hooks.
type HookPos struct {
	Name string
}

// HookCtx is what a hook receives. Item holds one of the task records defined
// in this package.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable is a named object that hooks can be attached to.
type Hookable interface {
	Name() string
	AcceptHook(hook Hook)
	NumHooks() int
	Hooks() []Hook
}

// Hook is invoked by a Hookable.
type Hook interface {
	Func(ctx HookCtx)
}

// HookFunc adapts an ordinary function into a Hook.
type HookFunc func(ctx HookCtx)

// Func calls f(ctx).
func (f HookFunc) Func(ctx HookCtx) {
	f(ctx)
}

// HookableBase implements the hook list of a Hookable. Hooks are attached
// while the system is assembled and invoked on every hardware transition, so
// the list is copied on write and read without locking.
type HookableBase struct {
	writeLock sync.Mutex
	hooks     atomic.Pointer[[]Hook]
}

func (h *HookableBase) snapshot() []Hook {
	list := h.hooks.Load()
	if list == nil {
		return nil
	}

	return *list
}

// NumHooks returns the number of hooks attached.
func (h *HookableBase) NumHooks() int {
	return len(h.snapshot())
}

// Hooks returns a copy of the attached hooks.
func (h *HookableBase) Hooks() []Hook {
	return append([]Hook(nil), h.snapshot()...)
}

// AcceptHook attaches a hook. Attaching the same hook twice panics.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.writeLock.Lock()
	defer h.writeLock.Unlock()

	current := h.snapshot()
	for _, existing := range current {
		if existing == hook {
			panic("duplicated hook")
		}
	}

	next := make([]Hook, len(current), len(current)+1)
	copy(next, current)
	next = append(next, hook)

	h.hooks.Store(&next)
}

// InvokeHook calls every attached hook in the order they were attached.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.snapshot() {
		hook.Func(ctx)
	}
}
