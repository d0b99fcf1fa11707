// Package viewmodel holds the in-memory state backing one page: the fetched
// list, its loading flag, the current filters, and the in-flight mutation
// guards. It is transport-agnostic; the gateway is injected as a loader.
package viewmodel

import (
	"context"
	"sync"
)

// UserPrompt is the confirmation capability for destructive actions. The
// HTTP layer passes AutoConfirm because the browser already asked via
// hx-confirm; tests inject fakes.
type UserPrompt interface {
	Confirm(message string) bool
}

type autoConfirm struct{}

func (autoConfirm) Confirm(string) bool { return true }

// AutoConfirm approves every prompt.
var AutoConfirm UserPrompt = autoConfirm{}

// Loader fetches the collection for the current filters.
type Loader[T, F any] func(ctx context.Context, filters F) ([]T, error)

// Collection manages one resource collection for one page. All methods are
// safe for concurrent use; handlers run on arbitrary goroutines.
type Collection[T, F any] struct {
	mu       sync.Mutex
	loader   Loader[T, F]
	prompt   UserPrompt
	filters  F
	items    []T
	loading  bool
	lastErr  error
	seq      uint64
	inFlight map[string]bool
}

// State is a point-in-time copy of the collection for rendering.
type State[T, F any] struct {
	Items     []T
	Loading   bool
	LastError error
	Filters   F
}

func New[T, F any](loader Loader[T, F], prompt UserPrompt) *Collection[T, F] {
	if prompt == nil {
		prompt = AutoConfirm
	}
	return &Collection[T, F]{
		loader:   loader,
		prompt:   prompt,
		inFlight: make(map[string]bool),
	}
}

// Snapshot returns a copy of the current state. The items slice is copied so
// renderers never observe a concurrent replacement.
func (c *Collection[T, F]) Snapshot() State[T, F] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return State[T, F]{
		Items:     items,
		Loading:   c.loading,
		LastError: c.lastErr,
		Filters:   c.filters,
	}
}

// Filters returns the current filter state.
func (c *Collection[T, F]) Filters() F {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// SetFilter merges a filter change and re-fetches. The merge is synchronous;
// the fetch that follows supersedes any fetch still in flight.
func (c *Collection[T, F]) SetFilter(ctx context.Context, apply func(*F)) error {
	c.mu.Lock()
	apply(&c.filters)
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// EditFilter merges a filter change without fetching. This is the path for
// fine-grained, client-side criteria (substring filters): they are applied as
// pure predicates over the last-fetched items and never touch the network.
func (c *Collection[T, F]) EditFilter(apply func(*F)) {
	c.mu.Lock()
	apply(&c.filters)
	c.mu.Unlock()
}

// Refresh fetches with the current filters. Overlapping fetches are gated by
// a sequence number: only the latest-issued fetch may mutate state, so a slow
// response from an earlier filter never overwrites a newer one. On failure
// the previous items stay visible and only lastError changes.
func (c *Collection[T, F]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	filters := c.filters
	c.loading = true
	c.mu.Unlock()

	items, err := c.loader(ctx, filters)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		// Superseded by a later fetch; its result owns the state.
		return nil
	}
	c.loading = false
	if err != nil {
		c.lastErr = err
		return err
	}
	c.items = items
	c.lastErr = nil
	return nil
}

// Create runs the gateway call and, on success, re-fetches. No optimistic
// merge: the server assigns identity.
func (c *Collection[T, F]) Create(ctx context.Context, do func(context.Context) error) error {
	if err := do(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Update runs the gateway call and, on success, re-fetches.
func (c *Collection[T, F]) Update(ctx context.Context, do func(context.Context) error) error {
	if err := do(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Delete confirms with the user, guards against a second delete of the same
// record while one is outstanding, runs the gateway call, and only after the
// server confirmed removes matching records locally. It reports whether the
// deletion went through.
func (c *Collection[T, F]) Delete(ctx context.Context, id, message string, do func(context.Context) error, match func(T) bool) (bool, error) {
	if !c.prompt.Confirm(message) {
		return false, nil
	}
	if !c.begin(id) {
		return false, nil
	}
	defer c.end(id)

	if err := do(ctx); err != nil {
		return false, err
	}

	c.mu.Lock()
	kept := c.items[:0]
	for _, item := range c.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.mu.Unlock()
	return true, nil
}

// Patch runs the gateway call and, only after the server confirmed, applies
// the local patch to matching records. On error the prior value is untouched.
func (c *Collection[T, F]) Patch(ctx context.Context, id string, do func(context.Context) error, match func(T) bool, patch func(*T)) error {
	if !c.begin(id) {
		return nil
	}
	defer c.end(id)

	if err := do(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	for i := range c.items {
		if match(c.items[i]) {
			patch(&c.items[i])
		}
	}
	c.mu.Unlock()
	return nil
}

// Mutating reports whether a mutation for the given record is outstanding,
// used to disable the triggering control.
func (c *Collection[T, F]) Mutating(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight[id]
}

func (c *Collection[T, F]) begin(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[id] {
		return false
	}
	c.inFlight[id] = true
	return true
}

func (c *Collection[T, F]) end(id string) {
	c.mu.Lock()
	delete(c.inFlight, id)
	c.mu.Unlock()
}
