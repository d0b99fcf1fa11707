package viewmodel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID     string
	Active bool
}

type query struct {
	Tag string
}

type fakePrompt struct {
	answer   bool
	messages []string
}

func (p *fakePrompt) Confirm(message string) bool {
	p.messages = append(p.messages, message)
	return p.answer
}

func TestRefreshReplacesItems(t *testing.T) {
	loader := func(ctx context.Context, q query) ([]item, error) {
		return []item{{ID: "a"}, {ID: "b"}}, nil
	}
	c := New(loader, nil)

	require.NoError(t, c.Refresh(context.Background()))

	state := c.Snapshot()
	assert.Len(t, state.Items, 2)
	assert.False(t, state.Loading)
	assert.NoError(t, state.LastError)
}

func TestRefreshErrorKeepsPreviousItems(t *testing.T) {
	var fail bool
	loader := func(ctx context.Context, q query) ([]item, error) {
		if fail {
			return nil, errors.New("backend down")
		}
		return []item{{ID: "a"}}, nil
	}
	c := New(loader, nil)
	require.NoError(t, c.Refresh(context.Background()))

	fail = true
	err := c.Refresh(context.Background())
	require.Error(t, err)

	state := c.Snapshot()
	assert.Len(t, state.Items, 1, "stale items stay visible on error")
	assert.EqualError(t, state.LastError, "backend down")

	fail = false
	require.NoError(t, c.Refresh(context.Background()))
	assert.NoError(t, c.Snapshot().LastError, "success clears the error")
}

func TestRefreshLastInitiatedWins(t *testing.T) {
	release := make(chan struct{})
	var mu sync.Mutex
	started := false

	loader := func(ctx context.Context, q query) ([]item, error) {
		if q.Tag == "slow" {
			mu.Lock()
			started = true
			mu.Unlock()
			<-release
			return []item{{ID: "stale"}}, nil
		}
		return []item{{ID: "fresh"}}, nil
	}
	c := New(loader, nil)
	c.EditFilter(func(q *query) { q.Tag = "slow" })

	done := make(chan error, 1)
	go func() { done <- c.Refresh(context.Background()) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return started
	}, time.Second, time.Millisecond)

	// A newer fetch completes while the first is still in flight.
	require.NoError(t, c.SetFilter(context.Background(), func(q *query) { q.Tag = "fast" }))

	close(release)
	require.NoError(t, <-done)

	state := c.Snapshot()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "fresh", state.Items[0].ID, "superseded fetch must not overwrite the newer result")
	assert.False(t, state.Loading)
}

func TestSetFilterFetchesEditFilterDoesNot(t *testing.T) {
	var calls int
	loader := func(ctx context.Context, q query) ([]item, error) {
		calls++
		return nil, nil
	}
	c := New(loader, nil)

	c.EditFilter(func(q *query) { q.Tag = "local" })
	assert.Equal(t, 0, calls)
	assert.Equal(t, "local", c.Filters().Tag)

	require.NoError(t, c.SetFilter(context.Background(), func(q *query) { q.Tag = "remote" }))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "remote", c.Filters().Tag)
}

func TestDeleteConfirmedRemovesLocally(t *testing.T) {
	loader := func(ctx context.Context, q query) ([]item, error) {
		return []item{{ID: "a"}, {ID: "b"}}, nil
	}
	c := New(loader, &fakePrompt{answer: true})
	require.NoError(t, c.Refresh(context.Background()))

	deleted, err := c.Delete(context.Background(), "a", "Löschen?",
		func(context.Context) error { return nil },
		func(it item) bool { return it.ID == "a" })
	require.NoError(t, err)
	assert.True(t, deleted)

	state := c.Snapshot()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "b", state.Items[0].ID)
}

func TestDeleteDeclinedIsNoOp(t *testing.T) {
	prompt := &fakePrompt{answer: false}
	c := New(func(ctx context.Context, q query) ([]item, error) {
		return []item{{ID: "a"}}, nil
	}, prompt)
	require.NoError(t, c.Refresh(context.Background()))

	var called bool
	deleted, err := c.Delete(context.Background(), "a", "Löschen?",
		func(context.Context) error { called = true; return nil },
		func(it item) bool { return it.ID == "a" })
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.False(t, called, "declined prompt must not reach the gateway")
	assert.Len(t, c.Snapshot().Items, 1)
	assert.Equal(t, []string{"Löschen?"}, prompt.messages)
}

func TestDeleteErrorKeepsItem(t *testing.T) {
	c := New(func(ctx context.Context, q query) ([]item, error) {
		return []item{{ID: "a"}}, nil
	}, &fakePrompt{answer: true})
	require.NoError(t, c.Refresh(context.Background()))

	deleted, err := c.Delete(context.Background(), "a", "Löschen?",
		func(context.Context) error { return errors.New("409") },
		func(it item) bool { return it.ID == "a" })
	require.Error(t, err)
	assert.False(t, deleted)
	assert.Len(t, c.Snapshot().Items, 1, "unconfirmed delete must not remove locally")
}

func TestPatchAppliesAfterConfirmation(t *testing.T) {
	c := New(func(ctx context.Context, q query) ([]item, error) {
		return []item{{ID: "a", Active: true}}, nil
	}, nil)
	require.NoError(t, c.Refresh(context.Background()))

	err := c.Patch(context.Background(), "a",
		func(context.Context) error { return nil },
		func(it item) bool { return it.ID == "a" },
		func(it *item) { it.Active = false })
	require.NoError(t, err)
	assert.False(t, c.Snapshot().Items[0].Active)
}

func TestPatchErrorLeavesValue(t *testing.T) {
	c := New(func(ctx context.Context, q query) ([]item, error) {
		return []item{{ID: "a", Active: true}}, nil
	}, nil)
	require.NoError(t, c.Refresh(context.Background()))

	err := c.Patch(context.Background(), "a",
		func(context.Context) error { return errors.New("boom") },
		func(it item) bool { return it.ID == "a" },
		func(it *item) { it.Active = false })
	require.Error(t, err)
	assert.True(t, c.Snapshot().Items[0].Active, "failed toggle keeps the prior value")
}

func TestMutationGuardBlocksSecondRequest(t *testing.T) {
	c := New(func(ctx context.Context, q query) ([]item, error) {
		return []item{{ID: "a", Active: true}}, nil
	}, nil)
	require.NoError(t, c.Refresh(context.Background()))

	var second bool
	err := c.Patch(context.Background(), "a",
		func(ctx context.Context) error {
			assert.True(t, c.Mutating("a"))
			return c.Patch(ctx, "a",
				func(context.Context) error { second = true; return nil },
				func(it item) bool { return it.ID == "a" },
				func(it *item) {})
		},
		func(it item) bool { return it.ID == "a" },
		func(it *item) { it.Active = false })
	require.NoError(t, err)
	assert.False(t, second, "overlapping mutation for the same record is dropped")
	assert.False(t, c.Mutating("a"))
}

func TestCreateRefreshesOnSuccess(t *testing.T) {
	var items []item
	c := New(func(ctx context.Context, q query) ([]item, error) {
		return items, nil
	}, nil)

	items = []item{{ID: "new"}}
	require.NoError(t, c.Create(context.Background(), func(context.Context) error { return nil }))
	assert.Len(t, c.Snapshot().Items, 1)

	err := c.Update(context.Background(), func(context.Context) error { return errors.New("422") })
	require.Error(t, err)
}
