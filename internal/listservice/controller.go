// Package listservice manages paginated list state for infinite scroll
// screens: initial load, append-on-scroll, pull-to-refresh and optimistic
// patches after mutations.
package listservice

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-petr/trade-ledger/pkg/pagepkg"
)

// State is the lifecycle state of a paginated list.
type State int

// Controller states. Ready is the only state that accepts new fetches.
const (
	Idle State = iota
	Loading
	LoadingMore
	Refreshing
	Ready
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case LoadingMore:
		return "loading more"
	case Refreshing:
		return "refreshing"
	case Ready:
		return "ready"
	}

	return fmt.Sprintf("state(%d)", int(s))
}

// Fetch retrieves one page from the remote list endpoint. Pages are
// numbered from 1.
type Fetch[T any] func(ctx context.Context, page, limit int) (pagepkg.Page[T], error)

// Key extracts a stable identifier from an item for patch operations.
type Key[T any] func(T) string

// Controller owns the in-memory item collection of one list screen.
// Only the owning screen mutates it; the mutex makes the bookkeeping
// safe when a UI runtime overlaps a refresh with a pending load-more.
type Controller[T any] struct {
	fetch    Fetch[T]
	key      Key[T]
	pageSize int

	mu       sync.Mutex
	state    State
	items    []T
	page     int
	hasMore  bool
	inFlight bool
	seq      uint64 // bumped per request; stale responses are dropped
}

// New returns a controller for one list endpoint.
func New[T any](pageSize int, key Key[T], fetch Fetch[T]) *Controller[T] {
	return &Controller[T]{
		fetch:    fetch,
		key:      key,
		pageSize: pageSize,
		state:    Idle,
	}
}

// Items returns a copy of the current collection in display order.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)

	return out
}

// State returns the current lifecycle state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// HasMore reports whether another page is believed to exist. Without a
// server-sent total this is the short-page heuristic and may be wrong
// when the final page is exactly full.
func (c *Controller[T]) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hasMore
}

// Load performs the initial fetch of page 1.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil
	}

	c.inFlight = true
	c.state = Loading
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	return c.fetchPage(ctx, 1, seq, true)
}

// LoadMore fetches the next page and appends it. It is a no-op while a
// fetch is in flight or when no further page is believed to exist;
// requests are never queued.
func (c *Controller[T]) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight || !c.hasMore || c.state == Idle {
		c.mu.Unlock()
		return nil
	}

	c.inFlight = true
	c.state = LoadingMore
	c.seq++
	seq := c.seq
	page := c.page + 1
	c.mu.Unlock()

	return c.fetchPage(ctx, page, seq, false)
}

// Refresh replaces the collection wholesale from page 1. It supersedes
// any pending load-more: the older response is dropped on arrival.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.state == Refreshing {
		c.mu.Unlock()
		return nil
	}

	c.state = Refreshing
	c.inFlight = true
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	return c.fetchPage(ctx, 1, seq, true)
}

func (c *Controller[T]) fetchPage(ctx context.Context, page int, seq uint64, replace bool) error {
	l := zerolog.Ctx(ctx)

	fetched, err := c.fetch(ctx, page, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		// Superseded by a newer request; drop silently.
		return nil
	}

	c.inFlight = false
	c.state = Ready

	if err != nil {
		// Recoverable: keep items and hasMore unchanged so the user
		// can retry.
		l.Warn().Err(err).Int("page", page).Msg("list fetch failed")
		return err
	}

	if replace {
		c.items = append([]T(nil), fetched.Items...)
	} else {
		c.items = append(c.items, fetched.Items...)
	}

	c.page = page

	if fetched.HasTotal {
		c.hasMore = page < fetched.TotalPages
	} else {
		c.hasMore = len(fetched.Items) == c.pageSize
	}

	return nil
}

// Upsert patches a mutated item into the collection: replace by key if
// present, otherwise prepend (new items appear on top, matching screen
// behavior).
func (c *Controller[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.key(item)

	for i := range c.items {
		if c.key(c.items[i]) == id {
			c.items[i] = item
			return
		}
	}

	c.items = append([]T{item}, c.items...)
}

// Remove drops the item with the given key, if present.
func (c *Controller[T]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.key(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
