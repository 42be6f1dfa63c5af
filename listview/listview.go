// Package listview implements the list-view data pipeline shared by every
// entity table in the dashboard: a query-state driven fetch cycle with
// client-side sorting layered on top of the loaded page.
package listview

import (
	"context"
	"errors"
	"sync"
)

// State is the lifecycle state of a list controller
type State string

const (
	// StateIdle means no fetch has been issued yet
	StateIdle State = "idle"
	// StateLoading means a fetch is in flight
	StateLoading State = "loading"
	// StateLoaded means the last fetch completed successfully
	StateLoaded State = "loaded"
	// StateError means the last fetch failed; the previously loaded rows
	// are preserved so the table never flashes to empty
	StateError State = "error"
)

// ErrClosed is returned when an operation is invoked on a closed controller
var ErrClosed = errors.New("list controller is closed")

// Query is the query state driving a list fetch: free-text filter, 1-based
// page number and page size. Any change triggers a fresh round-trip; nothing
// is cached across query-state changes.
type Query struct {
	Filter   string
	Page     int
	PageSize int
}

// Fetcher retrieves one page of rows for the given query state
type Fetcher[T any] func(ctx context.Context, q Query) ([]T, error)

// PageCounter retrieves the total page count for a filter and page size.
// It deliberately takes no page number: the count never depends on it.
type PageCounter func(ctx context.Context, filter string, pageSize int) (int, error)

// Deleter removes one row by identifier
type Deleter func(ctx context.Context, id int) error

// Snapshot is a point-in-time copy of the controller state
type Snapshot[T any] struct {
	State      State
	Rows       []T
	TotalPages int
	Query      Query
	Err        error
}

// Controller owns the query state and fetch lifecycle for one entity table.
// It is safe for concurrent use; fetches run without holding the lock and
// each one carries a sequence number so that a slow stale response can never
// overwrite the result of a newer fetch.
type Controller[T any] struct {
	mu sync.Mutex

	fetch      Fetcher[T]
	countPages PageCounter
	deleteRow  Deleter

	query      Query
	state      State
	rows       []T
	totalPages int
	lastErr    error

	seq    uint64
	closed bool

	// page-count bookkeeping: the count is recomputed only when the
	// {filter, pageSize} pair it was computed for changes
	counted       bool
	countedFilter string
	countedSize   int
}

// NewController creates a list controller with the given data-access hooks
// and an initial page size
func NewController[T any](fetch Fetcher[T], countPages PageCounter, deleteRow Deleter, pageSize int) *Controller[T] {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Controller[T]{
		fetch:      fetch,
		countPages: countPages,
		deleteRow:  deleteRow,
		query:      Query{Page: 1, PageSize: pageSize},
		state:      StateIdle,
	}
}

// SetFilter changes the free-text filter and refetches. The page resets to 1
// because the old page number is meaningless against a new result set.
func (c *Controller[T]) SetFilter(ctx context.Context, filter string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.query.Filter = filter
	c.query.Page = 1
	c.mu.Unlock()
	return c.reload(ctx)
}

// SetPage changes the current page and refetches
func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.query.Page = page
	c.mu.Unlock()
	return c.reload(ctx)
}

// SetPageSize changes the page size and refetches from page 1
func (c *Controller[T]) SetPageSize(ctx context.Context, size int) error {
	if size < 1 {
		size = 1
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.query.PageSize = size
	c.query.Page = 1
	c.mu.Unlock()
	return c.reload(ctx)
}

// SetQuery applies a complete query state in one step and refetches
func (c *Controller[T]) SetQuery(ctx context.Context, q Query) error {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.query = q
	c.mu.Unlock()
	return c.reload(ctx)
}

// Restore installs a query state without fetching. Callers use it when the
// next operation reloads anyway, e.g. a delete issued against the view state
// the browser already holds.
func (c *Controller[T]) Restore(q Query) error {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.query = q
	return nil
}

// Refresh refetches the current query state, e.g. after a mutation
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.reload(ctx)
}

// DeleteRow deletes one row and refetches the same query state. If the
// deleted row was the last one on the last page, the controller steps back a
// page instead of leaving a permanently empty table on screen.
func (c *Controller[T]) DeleteRow(ctx context.Context, id int) error {
	if c.deleteRow == nil {
		return errors.New("list controller has no deleter")
	}
	if err := c.deleteRow(ctx, id); err != nil {
		return err
	}
	if err := c.reload(ctx); err != nil {
		return err
	}
	for {
		c.mu.Lock()
		steppedOff := !c.closed && c.state == StateLoaded && len(c.rows) == 0 && c.query.Page > 1
		page := c.query.Page
		c.mu.Unlock()
		if !steppedOff {
			return nil
		}
		if err := c.SetPage(ctx, page-1); err != nil {
			return err
		}
	}
}

// Snapshot returns a copy of the current controller state
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows := make([]T, len(c.rows))
	copy(rows, c.rows)
	return Snapshot[T]{
		State:      c.state,
		Rows:       rows,
		TotalPages: c.totalPages,
		Query:      c.query,
		Err:        c.lastErr,
	}
}

// Close marks the controller inert: in-flight fetch results are discarded
// and further operations fail with ErrClosed
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// reload runs one fetch cycle for the current query state. The sequence
// number recorded before the network round-trip must still be the latest one
// when the result comes back, otherwise the result is dropped.
func (c *Controller[T]) reload(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.seq++
	seq := c.seq
	q := c.query
	needCount := !c.counted || c.countedFilter != q.Filter || c.countedSize != q.PageSize
	c.state = StateLoading
	c.mu.Unlock()

	rows, fetchErr := c.fetch(ctx, q)

	var pages int
	var countErr error
	if fetchErr == nil && needCount && c.countPages != nil {
		pages, countErr = c.countPages(ctx, q.Filter, q.PageSize)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || seq != c.seq {
		// A newer fetch was issued (or the table went away) while this one
		// was on the wire; its result must not overwrite fresher state.
		return nil
	}

	if fetchErr != nil {
		c.state = StateError
		c.lastErr = fetchErr
		return fetchErr
	}
	if countErr != nil {
		c.state = StateError
		c.lastErr = countErr
		return countErr
	}

	c.rows = rows
	if needCount && c.countPages != nil {
		c.totalPages = pages
		c.counted = true
		c.countedFilter = q.Filter
		c.countedSize = q.PageSize
	}
	c.state = StateLoaded
	c.lastErr = nil
	return nil
}
