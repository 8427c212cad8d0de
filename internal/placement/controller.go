package placement

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockspiral/internal/core"
	"github.com/vovakirdan/blockspiral/internal/spiral"
)

// Store is the blocks store the controller persists to. List returns blocks
// in creation order.
type Store interface {
	List(ctx context.Context) ([]core.Block, error)
	Create(ctx context.Context, b core.Block) (core.Block, error)
	Clear(ctx context.Context) error
}

// Controller owns the observed grid and issues placement requests.
// Only one store request runs at a time; overlapping calls get ErrBusy.
type Controller struct {
	store  Store
	colors ColorSource
	logger *log.Logger

	mu      sync.Mutex
	grid    Grid
	pending bool
	synced  bool // a request has succeeded, so grid mirrors the store
	lastErr error
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for placement events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithColors overrides the color source.
func WithColors(src ColorSource) Option {
	return func(c *Controller) {
		if src != nil {
			c.colors = src
		}
	}
}

// NewController creates a controller with an empty grid. Call Load to sync
// with the store.
func NewController(store Store, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		colors: NewRandomColors(0),
		logger: log.New(io.Discard),
		grid:   EmptyGrid(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// begin marks a request as outstanding and returns the grid it starts from.
func (c *Controller) begin() (Grid, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return Grid{}, ErrBusy
	}
	c.pending = true
	return c.grid, nil
}

// finish ends the outstanding request, applying next when it is non-nil.
func (c *Controller) finish(next *Grid, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if next != nil {
		c.grid = *next
	}
	if err == nil {
		c.synced = true
	}
	c.lastErr = err
	c.pending = false
}

// Load replaces the grid with the store's blocks and rebuilds the cursor.
// If the store has never been reached, a failure leaves the grid empty at the
// initial cursor. Once a request has succeeded, a failed reload keeps the
// current grid so the next placement cannot revisit a stored position.
func (c *Controller) Load(ctx context.Context) error {
	if _, err := c.begin(); err != nil {
		return err
	}

	blocks, err := c.store.List(ctx)
	if err != nil {
		f := &Failure{Kind: ErrLoad, Err: err}
		c.failLoad(f)
		c.logger.Warn("load failed", "error", err, "kept_blocks", c.Snapshot().Len())
		return f
	}

	g := Loaded(blocks)
	c.finish(&g, nil)
	c.logger.Debug("blocks loaded", "count", g.Len(), "cursor", g.Cursor)
	return nil
}

// failLoad ends a failed Load, resetting the grid only before the first
// successful request.
func (c *Controller) failLoad(f *Failure) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.synced {
		c.grid = EmptyGrid()
	}
	c.lastErr = f
	c.pending = false
}

// Place stores the next block and appends it once the store confirms.
// On failure neither the blocks nor the cursor change.
func (c *Controller) Place(ctx context.Context) (core.Block, error) {
	g, err := c.begin()
	if err != nil {
		return core.Block{}, err
	}

	plan := g.Plan(c.colors)
	saved, err := c.store.Create(ctx, plan.Block)
	if err != nil {
		f := &Failure{Kind: ErrPlace, Err: err}
		c.finish(nil, f)
		c.logger.Warn("placement failed", "position", plan.Block.Position, "error", err)
		return core.Block{}, f
	}

	next := g.Commit(plan, saved)
	c.finish(&next, nil)
	c.logger.Debug("block placed", "id", saved.ID, "position", saved.Position, "color", saved.Color)
	return saved, nil
}

// Clear deletes every block in the store and resets the grid.
// On failure the grid is left untouched.
func (c *Controller) Clear(ctx context.Context) error {
	if _, err := c.begin(); err != nil {
		return err
	}

	if err := c.store.Clear(ctx); err != nil {
		f := &Failure{Kind: ErrClear, Err: err}
		c.finish(nil, f)
		c.logger.Warn("clear failed", "error", err)
		return f
	}

	empty := EmptyGrid()
	c.finish(&empty, nil)
	c.logger.Debug("blocks cleared")
	return nil
}

// Snapshot returns a copy of the current grid.
func (c *Controller) Snapshot() Grid {
	c.mu.Lock()
	defer c.mu.Unlock()
	blocks := make([]core.Block, len(c.grid.Blocks))
	copy(blocks, c.grid.Blocks)
	return Grid{Blocks: blocks, Cursor: c.grid.Cursor}
}

// Blocks returns a copy of the observed blocks in placement order.
func (c *Controller) Blocks() []core.Block {
	return c.Snapshot().Blocks
}

// Cursor returns the current traversal cursor.
func (c *Controller) Cursor() spiral.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Cursor
}

// Busy reports whether a store request is outstanding.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Err returns the error from the most recent completed request, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
