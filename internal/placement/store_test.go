package placement

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/blockspiral/internal/core"
)

// memStore is an in-memory Store that assigns sequential IDs.
type memStore struct {
	mu        sync.Mutex
	blocks    []core.Block
	nextID    int
	listErr   error
	createErr error
	clearErr  error
	creates   int
}

func (s *memStore) List(_ context.Context) ([]core.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]core.Block, len(s.blocks))
	copy(out, s.blocks)
	return out, nil
}

func (s *memStore) Create(_ context.Context, b core.Block) (core.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	if s.createErr != nil {
		return core.Block{}, s.createErr
	}
	s.nextID++
	b.ID = fmt.Sprintf("b%d", s.nextID)
	s.blocks = append(s.blocks, b)
	return b, nil
}

func (s *memStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clearErr != nil {
		return s.clearErr
	}
	s.blocks = nil
	return nil
}

// blockingStore holds Create until release is closed.
type blockingStore struct {
	memStore
	entered chan struct{}
	release chan struct{}
}

func (s *blockingStore) Create(ctx context.Context, b core.Block) (core.Block, error) {
	close(s.entered)
	<-s.release
	return s.memStore.Create(ctx, b)
}

// scriptedColors replays a fixed list of colors, then cycles it.
type scriptedColors struct {
	colors []core.Color
	i      int
}

func (s *scriptedColors) Next() core.Color {
	c := s.colors[s.i%len(s.colors)]
	s.i++
	return c
}

var errStoreDown = errors.New("connection refused")

// spiralBlocks returns the first n spiral cells as blocks.
func spiralBlocks(positions []core.Position) []core.Block {
	blocks := make([]core.Block, len(positions))
	for i, p := range positions {
		blocks[i] = core.Block{ID: fmt.Sprintf("b%d", i+1), Position: p, Color: core.Color(i)}
	}
	return blocks
}
