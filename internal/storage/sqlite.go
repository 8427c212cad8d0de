// Package storage provides SQLite-based persistence for placed blocks.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/blockspiral/internal/core"
	"github.com/vovakirdan/blockspiral/internal/placement"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store manages the SQLite database connection for block persistence.
type Store struct {
	db *sql.DB
}

// BlockRecord is a stored block with its insertion metadata.
type BlockRecord struct {
	Seq       int64
	Block     core.Block
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != MemoryPath {
		// Expand ~ to home directory
		if dbPath != "" && dbPath[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}

		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if dbPath == MemoryPath {
		// Every pooled connection would get its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// seq preserves insertion order, which cursor reconstruction depends on.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS blocks (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			x INTEGER NOT NULL CHECK (x >= 0),
			y INTEGER NOT NULL CHECK (y >= 0),
			color INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateBlock stores a block and returns it with its ID.
// A new UUID is assigned when b.ID is empty.
func (s *Store) CreateBlock(ctx context.Context, b core.Block) (core.Block, error) {
	if !b.Position.Valid() {
		return core.Block{}, fmt.Errorf("storage: invalid position %v", b.Position)
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO blocks (id, x, y, color) VALUES (?, ?, ?, ?)",
		b.ID, b.Position.X, b.Position.Y, int64(b.Color),
	)
	if err != nil {
		return core.Block{}, fmt.Errorf("storage: cannot save block: %w", err)
	}

	return b, nil
}

// ListBlocks returns every block in insertion order.
func (s *Store) ListBlocks(ctx context.Context) ([]core.Block, error) {
	records, err := s.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	blocks := make([]core.Block, len(records))
	for i, r := range records {
		blocks[i] = r.Block
	}
	return blocks, nil
}

// ListRecords returns every block with its metadata in insertion order.
func (s *Store) ListRecords(ctx context.Context) ([]BlockRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, id, x, y, color, created_at
		 FROM blocks
		 ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query blocks: %w", err)
	}
	defer rows.Close()

	var records []BlockRecord
	for rows.Next() {
		var r BlockRecord
		var color int64
		var createdAt any
		if err := rows.Scan(&r.Seq, &r.Block.ID, &r.Block.Position.X, &r.Block.Position.Y, &color, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Block.Color = core.Color(color) & core.MaxColor
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// CountBlocks returns the number of stored blocks.
func (s *Store) CountBlocks(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM blocks").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count blocks: %w", err)
	}
	return n, nil
}

// ClearBlocks deletes every block and returns how many were removed.
func (s *Store) ClearBlocks(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM blocks")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear blocks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// List implements placement.Store.
func (s *Store) List(ctx context.Context) ([]core.Block, error) {
	return s.ListBlocks(ctx)
}

// Create implements placement.Store.
// This adapter lets the grid run directly on a local database without the HTTP store.
func (s *Store) Create(ctx context.Context, b core.Block) (core.Block, error) {
	b.ID = ""
	return s.CreateBlock(ctx, b)
}

// Clear implements placement.Store.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.ClearBlocks(ctx)
	return err
}

// Ensure Store implements placement.Store
var _ placement.Store = (*Store)(nil)
