package core

// RuntimeConfig contains configuration passed to the grid view at startup.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	CellW      int   // Columns per lattice cell
	CellH      int   // Rows per lattice cell
	Seed       int64 // RNG seed for block colors (0 = time based)
	ShowCursor bool  // Draw a marker on the next spiral cell
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		CellW:      4,
		CellH:      2,
		Seed:       0, // 0 means use current time in platform layer
		ShowCursor: true,
	}
}
