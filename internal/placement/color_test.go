package placement

import (
	"testing"

	"github.com/vovakirdan/blockspiral/internal/core"
)

func TestPickColorFirstBlock(t *testing.T) {
	src := &scriptedColors{colors: []core.Color{0xabcdef}}
	if c := PickColor(src, nil); c != 0xabcdef {
		t.Errorf("PickColor() = %s, expected #abcdef", c)
	}
	if src.i != 1 {
		t.Errorf("drew %d colors, expected 1", src.i)
	}
}

func TestPickColorResamples(t *testing.T) {
	last := core.Color(0x00ff00)
	blocks := []core.Block{{Color: 0xff0000}, {Color: last}}
	src := &scriptedColors{colors: []core.Color{last, last, last, 0x0000ff}}

	if c := PickColor(src, blocks); c != 0x0000ff {
		t.Errorf("PickColor() = %s, expected #0000ff", c)
	}
	if src.i != 4 {
		t.Errorf("drew %d colors, expected 4", src.i)
	}
}

func TestPickColorOnlyChecksLastBlock(t *testing.T) {
	// Matching an earlier block is allowed.
	blocks := []core.Block{{Color: 0x111111}, {Color: 0x222222}}
	src := &scriptedColors{colors: []core.Color{0x111111}}

	if c := PickColor(src, blocks); c != 0x111111 {
		t.Errorf("PickColor() = %s, expected #111111", c)
	}
}

func TestRandomColorsDeterministic(t *testing.T) {
	a := NewRandomColors(42)
	b := NewRandomColors(42)
	for i := 0; i < 100; i++ {
		ca, cb := a.Next(), b.Next()
		if ca != cb {
			t.Fatalf("draw %d: %s vs %s with the same seed", i, ca, cb)
		}
		if ca > core.MaxColor {
			t.Fatalf("draw %d: %s exceeds 24 bits", i, ca)
		}
	}
}
