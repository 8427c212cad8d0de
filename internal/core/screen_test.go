package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with unpainted spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Painted {
				t.Fatalf("New screen should be unpainted spaces, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return an unpainted space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return an unpainted space")
	}
}

func TestScreenPaint(t *testing.T) {
	s := NewScreen(10, 10)
	red := RGB(0xff, 0, 0)
	s.Paint(NewRect(2, 2, 3, 2), red)

	for y := 2; y < 4; y++ {
		for x := 2; x < 5; x++ {
			c := s.GetCell(x, y)
			if !c.Painted || c.Bg != red {
				t.Errorf("Paint: expected red at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	if s.GetCell(1, 1).Painted || s.GetCell(5, 4).Painted {
		t.Error("Paint should not affect outside area")
	}

	// Clipped at the edges without panicking
	s.Paint(NewRect(8, 8, 5, 5), red)
	if !s.GetCell(9, 9).Painted {
		t.Error("Paint should fill the visible part of a clipped rect")
	}
}

func TestScreenSetKeepsBackground(t *testing.T) {
	s := NewScreen(4, 4)
	blue := RGB(0, 0, 0xff)
	s.Paint(NewRect(0, 0, 4, 4), blue)
	s.Set(1, 1, '·')

	c := s.GetCell(1, 1)
	if c.Rune != '·' || c.Bg != blue || !c.Painted {
		t.Errorf("Set should keep background, got %+v", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Paint(NewRect(0, 0, 10, 10), RGB(1, 2, 3))
	s.DrawText(0, 0, "XXXXXXXXXX")

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Painted {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "··x")

	if s.GetCell(2, 0).Rune != 'x' {
		t.Errorf("DrawText should advance one cell per rune, got row %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.GetCell(1, 1).Rune != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.GetCell(1, 1).Rune)
	}
	if s.GetCell(5, 1).Rune != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", s.GetCell(5, 1).Rune)
	}
	if s.GetCell(1, 4).Rune != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", s.GetCell(1, 4).Rune)
	}
	if s.GetCell(5, 4).Rune != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.GetCell(5, 4).Rune)
	}

	for x := 2; x < 5; x++ {
		if s.GetCell(x, 1).Rune != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, s.GetCell(x, 1).Rune)
		}
	}
	for y := 2; y < 4; y++ {
		if s.GetCell(1, y).Rune != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, s.GetCell(1, y).Rune)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if out := s.Row(-1); out != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", out)
	}
}

func TestScreenOffScreenShapes(t *testing.T) {
	s := NewScreen(6, 4)
	if s.Bounds() != NewRect(0, 0, 6, 4) {
		t.Errorf("Bounds() = %+v", s.Bounds())
	}

	s.Paint(NewRect(10, 10, 4, 2), 0xff0000)
	s.DrawBox(NewRect(-8, 0, 4, 4))
	if s.String() != NewScreen(6, 4).String() {
		t.Errorf("off-screen shapes changed the buffer:\n%s", s.String())
	}

	// Partly visible shapes are clipped, not dropped.
	s.Paint(NewRect(4, 2, 4, 4), 0x00ff00)
	if c := s.GetCell(5, 3); !c.Painted || c.Bg != 0x00ff00 {
		t.Errorf("clipped paint missing at (5, 3): %+v", c)
	}
	s.DrawBox(NewRect(-2, -2, 4, 4))
	if got := s.GetCell(1, 1).Rune; got != '┘' {
		t.Errorf("clipped box corner = %q, want '┘'", got)
	}
}
