package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ColorPrefix is the fixed prefix of the textual color form.
const ColorPrefix = "#"

// MaxColor is the largest 24-bit RGB value.
const MaxColor Color = 0xffffff

// ErrInvalidColor is returned when a color string is not of the form #rrggbb.
var ErrInvalidColor = errors.New("core: invalid color")

// Color is a 24-bit RGB value. Only the low 24 bits are meaningful.
type Color uint32

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB returns the red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String returns the textual form, e.g. "#0a1b2c".
func (c Color) String() string {
	return fmt.Sprintf("%s%06x", ColorPrefix, uint32(c&MaxColor))
}

// ParseColor parses a "#rrggbb" string. Hex digits are case-insensitive.
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, ColorPrefix)
	if !ok || len(hex) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color(v), nil
}

// MarshalJSON encodes the color as its textual form.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a "#rrggbb" string.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidColor, data)
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
