// Package theme maps a color theme identifier to a concrete palette.
package theme

import (
	"strconv"
	"strings"

	"gerador_orcamentos/internal/domain/entities"
)

// DefaultID is used when the identifier is empty or unknown.
const DefaultID = "blue"

// RGB is a color with 0-255 channels.
type RGB struct {
	R, G, B uint8
}

// Ints returns the channels for APIs taking ints (fpdf).
func (c RGB) Ints() (int, int, int) {
	return int(c.R), int(c.G), int(c.B)
}

// Floats returns the channels in 0.0-1.0 (raw PDF "rg" operator).
func (c RGB) Floats() (float64, float64, float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// Tint blends c towards white; amount 0 keeps c, 1 is white.
func (c RGB) Tint(amount float64) RGB {
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*amount + 0.5)
	}
	return RGB{R: mix(c.R), G: mix(c.G), B: mix(c.B)}
}

// Palette is the set of colors a renderer draws with.
type Palette struct {
	ID        string
	Primary   RGB
	Secondary RGB
	Accent    RGB
	Text      RGB
}

var palettes = map[string]Palette{
	"blue": {
		ID:        "blue",
		Primary:   RGB{37, 99, 235},
		Secondary: RGB{30, 64, 175},
		Accent:    RGB{16, 185, 129},
		Text:      RGB{31, 41, 55},
	},
	"green": {
		ID:        "green",
		Primary:   RGB{22, 163, 74},
		Secondary: RGB{21, 128, 61},
		Accent:    RGB{234, 179, 8},
		Text:      RGB{31, 41, 55},
	},
	"purple": {
		ID:        "purple",
		Primary:   RGB{124, 58, 237},
		Secondary: RGB{91, 33, 182},
		Accent:    RGB{236, 72, 153},
		Text:      RGB{31, 41, 55},
	},
	"orange": {
		ID:        "orange",
		Primary:   RGB{234, 88, 12},
		Secondary: RGB{194, 65, 12},
		Accent:    RGB{37, 99, 235},
		Text:      RGB{31, 41, 55},
	},
	"red": {
		ID:        "red",
		Primary:   RGB{220, 38, 38},
		Secondary: RGB{153, 27, 27},
		Accent:    RGB{245, 158, 11},
		Text:      RGB{31, 41, 55},
	},
	"dark": {
		ID:        "dark",
		Primary:   RGB{55, 65, 81},
		Secondary: RGB{17, 24, 39},
		Accent:    RGB{37, 99, 235},
		Text:      RGB{17, 24, 39},
	},
}

// Resolve returns the palette for id with override applied on top.
// Unknown ids fall back to the default palette; malformed override colors are ignored.
func Resolve(id string, override *entities.ThemeOverride) Palette {
	p, ok := palettes[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		p = palettes[DefaultID]
	}
	if override == nil {
		return p
	}
	apply := func(dst *RGB, hex string) {
		if c, ok := ParseHex(hex); ok {
			*dst = c
		}
	}
	apply(&p.Primary, override.Primary)
	apply(&p.Secondary, override.Secondary)
	apply(&p.Accent, override.Accent)
	apply(&p.Text, override.Text)
	return p
}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (RGB, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}
