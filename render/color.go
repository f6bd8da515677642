package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// ErrColor is returned when a hex color string cannot be parsed.
var ErrColor = errors.New("render: invalid color")

// Default appearance colors, matching the application defaults.
const (
	DefaultFG = "#1b1f23"
	DefaultBG = "#ffffff"
)

// ParseHex parses a hex color of the form "#rrggbb", "rrggbb", "#rgb",
// or the alpha variants, into a gg color. Unlike gg.Hex it rejects
// malformed input instead of silently returning black.
func ParseHex(s string) (gg.RGBA, error) {
	norm, err := NormalizeHex(s)
	if err != nil {
		return gg.RGBA{}, err
	}
	return gg.Hex(norm), nil
}

// NormalizeHex validates a hex color string and returns it in canonical
// lowercase "#..." form, suitable for SVG style attributes.
func NormalizeHex(s string) (string, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return "", fmt.Errorf("%w: %q", ErrColor, s)
	}
	for i := 0; i < len(h); i++ {
		c := h[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return "", fmt.Errorf("%w: %q", ErrColor, s)
		}
	}
	return "#" + strings.ToLower(h), nil
}

// ContrastText returns black or white, whichever reads better against the
// given background, using perceived luminance.
func ContrastText(bg gg.RGBA) gg.RGBA {
	luminance := 0.299*bg.R*255 + 0.587*bg.G*255 + 0.114*bg.B*255
	if luminance > 186 {
		return gg.RGB(0, 0, 0)
	}
	return gg.RGB(1, 1, 1)
}
