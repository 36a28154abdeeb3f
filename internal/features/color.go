package features

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor accepts #RGB, #RRGGBB or a CSS color name ("black", "tomato") and returns
// an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("features: invalid color %q: %w", s, err)
		}
		r, g, b := c.Clamped().RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("features: invalid color %q", s)
}

// NormalizeColor returns s as an upper-case #RRGGBB string.
func NormalizeColor(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return HexString(c), nil
}

// HexString formats c as #RRGGBB, ignoring alpha.
func HexString(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// MustColor is ParseColor for values already validated by State; invalid input yields black.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}
