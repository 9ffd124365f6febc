package icon

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor converts "#rgb", "#rrggbb" or an SVG color name ("white",
// "rebeccapurple") to an opaque color.RGBA.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		if !ok {
			return color.RGBA{}, fmt.Errorf("unknown color name %q", s)
		}
		return c, nil
	}

	// colorful.Hex scans with fixed widths and ignores trailing input, so
	// pin the length and digit set first.
	if (len(s) != 4 && len(s) != 7) || strings.TrimLeft(s[1:], "0123456789abcdef") != "" {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func mustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
