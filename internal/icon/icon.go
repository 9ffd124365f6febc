// Package icon draws the placeholder extension icons: a solid square with a
// bordered "shield" rectangle on the larger sizes.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/Mavwarf/genicons/internal/paths"
)

// Sizes are the icon dimensions written by a default run, in order.
var Sizes = []int{16, 48, 128}

// Style holds the palette and geometry of an icon.
type Style struct {
	Background  color.RGBA
	Fill        color.RGBA
	Border      color.RGBA
	BorderWidth int
	// Threshold is the smallest size that gets the overlay rectangle.
	Threshold int
}

// DefaultStyle returns the purple extension palette.
func DefaultStyle() Style {
	return Style{
		Background:  mustParseColor("#667eea"),
		Fill:        mustParseColor("#764ba2"),
		Border:      mustParseColor("white"),
		BorderWidth: 2,
		Threshold:   48,
	}
}

// Padding is the margin between the canvas edge and the overlay.
func Padding(size int) int {
	return size / 6
}

// Draw returns a size×size canvas painted with st. Size is not validated.
func Draw(size int, st Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(st.Background), image.Point{}, draw.Src)

	if size >= st.Threshold {
		p := Padding(size)
		// Corners (p, p) and (size-p, size-p) are both painted.
		outer := image.Rect(p, p, size-p+1, size-p+1)
		draw.Draw(img, outer, image.NewUniform(st.Border), image.Point{}, draw.Src)
		inner := outer.Inset(st.BorderWidth)
		draw.Draw(img, inner, image.NewUniform(st.Fill), image.Point{}, draw.Src)
	}
	return img
}

// encoder trades a little CPU for smaller files; icons ship inside the
// extension package.
var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// Encode writes img as PNG. Opaque canvases are stored as 8-bit RGB.
func Encode(w io.Writer, img image.Image) error {
	return encoder.Encode(w, img)
}

// Render draws a size×size icon with the default style and writes it to
// filename, replacing any existing file.
func Render(size int, filename string) error {
	img := Draw(size, DefaultStyle())
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return fmt.Errorf("rendering %s: %w", filename, err)
	}
	if err := paths.AtomicWrite(filename, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}
