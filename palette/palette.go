/*
Package palette implements the color table record of a Metal Gear resource
container.

The record is a 4-byte big-endian byte length followed by one 4-byte entry
per color stored as blue, green, red and a zero pad byte. Colors are exposed
in red, green, blue order.
*/
package palette

import (
	"image/color"
)

const (
	entrySize = 4

	// Colors is the number of entries an indexed sprite can address.
	Colors = 256

	// MaxLegacyEntries is the entry cap applied by an older reader of the
	// format. It has only been observed in that code path and is not
	// enforced here.
	MaxLegacyEntries = 164
)

// Color is one palette entry.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

// Palette is an ordered color table, the index being the position.
type Palette []Color

// BGR returns the table packed as three bytes per entry in on-disk order
// without the pad byte.
func (p Palette) BGR() []byte {
	b := make([]byte, 0, len(p)*3)
	for _, c := range p {
		b = append(b, c.B, c.G, c.R)
	}
	return b
}

// ColorPalette returns p as a color.Palette of at least Colors entries,
// padded with opaque black, suitable for an image.Paletted.
func (p Palette) ColorPalette() color.Palette {
	n := len(p)
	if n < Colors {
		n = Colors
	}
	cp := make(color.Palette, n)
	for i := range cp {
		if i < len(p) {
			cp[i] = color.RGBA{p[i].R, p[i].G, p[i].B, 0xff}
		} else {
			cp[i] = color.RGBA{0, 0, 0, 0xff}
		}
	}
	return cp
}
