/*
Package font implements the glyph pages of a Metal Gear font record.

A page starts with a fixed number of 4-byte glyph descriptors. Each
descriptor is a little-endian bitmap offset, relative to the end of the
descriptor table, followed by a little-endian metrics word whose upper
twelve bits hold the glyph width minus one and whose low four bits are
kept as flags. The bitmaps follow the table,
packed at two bits per pixel with the leftmost pixel in the most
significant bits. A width of 4096 marks a glyph without a bitmap. Pages are
zero padded up to a minimum size.

Every glyph on a page shares the page's height, which is not stored in the
page itself.
*/
package font

import (
	"image"
)

const (
	// Sentinel is the width of a glyph that has no bitmap.
	Sentinel = 4096

	// Distance between the four grayscale levels a 2-bit sample decodes to.
	levelStep = 255 / 3

	descriptorSize = 4
	samplesPerByte = 4
	widthShift     = 4
	flagsMask      = 1<<widthShift - 1
	maxOffset      = 1<<16 - 1
)

// Format holds the page constants of one version of the format.
type Format struct {
	// Glyphs is the number of descriptors on every page.
	Glyphs int
	// StartCode is the MGSCII code of the first glyph.
	StartCode int
	// MinPageSize is the size encoded pages are padded up to.
	MinPageSize int
}

// Glyph is one character of a page.
type Glyph struct {
	Code int
	Char string

	Offset int
	Width  int
	// Flags is the low nibble of the metrics word, not interpreted.
	Flags uint8

	// Image is nil for glyphs without a bitmap.
	Image *image.Gray

	// X and Y locate the glyph within an atlas, see LayoutAtlas.
	X, Y int
}

// HasBitmap reports whether the glyph contributes bitmap bytes when a page
// is encoded.
func (g *Glyph) HasBitmap() bool {
	return g.Width != 1 && g.Width != Sentinel && g.Image != nil
}

// Page is one size of the font.
type Page struct {
	Height int
	Glyphs []*Glyph
}

func packedSize(width, height int) int {
	return (width*height + samplesPerByte - 1) / samplesPerByte
}
