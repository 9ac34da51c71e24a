/*
Package sprite implements the indexed color sprite record of a Metal Gear
resource container.

A sprite is a sequence of variants, each framed by a 4-byte big-endian
length and holding a little-endian 32-bit width and height followed by one
palette index per pixel. A zero length ends the sequence. The palette lives
in a separate record.
*/
package sprite

import (
	"image"
)

const headerSize = 8

// Sprite is an ordered list of indexed images. Variants decoded from a
// record have no palette until ApplyPalette is called.
type Sprite struct {
	Variants []*image.Paletted
}
