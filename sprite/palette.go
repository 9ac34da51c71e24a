package sprite

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/bodgit/mgtools/palette"
	"github.com/ericpauley/go-quantize/quantize"
)

// ApplyPalette sets p, padded to 256 colors, as the palette of every
// variant.
func ApplyPalette(s *Sprite, p palette.Palette) {
	cp := p.ColorPalette()
	for _, v := range s.Variants {
		v.Palette = cp
	}
}

// FromImage converts an imported image into a variant. Paletted images keep
// their indices. Anything else is mapped onto p, or when p is empty onto a
// median cut palette of the image itself.
func FromImage(m image.Image, p palette.Palette) *image.Paletted {
	b := m.Bounds()
	r := image.Rect(0, 0, b.Dx(), b.Dy())

	if pm, ok := m.(*image.Paletted); ok {
		dup := image.NewPaletted(r, pm.Palette)
		for y := 0; y < r.Dy(); y++ {
			i := pm.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dup.Pix[y*dup.Stride:], pm.Pix[i:i+r.Dx()])
		}
		return dup
	}

	var cp color.Palette
	if len(p) > 0 {
		cp = p.ColorPalette()
	} else {
		q := quantize.MedianCutQuantizer{}
		cp = q.Quantize(make(color.Palette, 0, palette.Colors), m)
	}

	pm := image.NewPaletted(r, cp)
	draw.Draw(pm, r, m, b.Min, draw.Src)
	return pm
}
