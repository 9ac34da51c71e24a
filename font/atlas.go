package font

import (
	"fmt"
	"image"
	"image/draw"
)

// LayoutAtlas places the glyph bitmaps of p left to right in glyph order,
// starting a new row of the page height whenever the next glyph would run
// past width. The placement is stored in each glyph's X and Y and returned
// in glyph order; glyphs without a bitmap are placed at the origin. Width 1
// glyphs do not advance the cursor.
func LayoutAtlas(p *Page, width, height int) ([]image.Point, error) {
	points := make([]image.Point, len(p.Glyphs))

	var x, y int
	for i, g := range p.Glyphs {
		g.X, g.Y = 0, 0
		if g.Image == nil {
			continue
		}
		if g.Width > width {
			return nil, fmt.Errorf("font: glyph %d is wider than the atlas", g.Code)
		}

		if x+g.Width > width {
			x = 0
			y += p.Height
		}
		if y+p.Height > height {
			return nil, fmt.Errorf("font: atlas of %dx%d is too small for page", width, height)
		}

		g.X, g.Y = x, y
		points[i] = image.Pt(x, y)

		if g.Width != 1 {
			x += g.Width
		}
	}

	return points, nil
}

// DrawAtlas lays out p and renders every glyph bitmap into one image.
func DrawAtlas(p *Page, width, height int) (*image.Gray, error) {
	if _, err := LayoutAtlas(p, width, height); err != nil {
		return nil, err
	}

	m := image.NewGray(image.Rect(0, 0, width, height))
	for _, g := range p.Glyphs {
		if g.Image == nil {
			continue
		}
		r := image.Rect(g.X, g.Y, g.X+g.Width, g.Y+p.Height)
		draw.Draw(m, r, g.Image, g.Image.Bounds().Min, draw.Src)
	}

	return m, nil
}

// Crop cuts every glyph bitmap back out of an atlas using the glyphs'
// recorded widths and placements. Sentinel width glyphs are skipped.
func Crop(atlas image.Image, p *Page) {
	for _, g := range p.Glyphs {
		if g.Width == Sentinel {
			g.Image = nil
			continue
		}
		r := image.Rect(g.X, g.Y, g.X+g.Width, g.Y+p.Height).Add(atlas.Bounds().Min)
		sub := image.NewGray(image.Rect(0, 0, g.Width, p.Height))
		draw.Draw(sub, sub.Bounds(), atlas, r.Min, draw.Src)
		g.Image = Quantize(sub)
	}
}
