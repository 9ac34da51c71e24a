package font

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/bodgit/mgtools/chunk"
)

var errOverlap = errors.New("font: glyph bitmaps overlap")

// placeBitmaps packs the bitmap of every glyph at its offset. Glyphs may
// share bytes only where their packed bitmaps agree.
func placeBitmaps(p *Page) ([]byte, error) {
	var bitmap []byte
	var used []bool

	for _, g := range p.Glyphs {
		if !g.HasBitmap() {
			continue
		}

		if g.Offset < 0 || g.Offset > maxOffset {
			return nil, fmt.Errorf("font: glyph %d has invalid offset %d", g.Code, g.Offset)
		}
		if b := g.Image.Bounds(); b.Dx() != g.Width || b.Dy() != p.Height {
			return nil, fmt.Errorf("font: glyph %d bitmap is %dx%d, want %dx%d", g.Code, b.Dx(), b.Dy(), g.Width, p.Height)
		}

		packed := Pack(g.Image)
		if end := g.Offset + len(packed); end > len(bitmap) {
			bitmap = append(bitmap, make([]byte, end-len(bitmap))...)
			used = append(used, make([]bool, end-len(used))...)
		}
		for i, v := range packed {
			j := g.Offset + i
			if used[j] && bitmap[j] != v {
				return nil, fmt.Errorf("glyph %d: %w", g.Code, errOverlap)
			}
			bitmap[j], used[j] = v, true
		}
	}

	return bitmap, nil
}

// CheckOffsets reports an error if the recorded offsets of p cannot be
// encoded, for example because a glyph grew into its neighbour.
func CheckOffsets(p *Page) error {
	_, err := placeBitmaps(p)
	return err
}

// Encode writes p as a page. Glyph bitmaps are placed at their recorded
// offsets; use AssignOffsets first for glyphs that have none.
func Encode(p *Page, f Format) ([]byte, error) {
	if len(p.Glyphs) != f.Glyphs {
		return nil, fmt.Errorf("font: page has %d glyphs, want %d", len(p.Glyphs), f.Glyphs)
	}

	var w chunk.Writer

	for _, g := range p.Glyphs {
		if g.Width < 1 || g.Width > Sentinel {
			return nil, fmt.Errorf("font: glyph %d has invalid width %d", g.Code, g.Width)
		}

		if g.Width == 1 {
			w.PutUint16(binary.LittleEndian, 0)
			w.PutUint16(binary.LittleEndian, 0)
			continue
		}

		if g.Offset < 0 || g.Offset > maxOffset {
			return nil, fmt.Errorf("font: glyph %d has invalid offset %d", g.Code, g.Offset)
		}
		w.PutUint16(binary.LittleEndian, uint16(g.Offset))
		w.PutUint16(binary.LittleEndian, uint16(g.Width-1)<<widthShift|uint16(g.Flags&flagsMask))
	}

	bitmap, err := placeBitmaps(p)
	if err != nil {
		return nil, err
	}
	w.Write(bitmap)

	if pad := f.MinPageSize - w.Len(); pad > 0 {
		w.Write(make([]byte, pad))
	}

	return w.Bytes(), nil
}

// AssignOffsets lays the bitmaps of p out back to back in glyph order.
// Glyphs without a bitmap get offset 0.
func AssignOffsets(p *Page) {
	offset := 0
	for _, g := range p.Glyphs {
		if !g.HasBitmap() {
			g.Offset = 0
			continue
		}
		g.Offset = offset
		offset += packedSize(g.Width, p.Height)
	}
}
