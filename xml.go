package mgtools

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/bodgit/mgtools/font"
	"github.com/bodgit/mgtools/palette"
)

type xmlPalette struct {
	XMLName xml.Name   `xml:"Palette"`
	Colors  []xmlColor `xml:"Color"`
}

type xmlColor struct {
	XMLName xml.Name `xml:"Color"`
	Index   int      `xml:"index,attr"`
	R       uint8    `xml:"r,attr"`
	G       uint8    `xml:"g,attr"`
	B       uint8    `xml:"b,attr"`
}

type xmlFont struct {
	XMLName    xml.Name  `xml:"Font"`
	Identifier uint16    `xml:"identifier,attr"`
	Pages      []xmlPage `xml:"Page"`
}

type xmlPage struct {
	XMLName xml.Name   `xml:"Page"`
	Index   int        `xml:"index,attr"`
	Height  int        `xml:"height,attr"`
	Glyphs  []xmlGlyph `xml:"Glyph"`
}

type xmlGlyph struct {
	XMLName xml.Name `xml:"Glyph"`
	Code    int      `xml:"code,attr"`
	Char    string   `xml:"char,attr,omitempty"`
	Width   int      `xml:"width,attr"`
	Offset  *int     `xml:"offset,attr"`
	Flags   uint8    `xml:"flags,attr,omitempty"`
	X       int      `xml:"x,attr"`
	Y       int      `xml:"y,attr"`
}

func newXMLPalette(p palette.Palette) *xmlPalette {
	x := &xmlPalette{
		Colors: make([]xmlColor, 0, len(p)),
	}
	for i, c := range p {
		x.Colors = append(x.Colors, xmlColor{Index: i, R: c.R, G: c.G, B: c.B})
	}
	return x
}

func (x *xmlPalette) palette() (palette.Palette, error) {
	p := make(palette.Palette, 0, len(x.Colors))
	for i, c := range x.Colors {
		if c.Index != i {
			return nil, fmt.Errorf("color %d has index %d", i, c.Index)
		}
		p = append(p, palette.Color{R: c.R, G: c.G, B: c.B})
	}
	return p, nil
}

func newXMLPage(i int, p *font.Page) xmlPage {
	x := xmlPage{
		Index:  i,
		Height: p.Height,
		Glyphs: make([]xmlGlyph, 0, len(p.Glyphs)),
	}
	for _, g := range p.Glyphs {
		offset := g.Offset
		x.Glyphs = append(x.Glyphs, xmlGlyph{
			Code:   g.Code,
			Char:   g.Char,
			Width:  g.Width,
			Offset: &offset,
			Flags:  g.Flags,
			X:      g.X,
			Y:      g.Y,
		})
	}
	return x
}

// page rebuilds the glyph table without bitmaps. The returned flag is true
// if every glyph carried an offset.
func (x *xmlPage) page() (*font.Page, bool) {
	p := &font.Page{
		Height: x.Height,
		Glyphs: make([]*font.Glyph, 0, len(x.Glyphs)),
	}
	complete := true
	for _, g := range x.Glyphs {
		glyph := &font.Glyph{
			Code:  g.Code,
			Char:  g.Char,
			Width: g.Width,
			Flags: g.Flags,
			X:     g.X,
			Y:     g.Y,
		}
		if g.Offset != nil {
			glyph.Offset = *g.Offset
		} else {
			complete = false
		}
		p.Glyphs = append(p.Glyphs, glyph)
	}
	return p, complete
}

func writeXML(file string, v interface{}) error {
	b, err := xml.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}
	return writeFile(file, append([]byte(xml.Header), append(b, '\n')...))
}

func readXML(file string, v interface{}) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}
