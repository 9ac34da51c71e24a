package mgtools

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"path/filepath"

	"github.com/bodgit/mgtools/font"
	"github.com/bodgit/mgtools/locale"
	"github.com/bodgit/mgtools/palette"
	"github.com/bodgit/mgtools/resource"
	"github.com/bodgit/mgtools/sprite"
)

// ExportOptions controls what Export writes.
type ExportOptions struct {
	// All exports every record rather than only the localizable ones.
	All bool
	// SeparateChars writes one image per glyph instead of an atlas per
	// font page.
	SeparateChars bool
}

type textBlock struct {
	Block      int          `yaml:"block"`
	Terminator byte         `yaml:"terminator"`
	Strings    []textString `yaml:"strings"`
}

type textString struct {
	Flag        byte   `yaml:"flag"`
	Source      string `yaml:"source"`
	Translation string `yaml:"translation,omitempty"`
}

type localeFile struct {
	Blocks int         `yaml:"blocks"`
	Text   []textBlock `yaml:"text"`
}

const (
	paletteDir = "palettes"
	spriteDir  = "sprites"
	fontDir    = "fonts"
	localeDir  = "locale"
	scriptDir  = "scripts"
	unknownDir = "unknown"

	charactersFile = "characters.xml"
	imageExt       = ".png"
)

func grayPalette() color.Palette {
	p := make(color.Palette, palette.Colors)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}

func writePNG(file string, m image.Image) error {
	b := new(bytes.Buffer)
	if err := png.Encode(b, m); err != nil {
		return err
	}
	return writeFile(file, b.Bytes())
}

// Export writes the records of res to dir along with a manifest.
func (c *Converter) Export(res *resource.Resource, dir string, opts ExportOptions) error {
	var spritePalette color.Palette
	if p, err := res.FirstPalette(); err == nil {
		spritePalette = p.Colors.ColorPalette()
	} else {
		c.logger.Warn().Err(err).Msg("No palette, exporting sprites in grayscale")
		spritePalette = grayPalette()
	}
	if len(spritePalette) > palette.Colors {
		spritePalette = spritePalette[:palette.Colors]
	}

	records := make([]*Record, len(res.Files))

	if err := c.forEach(len(res.Files), func(i int) error {
		entry := res.Version.Entry(i)
		if !opts.All && !entry.Localizable {
			return nil
		}

		f := res.Files[i]
		record := &Record{
			Index: i,
			Kind:  entry.Kind.String(),
			Type:  f.DataType().String(),
		}
		name := res.Version.FileName(i)

		var err error
		switch f := f.(type) {
		case *resource.Palette:
			err = writeXML(filepath.Join(dir, paletteDir, name+".xml"), newXMLPalette(f.Colors))
		case *resource.Sprite:
			record.Variants = len(f.Variants)
			err = c.exportSprite(f.Sprite, spritePalette, filepath.Join(dir, spriteDir, name))
		case *resource.Font:
			err = c.exportFont(res.Version, f, filepath.Join(dir, fontDir), opts.SeparateChars)
		case *resource.Locale:
			record.Blocks = len(f.Blocks)
			err = c.exportLocale(f.Locale, filepath.Join(dir, localeDir), name)
		default:
			var b []byte
			if b, err = res.EncodeFile(f); err == nil {
				err = writeFile(filepath.Join(dir, unknownDir, name+".bin"), b)
			}
		}
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}

		c.logger.Debug().Int("index", i).Str("kind", record.Kind).Msg("Exported")
		records[i] = record

		return nil
	}); err != nil {
		return err
	}

	m := &Manifest{
		Version:       res.Version.Name,
		Platform:      res.PlatformTag,
		Files:         len(res.Files),
		SeparateChars: opts.SeparateChars,
	}
	for _, r := range records {
		if r != nil {
			m.Records = append(m.Records, *r)
		}
	}

	return writeYAML(filepath.Join(dir, ManifestFilename), m)
}

func (c *Converter) exportSprite(s *sprite.Sprite, p color.Palette, base string) error {
	for i, v := range s.Variants {
		m := *v
		m.Palette = p
		if err := writePNG(sprite.VariantName(base, imageExt, i, len(s.Variants)), &m); err != nil {
			return err
		}
	}
	return nil
}

func (c *Converter) exportFont(v *resource.Version, f *resource.Font, dir string, separate bool) error {
	x := &xmlFont{
		Identifier: f.Identifier,
	}

	for i, p := range f.Pages {
		if separate {
			for _, g := range p.Glyphs {
				if g.Image == nil {
					continue
				}
				if err := writePNG(filepath.Join(dir, fmt.Sprint(i), fmt.Sprintf("%03d%s", g.Code, imageExt)), g.Image); err != nil {
					return err
				}
			}
		} else {
			atlas, err := font.DrawAtlas(p, v.AtlasWidth, v.AtlasHeight)
			if err != nil {
				return fmt.Errorf("page %d: %w", i, err)
			}
			if err := writePNG(filepath.Join(dir, fmt.Sprint(i)+imageExt), atlas); err != nil {
				return err
			}
		}
		x.Pages = append(x.Pages, newXMLPage(i, p))
	}

	return writeXML(filepath.Join(dir, charactersFile), x)
}

func (c *Converter) exportLocale(l *locale.Locale, dir, name string) error {
	lf := &localeFile{
		Blocks: len(l.Blocks),
	}

	for i, blk := range l.Blocks {
		if !blk.Text {
			if err := writeFile(filepath.Join(dir, scriptDir, fmt.Sprintf("%s_%02d.bin", name, i)), blk.Data); err != nil {
				return err
			}
			continue
		}

		tb := textBlock{
			Block:      i,
			Terminator: blk.Terminator,
			Strings:    make([]textString, 0, len(blk.Strings)),
		}
		for _, s := range blk.Strings {
			tb.Strings = append(tb.Strings, textString{Flag: s.Flag, Source: s.Text})
		}
		lf.Text = append(lf.Text, tb)
	}

	return writeYAML(filepath.Join(dir, name+".yaml"), lf)
}
