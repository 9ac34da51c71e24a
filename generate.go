package mgtools

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bodgit/mgtools/chunk"
	"github.com/bodgit/mgtools/font"
	"github.com/bodgit/mgtools/locale"
	"github.com/bodgit/mgtools/palette"
	"github.com/bodgit/mgtools/resource"
	"github.com/bodgit/mgtools/sprite"
)

func missing(err error, file string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &chunk.MissingDataError{Path: file}
	}
	return err
}

func readImage(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, missing(err, file)
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return m, nil
}

// Generate builds a container from an export directory. Positions the
// directory does not cover are copied from base, which may be nil.
func (c *Converter) Generate(dir string, base *resource.Resource) (*resource.Resource, error) {
	var m Manifest
	if err := readYAML(filepath.Join(dir, ManifestFilename), &m); err != nil {
		return nil, missing(err, ManifestFilename)
	}

	v := c.version
	if m.Version != "" && m.Version != v.Name {
		return nil, fmt.Errorf("manifest is for version %q, not %q", m.Version, v.Name)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	res := resource.New(m.Platform, c.resourceOptions()...)
	if res.Platform == resource.PlatformUnknown {
		c.logger.Warn().Uint16("platform", m.Platform).Msg("Unknown platform")
	}
	res.Files = make([]resource.File, m.Files)

	records := m.records()

	var colors palette.Palette
	file := func(i int) (resource.File, error) {
		if r, ok := records[i]; ok {
			return c.generateFile(res, dir, r, m.SeparateChars, colors)
		}
		if base == nil {
			return nil, &chunk.MissingDataError{Path: v.FileName(i)}
		}
		c.logger.Debug().Int("index", i).Msg("Using base record")
		return base.File(i)
	}

	// Palettes go first as sprites are mapped onto the first one.
	for i := 0; i < m.Files; i++ {
		if v.Entry(i).Kind != resource.KindPalette {
			continue
		}
		f, err := file(i)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		res.Files[i] = f
	}
	if p, err := res.FirstPalette(); err == nil {
		colors = p.Colors
	}

	if err := c.forEach(m.Files, func(i int) error {
		if res.Files[i] != nil {
			return nil
		}
		f, err := file(i)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		res.Files[i] = f
		return nil
	}); err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Converter) generateFile(res *resource.Resource, dir string, r Record, separate bool, colors palette.Palette) (resource.File, error) {
	v := res.Version
	name := v.FileName(r.Index)

	switch r.Kind {
	case resource.KindPalette.String():
		var x xmlPalette
		file := filepath.Join(paletteDir, name+".xml")
		if err := readXML(filepath.Join(dir, file), &x); err != nil {
			return nil, missing(err, file)
		}
		p, err := x.palette()
		if err != nil {
			return nil, err
		}
		return &resource.Palette{Colors: p}, nil
	case resource.KindSprite.String():
		return c.generateSprite(dir, r, name, colors)
	case resource.KindFont.String():
		return c.generateFont(v, dir, separate)
	case resource.KindLocale.String():
		return c.generateLocale(dir, r, name)
	default:
		file := filepath.Join(unknownDir, name+".bin")
		b, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return nil, missing(err, file)
		}
		return res.DecodeFile(b, r.Index)
	}
}

func (c *Converter) generateSprite(dir string, r Record, name string, colors palette.Palette) (resource.File, error) {
	s := new(sprite.Sprite)
	if r.Variants == 0 {
		return &resource.Sprite{Sprite: s}, nil
	}

	names, err := sprite.FindVariants(os.DirFS(dir), filepath.ToSlash(filepath.Join(spriteDir, name)), imageExt)
	if err != nil {
		return nil, err
	}
	if len(names) < r.Variants {
		c.logger.Warn().Int("index", r.Index).Int("found", len(names)).Int("expected", r.Variants).Msg("Missing sprite variants")
	}

	for _, n := range names {
		m, err := readImage(filepath.Join(dir, filepath.FromSlash(n)))
		if err != nil {
			return nil, err
		}
		s.Variants = append(s.Variants, sprite.FromImage(m, colors))
	}

	return &resource.Sprite{Sprite: s}, nil
}

func (c *Converter) generateFont(v *resource.Version, dir string, separate bool) (resource.File, error) {
	var x xmlFont
	file := filepath.Join(fontDir, charactersFile)
	if err := readXML(filepath.Join(dir, file), &x); err != nil {
		return nil, missing(err, file)
	}

	f := &resource.Font{
		Identifier: x.Identifier,
	}

	for i, xp := range x.Pages {
		p, complete := xp.page()

		if separate {
			for _, g := range p.Glyphs {
				if g.Width == font.Sentinel {
					continue
				}
				file := filepath.Join(fontDir, fmt.Sprint(i), fmt.Sprintf("%03d%s", g.Code, imageExt))
				m, err := readImage(filepath.Join(dir, file))
				if err != nil {
					var mde *chunk.MissingDataError
					if !errors.As(err, &mde) {
						return nil, err
					}
					c.logger.Warn().Str("file", file).Msg("Missing glyph image, glyph has no bitmap")
					continue
				}
				g.Image = font.Quantize(m)
				g.Width = g.Image.Bounds().Dx()
			}
		} else {
			file := filepath.Join(fontDir, fmt.Sprint(i)+imageExt)
			atlas, err := readImage(filepath.Join(dir, file))
			if err != nil {
				return nil, err
			}
			font.Crop(atlas, p)
		}

		if !complete {
			font.AssignOffsets(p)
		} else if err := font.CheckOffsets(p); err != nil {
			c.logger.Debug().Err(err).Int("page", i).Msg("Relaying out glyph bitmaps")
			font.AssignOffsets(p)
		}
		f.Pages = append(f.Pages, p)
	}

	if len(f.Pages) != v.FontPages() {
		return nil, fmt.Errorf("font has %d pages, want %d", len(f.Pages), v.FontPages())
	}

	return f, nil
}

func (c *Converter) generateLocale(dir string, r Record, name string) (resource.File, error) {
	var lf localeFile
	file := filepath.Join(localeDir, name+".yaml")
	if err := readYAML(filepath.Join(dir, file), &lf); err != nil {
		return nil, missing(err, file)
	}

	text := make(map[int]textBlock, len(lf.Text))
	for _, tb := range lf.Text {
		text[tb.Block] = tb
	}

	l := &locale.Locale{
		Blocks: make([]locale.Block, 0, lf.Blocks),
	}
	for i := 0; i < lf.Blocks; i++ {
		if tb, ok := text[i]; ok {
			blk := locale.Block{
				Text:       true,
				Terminator: tb.Terminator,
				Strings:    make([]locale.String, 0, len(tb.Strings)),
			}
			for _, s := range tb.Strings {
				t := s.Source
				if s.Translation != "" {
					t = s.Translation
				}
				blk.Strings = append(blk.Strings, locale.NewString(s.Flag, t))
			}
			l.Blocks = append(l.Blocks, blk)
			continue
		}

		file := filepath.Join(localeDir, scriptDir, fmt.Sprintf("%s_%02d.bin", name, i))
		b, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return nil, missing(err, file)
		}
		l.Blocks = append(l.Blocks, locale.Block{Data: b})
	}

	if r.Blocks != 0 && r.Blocks != lf.Blocks {
		c.logger.Warn().Int("index", r.Index).Int("manifest", r.Blocks).Int("file", lf.Blocks).Msg("Locale block count differs from manifest")
	}

	return &resource.Locale{Locale: l}, nil
}
