package resource

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/mgtools/chunk"
	"github.com/bodgit/mgtools/font"
	"github.com/bodgit/mgtools/locale"
	"github.com/bodgit/mgtools/palette"
	"github.com/bodgit/mgtools/sprite"
)

var (
	errBadMagic  = errors.New("bad magic")
	errOddHeader = errors.New("odd entry count header")
	errTooMuch   = errors.New("trailing data after terminator")
)

// Load reads a whole container from r.
func Load(r io.Reader, options ...Option) (*Resource, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(b, options...)
}

// Decode parses a container held in memory. On error the partially parsed
// resource is discarded.
func Decode(b []byte, options ...Option) (*Resource, error) {
	res := New(0, options...)
	if err := res.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return res, nil
}

// UnmarshalBinary replaces the platform and files of res with the contents
// of b.
func (res *Resource) UnmarshalBinary(b []byte) error {
	r := chunk.NewReader(b, "resource")

	magic, err := r.Bytes(len(res.Version.Magic))
	if err != nil || !bytes.Equal(magic, res.Version.Magic[:]) {
		return &chunk.FormatError{Op: "resource", Offset: 0, Err: errBadMagic}
	}

	if res.PlatformTag, err = r.Uint16(binary.BigEndian); err != nil {
		return err
	}
	if res.Platform, err = PlatformFromTag(res.PlatformTag); err != nil {
		res.logger.Warn().Err(err).Msg("Unknown platform")
	}

	res.Files = nil
	for {
		tag, err := r.Uint16(binary.LittleEndian)
		if err != nil {
			return err
		}
		if DataType(tag) == dataEnd {
			break
		}

		i := len(res.Files)
		f, err := res.readRecord(r, DataType(tag), i)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		res.logger.Debug().Int("index", i).Stringer("type", f.DataType()).Msgf("Read %T", f)
		res.Files = append(res.Files, f)
	}

	if r.Len() > 0 {
		return r.Errorf(errTooMuch)
	}

	return nil
}

func readSimple(r *chunk.Reader) ([]byte, error) {
	n, err := r.Uint16(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	b, err := r.Bytes(int(n))
	if err != nil {
		return nil, err
	}
	return bytes.Clone(b), nil
}

func readBlock(r *chunk.Reader) ([]byte, error) {
	n, err := r.Uint32(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	b, err := r.Bytes(int(n))
	if err != nil {
		return nil, err
	}
	return bytes.Clone(b), nil
}

func (res *Resource) readRecord(r *chunk.Reader, tag DataType, i int) (File, error) {
	entry := res.Version.Entry(i)
	if entry.Kind != KindUnknown && tag != entry.DataType {
		res.logger.Warn().Int("index", i).Stringer("kind", entry.Kind).Stringer("type", tag).Msg("Record type does not match schema, keeping it opaque")
		entry.Kind = KindUnknown
	}

	switch tag {
	case DataSimple:
		b, err := readSimple(r)
		if err != nil {
			return nil, err
		}
		return res.decodeSimple(entry, b)
	case DataWithCount:
		return readWithCount(r)
	case DataFont, DataTexture:
		return res.readPaged(r, tag, entry)
	default:
		res.logger.Warn().Err(&chunk.UnsupportedValueError{Kind: "data type", Value: int(tag)}).Int("index", i).Msg("Keeping record opaque")
		b, err := readSimple(r)
		if err != nil {
			return nil, err
		}
		return &Unknown{Type: tag, Data: b}, nil
	}
}

func (res *Resource) decodeSimple(entry Entry, b []byte) (File, error) {
	switch entry.Kind {
	case KindSprite:
		s, err := sprite.Decode(b)
		if err != nil {
			return nil, err
		}
		return &Sprite{s}, nil
	case KindPalette:
		p, err := palette.Decode(b)
		if err != nil {
			return nil, err
		}
		return &Palette{Colors: p}, nil
	case KindLocale:
		l, err := locale.Decode(b, res.Version.TextBlocks, res.TextEncoding)
		if err != nil {
			return nil, err
		}
		return &Locale{l}, nil
	default:
		return &Simple{Data: b}, nil
	}
}

func readWithCount(r *chunk.Reader) (File, error) {
	header, err := r.Uint16(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	if header%2 != 0 {
		return nil, r.Errorf(errOddHeader)
	}

	f := &WithCount{
		Entries: make([][]byte, 0, header/2),
	}
	for j := 0; j < int(header/2); j++ {
		b, err := readBlock(r)
		if err != nil {
			return nil, err
		}
		f.Entries = append(f.Entries, b)
	}

	trailer, err := r.Bytes(len(f.Trailer))
	if err != nil {
		return nil, err
	}
	copy(f.Trailer[:], trailer)

	return f, nil
}

func (res *Resource) readPaged(r *chunk.Reader, tag DataType, entry Entry) (File, error) {
	id, err := r.Uint16(binary.BigEndian)
	if err != nil {
		return nil, err
	}

	pages := make([][]byte, 0, res.Version.Pages(tag))
	for j := 0; j < res.Version.Pages(tag); j++ {
		b, err := readBlock(r)
		if err != nil {
			return nil, err
		}
		pages = append(pages, b)
	}

	if tag != DataFont || entry.Kind != KindFont {
		return &Texture{Type: tag, Identifier: id, Pages: pages}, nil
	}

	f := &Font{Identifier: id}
	for j, b := range pages {
		p, err := font.Decode(b, res.Version.FontHeights[j], res.Version.Font)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", j, err)
		}
		f.Pages = append(f.Pages, p)
	}

	return f, nil
}

// DecodeFile parses b, a single framed record, as the record at position i
// of the schema.
func (res *Resource) DecodeFile(b []byte, i int) (File, error) {
	r := chunk.NewReader(b, "record")

	tag, err := r.Uint16(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	if DataType(tag) == dataEnd {
		return nil, r.Errorf(errors.New("unexpected terminator"))
	}

	f, err := res.readRecord(r, DataType(tag), i)
	if err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, r.Errorf(errTooMuch)
	}

	return f, nil
}
