package resource

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bodgit/mgtools/chunk"
	"github.com/bodgit/mgtools/font"
	"github.com/bodgit/mgtools/locale"
	"github.com/bodgit/mgtools/palette"
	"github.com/bodgit/mgtools/sprite"
)

const maxSimpleSize = 1<<16 - 1

// Save writes the container to w.
func (res *Resource) Save(w io.Writer) error {
	b, err := res.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// MarshalBinary encodes the container: magic, platform tag, every record in
// order and the terminator.
func (res *Resource) MarshalBinary() ([]byte, error) {
	var w chunk.Writer

	w.Write(res.Version.Magic[:])
	w.PutUint16(binary.BigEndian, res.PlatformTag)

	for i, f := range res.Files {
		if err := res.writeRecord(&w, f); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	w.PutUint16(binary.LittleEndian, uint16(dataEnd))

	return w.Bytes(), nil
}

// The in-memory codecs do not include the length that frames a simple
// record, it is added here.
func putSimple(w *chunk.Writer, b []byte) error {
	if len(b) > maxSimpleSize {
		return fmt.Errorf("%d bytes is too large for a simple record", len(b))
	}
	w.PutUint16(binary.BigEndian, uint16(len(b)))
	w.Write(b)
	return nil
}

func (res *Resource) putPages(w *chunk.Writer, tag DataType, id uint16, pages [][]byte) error {
	if len(pages) != res.Version.Pages(tag) {
		return fmt.Errorf("%s record has %d pages, want %d", tag, len(pages), res.Version.Pages(tag))
	}
	w.PutUint16(binary.BigEndian, id)
	for _, p := range pages {
		w.PutBlock(p)
	}
	return nil
}

func (res *Resource) writeRecord(w *chunk.Writer, f File) error {
	w.PutUint16(binary.LittleEndian, uint16(f.DataType()))

	switch f := f.(type) {
	case *Simple:
		return putSimple(w, f.Data)
	case *Unknown:
		return putSimple(w, f.Data)
	case *Sprite:
		return putSimple(w, sprite.Encode(f.Sprite))
	case *Palette:
		return putSimple(w, palette.Encode(f.Colors))
	case *Locale:
		b, err := locale.Encode(f.Locale, res.TextEncoding)
		if err != nil {
			return err
		}
		return putSimple(w, b)
	case *WithCount:
		w.PutUint16(binary.BigEndian, uint16(len(f.Entries)*2))
		for _, e := range f.Entries {
			w.PutBlock(e)
		}
		w.Write(f.Trailer[:])
		return nil
	case *Texture:
		return res.putPages(w, f.Type, f.Identifier, f.Pages)
	case *Font:
		pages := make([][]byte, 0, len(f.Pages))
		for j, p := range f.Pages {
			b, err := font.Encode(p, res.Version.Font)
			if err != nil {
				return fmt.Errorf("page %d: %w", j, err)
			}
			pages = append(pages, b)
		}
		return res.putPages(w, DataFont, f.Identifier, pages)
	default:
		return fmt.Errorf("unsupported file %T", f)
	}
}

// EncodeFile returns f framed as a single record, tag included.
func (res *Resource) EncodeFile(f File) ([]byte, error) {
	var w chunk.Writer
	if err := res.writeRecord(&w, f); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
