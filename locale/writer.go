package locale

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/bodgit/mgtools/chunk"
)

const maxStringSize = 1<<16 - 1

var (
	errEmptyBlock  = errors.New("locale: empty block cannot be framed")
	errEmptyString = errors.New("locale: empty string cannot be framed")
)

// Encode writes l as a locale record, encoding changed text with enc,
// MGSCII if nil.
func Encode(l *Locale, enc encoding.Encoding) ([]byte, error) {
	var w chunk.Writer

	for i, blk := range l.Blocks {
		data := blk.Data
		if blk.Text {
			var err error
			if data, err = encodeText(&blk, textEncoding(enc)); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("block %d: %w", i, errEmptyBlock)
		}
		w.PutBlock(data)
	}
	w.PutUint32(binary.BigEndian, 0)

	return w.Bytes(), nil
}

func encodeText(blk *Block, enc encoding.Encoding) ([]byte, error) {
	var w chunk.Writer
	e := enc.NewEncoder()

	for i, s := range blk.Strings {
		b := s.raw
		if b == nil || s.Text != s.orig {
			var err error
			if b, err = e.Bytes([]byte(s.Text)); err != nil {
				return nil, fmt.Errorf("string %d: %w", i, err)
			}
		}

		switch {
		case len(b) == 0:
			return nil, fmt.Errorf("string %d: %w", i, errEmptyString)
		case len(b) > maxStringSize:
			return nil, fmt.Errorf("string %d: %d bytes is too long", i, len(b))
		}

		w.PutUint8(s.Flag)
		w.PutUint16(binary.BigEndian, uint16(len(b)))
		w.Write(b)
	}

	w.PutUint8(blk.Terminator)
	w.PutUint16(binary.BigEndian, 0)

	return w.Bytes(), nil
}
