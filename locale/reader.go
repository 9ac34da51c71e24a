package locale

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/bodgit/mgtools/chunk"
)

var errTooMuch = errors.New("locale: trailing data after terminator")

// Decode parses a locale record. Blocks whose index is in textual are
// parsed as text using enc, MGSCII if nil.
func Decode(b []byte, textual []int, enc encoding.Encoding) (*Locale, error) {
	isText := make(map[int]bool, len(textual))
	for _, i := range textual {
		isText[i] = true
	}

	r := chunk.NewReader(b, "locale")
	l := new(Locale)

	for {
		n, err := r.Uint32(binary.BigEndian)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}

		data, err := r.Bytes(int(n))
		if err != nil {
			return nil, err
		}

		i := len(l.Blocks)
		if !isText[i] {
			l.Blocks = append(l.Blocks, Block{Data: data})
			continue
		}

		blk, err := decodeText(data, textEncoding(enc))
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		l.Blocks = append(l.Blocks, *blk)
	}

	if r.Len() > 0 {
		return nil, r.Errorf(errTooMuch)
	}

	return l, nil
}

func decodeText(b []byte, enc encoding.Encoding) (*Block, error) {
	r := chunk.NewReader(b, "locale text")
	blk := &Block{Text: true}
	dec := enc.NewDecoder()

	for {
		flag, err := r.Uint8()
		if err != nil {
			return nil, err
		}
		n, err := r.Uint16(binary.BigEndian)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			blk.Terminator = flag
			break
		}

		raw, err := r.Bytes(int(n))
		if err != nil {
			return nil, err
		}
		text, err := dec.Bytes(raw)
		if err != nil {
			return nil, r.Errorf(err)
		}

		blk.Strings = append(blk.Strings, String{
			Flag: flag,
			Text: string(text),
			raw:  raw,
			orig: string(text),
		})
	}

	if r.Len() > 0 {
		return nil, r.Errorf(errTooMuch)
	}

	return blk, nil
}
