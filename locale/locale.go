/*
Package locale implements the locale record of a Metal Gear resource
container.

The record is a sequence of blocks, each framed by a 4-byte big-endian
length and ended by a zero length. Most blocks are game scripts with their
own structure and are kept as opaque bytes. A fixed set of block indices
holds text: a sequence of strings, each a flag byte, a 2-byte big-endian
length and the encoded text, ended by a string of zero length.
*/
package locale

import (
	"golang.org/x/text/encoding"

	"github.com/bodgit/mgtools/mgscii"
)

// String is one entry of a text block.
type String struct {
	Flag byte
	Text string

	// The encoded form Text was decoded from, reused while Text is
	// unchanged so that codes the encoding cannot represent survive.
	raw  []byte
	orig string
}

// NewString returns a string with no encoded form.
func NewString(flag byte, text string) String {
	return String{Flag: flag, Text: text}
}

// Block is either opaque data or, if Text is set, a list of strings.
type Block struct {
	Text bool

	Data []byte

	Strings []String
	// Terminator is the flag byte of the zero length string that ends a
	// text block.
	Terminator byte
}

// Locale is the ordered list of blocks.
type Locale struct {
	Blocks []Block
}

// Strings returns the strings of the text block at index i, or nil if the
// block is opaque or does not exist.
func (l *Locale) Strings(i int) []String {
	if i < 0 || i >= len(l.Blocks) || !l.Blocks[i].Text {
		return nil
	}
	return l.Blocks[i].Strings
}

func textEncoding(enc encoding.Encoding) encoding.Encoding {
	if enc == nil {
		return mgscii.Encoding
	}
	return enc
}
