/*
Package mgscii implements MGSCII, the single and double byte text encoding
used by the dialogue and glyph tables of the Metal Gear PC port.

Printable ASCII maps to itself. Codes 167 to 223 carry accented Latin
letters and a few symbols. Byte 129 is an escape: the byte following it is
looked up in a small secondary table instead. Bytes with no mapping decode to
the three character placeholder "???", and runes with no mapping encode as
'?'.
*/
package mgscii

import (
	"golang.org/x/text/encoding"
)

const (
	// Escape switches the next byte to the secondary table.
	Escape = 129

	// Placeholder is emitted for every undefined code when decoding.
	Placeholder = "???"

	fallback = '?'
)

var (
	primary   [256]rune
	secondary = map[byte]rune{
		99:  '…',
		135: '∞',
	}

	primaryInverse   = make(map[rune]byte)
	secondaryInverse = make(map[rune]byte)
)

var extended = map[byte]rune{
	167: 'č', 168: 'ě', 169: 'ů', 170: 'ř', 171: 'ý', 172: 'ž',
	176: 'à', 177: 'á', 178: 'â', 179: 'ä', 180: 'À', 181: 'Á', 182: 'Â', 183: 'Ä',
	184: 'è', 185: 'é', 186: 'ê', 187: 'ë', 188: 'È', 189: 'É', 190: 'Ê', 191: 'Ë',
	192: 'ì', 193: 'í', 194: 'î', 195: 'ï', 196: 'Ì', 197: 'Í', 198: 'Î', 199: 'Ï',
	200: 'ò', 201: 'ó', 202: 'ô', 203: 'ö', 204: 'Ò', 205: 'Ó', 206: 'Ô', 207: 'Ö',
	208: 'ù', 209: 'ú', 210: 'û', 211: 'ü', 212: 'Ù', 213: 'Ú', 214: 'Û', 215: 'Ü',
	216: 'ñ', 217: 'ç', 218: 'ß', 219: 'Ç', 220: '¡', 221: '¿', 222: '®', 223: '°',
}

func init() {
	primary['\n'] = '\n'
	for c := ' '; c <= '~'; c++ {
		primary[c] = c
	}
	for c, r := range extended {
		primary[c] = r
	}

	for c, r := range primary {
		if r != 0 {
			primaryInverse[r] = byte(c)
		}
	}
	for c, r := range secondary {
		secondaryInverse[r] = c
	}
}

// Char returns the character for a primary table code, or Placeholder if the
// code is undefined.
func Char(code int) string {
	if code < 0 || code >= len(primary) || primary[code] == 0 {
		return Placeholder
	}
	return string(primary[code])
}

// Encoding is MGSCII as an x/text encoding.
var Encoding encoding.Encoding = mgscii{}

type mgscii struct{}

func (mgscii) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: new(decoder)}
}

func (mgscii) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: new(encoder)}
}

func (mgscii) String() string {
	return "MGSCII"
}

// Decode converts MGSCII bytes to a string.
func Decode(b []byte) string {
	s, _ := Encoding.NewDecoder().Bytes(b)
	return string(s)
}

// Encode converts s to MGSCII bytes.
func Encode(s string) []byte {
	b, _ := Encoding.NewEncoder().Bytes([]byte(s))
	return b
}
