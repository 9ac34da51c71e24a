package mgscii

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

type decoder struct {
	escaped bool
}

func (d *decoder) Reset() {
	d.escaped = false
}

func (d *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var tmp [utf8.UTFMax]byte
	for nSrc < len(src) {
		c := src[nSrc]

		if !d.escaped && c == Escape {
			d.escaped = true
			nSrc++
			continue
		}

		var out []byte
		r, ok := primary[c], primary[c] != 0
		if d.escaped {
			r, ok = secondary[c]
		}
		if ok {
			out = tmp[:utf8.EncodeRune(tmp[:], r)]
		} else {
			out = []byte(Placeholder)
		}

		if len(dst)-nDst < len(out) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc++
		d.escaped = false
	}
	return nDst, nSrc, nil
}

type encoder struct {
	transform.NopResetter
}

func (encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		var out [2]byte
		n := 1
		if c, ok := primaryInverse[r]; ok {
			out[0] = c
		} else if c, ok := secondaryInverse[r]; ok {
			out[0], out[1] = Escape, c
			n = 2
		} else {
			out[0] = fallback
		}

		if len(dst)-nDst < n {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out[:n])
		nSrc += size
	}
	return nDst, nSrc, nil
}
