package palette

import (
	"errors"
	"image/color"
	"testing"

	"github.com/bodgit/mgtools/chunk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []byte{
	0x00, 0x00, 0x00, 0x0c,
	0x10, 0x20, 0x30, 0x00,
	0xff, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

func TestDecode(t *testing.T) {
	p, err := Decode(sample)
	require.NoError(t, err)

	assert.Equal(t, Palette{
		{R: 0x30, G: 0x20, B: 0x10},
		{R: 0x00, G: 0x00, B: 0xff},
		{},
	}, p)
	assert.Equal(t, sample, Encode(p))
}

func TestDecodeErrors(t *testing.T) {
	tables := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"short length", []byte{0x00, 0x00}},
		{"odd length", []byte{0x00, 0x00, 0x00, 0x03, 1, 2, 3}},
		{"truncated table", []byte{0x00, 0x00, 0x00, 0x08, 1, 2, 3, 0}},
		{"trailing", append(append([]byte{}, sample...), 0xaa)},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, err := Decode(table.in)
			var fe *chunk.FormatError
			assert.True(t, errors.As(err, &fe))
		})
	}
}

func TestEntryCount(t *testing.T) {
	for _, n := range []int{0, 1, 16, 256} {
		p := make(Palette, n)
		b := Encode(p)
		assert.Len(t, b, 4+n*4)

		got, err := Decode(b)
		require.NoError(t, err)
		assert.Len(t, got, n)
	}
}

func TestViews(t *testing.T) {
	p := Palette{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}

	assert.Equal(t, []byte{3, 2, 1, 6, 5, 4}, p.BGR())

	cp := p.ColorPalette()
	assert.Len(t, cp, Colors)
	assert.Equal(t, color.RGBA{1, 2, 3, 0xff}, cp[0])
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, cp[255])
}
