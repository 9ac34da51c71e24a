package font

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFormat = Format{
	Glyphs:      4,
	StartCode:   'A',
	MinPageSize: 64,
}

func testPage() []byte {
	b := []byte{
		// Descriptors
		0x00, 0x00, 0x30, 0x00, // width 4
		0x00, 0x00, 0x00, 0x00, // width 1
		0x00, 0x00, 0xf0, 0xff, // no bitmap
		0x02, 0x00, 0x20, 0x00, // width 3
		// Bitmaps
		0x1b, 0xe4,
		0xff, 0xf0,
	}
	return append(b, make([]byte, testFormat.MinPageSize-len(b))...)
}

func TestDecode(t *testing.T) {
	p, err := Decode(testPage(), 2, testFormat)
	require.NoError(t, err)
	require.Len(t, p.Glyphs, 4)

	assert.Equal(t, "A", p.Glyphs[0].Char)
	assert.Equal(t, 'D', rune(p.Glyphs[3].Code))

	assert.Equal(t, []int{4, 1, Sentinel, 3}, []int{p.Glyphs[0].Width, p.Glyphs[1].Width, p.Glyphs[2].Width, p.Glyphs[3].Width})

	assert.Equal(t, []uint8{0, 85, 170, 255, 255, 170, 85, 0}, p.Glyphs[0].Image.Pix)
	assert.Equal(t, []uint8{0, 85}, p.Glyphs[1].Image.Pix)
	assert.Nil(t, p.Glyphs[2].Image)
	assert.Equal(t, []uint8{255, 255, 255, 255, 255, 255}, p.Glyphs[3].Image.Pix)
}

func TestRoundTrip(t *testing.T) {
	in := testPage()

	p, err := Decode(in, 2, testFormat)
	require.NoError(t, err)

	out, err := Encode(p, testFormat)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSentinel(t *testing.T) {
	b := []byte{
		0xff, 0xff, 0xf0, 0xff, // offset well past the end
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	p, err := Decode(b, 8, testFormat)
	require.NoError(t, err)
	assert.Equal(t, Sentinel, p.Glyphs[0].Width)
	assert.Nil(t, p.Glyphs[0].Image)

	// A bitmap attached to a sentinel glyph is never written
	p.Glyphs[0].Image = image.NewGray(image.Rect(0, 0, Sentinel, 8))
	p.Glyphs[0].Offset = 0
	f := testFormat
	f.MinPageSize = 0
	out, err := Encode(p, f)
	require.NoError(t, err)
	assert.Len(t, out, 16)
}

func TestPackUnpack(t *testing.T) {
	levels := []uint8{0, 85, 170, 255}

	for _, size := range []image.Point{{1, 1}, {3, 5}, {4, 4}, {7, 2}, {16, 12}} {
		m := image.NewGray(image.Rect(0, 0, size.X, size.Y))
		for i := range m.Pix {
			m.Pix[i] = levels[(i*7+i/3)%4]
		}

		packed := Pack(m)
		assert.Len(t, packed, (size.X*size.Y+3)/4)
		assert.Equal(t, m, Unpack(packed, size.X, size.Y))
	}
}

func TestPackSubImage(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 8, 1))
	copy(m.Pix, []uint8{0, 0, 255, 170, 85, 0, 0, 0})

	sub := m.SubImage(image.Rect(2, 0, 6, 1)).(*image.Gray)
	assert.Equal(t, []byte{0xe4}, Pack(sub))
}

func TestQuantize(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 6, 1))
	copy(m.Pix, []uint8{10, 50, 90, 140, 200, 250})

	assert.Equal(t, []uint8{0, 85, 85, 170, 170, 255}, Quantize(m).Pix)
}

func TestEncodeErrors(t *testing.T) {
	p, err := Decode(testPage(), 2, testFormat)
	require.NoError(t, err)

	p.Glyphs[0].Width = 0
	_, err = Encode(p, testFormat)
	assert.Error(t, err)

	p.Glyphs[0].Width = 5
	_, err = Encode(p, testFormat)
	assert.Error(t, err, "bitmap size mismatch")

	p.Glyphs = p.Glyphs[:3]
	_, err = Encode(p, testFormat)
	assert.Error(t, err)
}

func TestAssignOffsets(t *testing.T) {
	p, err := Decode(testPage(), 2, testFormat)
	require.NoError(t, err)

	for _, g := range p.Glyphs {
		g.Offset = 99
	}
	AssignOffsets(p)

	assert.Equal(t, 0, p.Glyphs[0].Offset)
	assert.Equal(t, 0, p.Glyphs[1].Offset)
	assert.Equal(t, 0, p.Glyphs[2].Offset)
	assert.Equal(t, 2, p.Glyphs[3].Offset)

	out, err := Encode(p, testFormat)
	require.NoError(t, err)
	assert.Equal(t, testPage(), out)
}

func TestLayoutAtlas(t *testing.T) {
	p, err := Decode(testPage(), 2, testFormat)
	require.NoError(t, err)

	points, err := LayoutAtlas(p, 6, 8)
	require.NoError(t, err)

	// The width 1 glyph fits after the first but does not advance, the
	// sentinel glyph is skipped and the last wraps
	assert.Equal(t, []image.Point{{0, 0}, {4, 0}, {0, 0}, {0, 2}}, points)
	assert.Equal(t, 2, p.Glyphs[3].Y)

	_, err = LayoutAtlas(p, 6, 3)
	assert.Error(t, err)

	_, err = LayoutAtlas(p, 3, 64)
	assert.Error(t, err)
}

func TestAtlasCrop(t *testing.T) {
	p, err := Decode(testPage(), 2, testFormat)
	require.NoError(t, err)

	// Drop the width 1 glyph as it shares its column with its neighbour
	p.Glyphs[1].Image = nil

	want := []*image.Gray{p.Glyphs[0].Image, p.Glyphs[3].Image}

	atlas, err := DrawAtlas(p, 5, 4)
	require.NoError(t, err)

	for _, g := range p.Glyphs {
		g.Image = nil
	}
	Crop(atlas, p)

	assert.Equal(t, want[0], p.Glyphs[0].Image)
	assert.Equal(t, want[1], p.Glyphs[3].Image)
	assert.Nil(t, p.Glyphs[2].Image)
}

func TestFlags(t *testing.T) {
	in := testPage()
	in[2] = 0x31 // width 4, flags 1

	p, err := Decode(in, 2, testFormat)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Glyphs[0].Width)
	assert.Equal(t, uint8(1), p.Glyphs[0].Flags)

	out, err := Encode(p, testFormat)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestOffsetPastEnd(t *testing.T) {
	in := testPage()
	in[12], in[13] = 0x00, 0x01 // glyph 3 at 0x100

	p, err := Decode(in, 2, testFormat)
	require.NoError(t, err)
	require.NotNil(t, p.Glyphs[3].Image)
	assert.Equal(t, make([]uint8, 6), p.Glyphs[3].Image.Pix)
}

func TestOverlap(t *testing.T) {
	p, err := Decode(testPage(), 2, testFormat)
	require.NoError(t, err)
	require.NoError(t, CheckOffsets(p))

	// Identical bitmaps may share bytes
	p.Glyphs[3].Offset = 0
	p.Glyphs[3].Width = 4
	p.Glyphs[3].Image = p.Glyphs[0].Image
	require.NoError(t, CheckOffsets(p))

	// A wider glyph running into its neighbour may not
	p, err = Decode(testPage(), 2, testFormat)
	require.NoError(t, err)
	wide := image.NewGray(image.Rect(0, 0, 8, 2))
	for i := range wide.Pix {
		wide.Pix[i] = 255
	}
	p.Glyphs[0].Width = 8
	p.Glyphs[0].Image = wide

	assert.ErrorIs(t, CheckOffsets(p), errOverlap)
	_, err = Encode(p, testFormat)
	assert.ErrorIs(t, err, errOverlap)

	AssignOffsets(p)
	out, err := Encode(p, testFormat)
	require.NoError(t, err)

	q, err := Decode(out, 2, testFormat)
	require.NoError(t, err)
	assert.Equal(t, wide.Pix, q.Glyphs[0].Image.Pix)
	assert.Equal(t, []uint8{255, 255, 255, 255, 255, 255}, q.Glyphs[3].Image.Pix)
}
