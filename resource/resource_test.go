package resource

import (
	"bytes"
	"errors"
	"image"
	"io"
	"testing"

	"github.com/bodgit/mgtools/chunk"
	"github.com/bodgit/mgtools/font"
	"github.com/bodgit/mgtools/locale"
	"github.com/bodgit/mgtools/palette"
	"github.com/bodgit/mgtools/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A minimal container with a single three byte simple record.
var minimal = []byte{0x4d, 0x47, 0x00, 0x00, 0x00, 0x40, 0x00, 0x03, 0x01, 0x02, 0x03, 0x00, 0x00}

func testVersion() *Version {
	return &Version{
		Name:  "test",
		Magic: [2]byte{'M', 'G'},
		Entries: []Entry{
			{Index: 0, Kind: KindUnknown, DataType: DataSimple},
			{Index: 1, Kind: KindUnknown, DataType: DataWithCount},
			{Index: 2, Kind: KindSprite, DataType: DataSimple},
			{Index: 3, Kind: KindLocale, DataType: DataSimple, Localizable: true},
			{Index: 4, Kind: KindPalette, DataType: DataSimple},
			{Index: 5, Kind: KindFont, DataType: DataFont, Localizable: true},
			{Index: 6, Kind: KindUnknown, DataType: DataTexture},
		},
		TextBlocks: []int{0},
		Font: font.Format{
			Glyphs:      2,
			StartCode:   'A',
			MinPageSize: 16,
		},
		FontHeights:  []int{2, 1},
		TexturePages: 2,
		AtlasWidth:   8,
		AtlasHeight:  8,
	}
}

func newGlyph(code, width, height int, pix ...uint8) *font.Glyph {
	g := &font.Glyph{Code: code, Char: string(rune(code)), Width: width}
	if pix != nil {
		g.Image = image.NewGray(image.Rect(0, 0, width, height))
		copy(g.Image.Pix, pix)
	}
	return g
}

func testResource(t *testing.T) *Resource {
	t.Helper()

	variant := image.NewPaletted(image.Rect(0, 0, 2, 1), nil)
	variant.Pix = []uint8{1, 2}

	pages := []*font.Page{
		{Height: 2, Glyphs: []*font.Glyph{
			newGlyph('A', 2, 2, 0, 85, 170, 255),
			newGlyph('B', font.Sentinel, 2),
		}},
		{Height: 1, Glyphs: []*font.Glyph{
			newGlyph('A', 3, 1, 255, 255, 0),
			newGlyph('B', 1, 1, 0),
		}},
	}
	for _, p := range pages {
		font.AssignOffsets(p)
	}

	res := New(0, WithVersion(testVersion()))
	res.Append(&Simple{Data: []byte{1, 2, 3}})
	res.Append(&WithCount{Entries: [][]byte{{0xaa}, {0xbb, 0xcc}}, Trailer: [4]byte{1, 2, 3, 4}})
	res.Append(&Sprite{&sprite.Sprite{Variants: []*image.Paletted{variant}}})
	res.Append(&Locale{&locale.Locale{Blocks: []locale.Block{
		{Text: true, Strings: []locale.String{locale.NewString(1, "Snake")}, Terminator: 0},
		{Data: []byte{0xde, 0xad}},
	}}})
	res.Append(&Palette{Colors: palette.Palette{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}})
	res.Append(&Font{Identifier: 0x1234, Pages: pages})
	res.Append(&Texture{Type: DataTexture, Identifier: 0x5678, Pages: [][]byte{{0x01}, {}}})

	return res
}

func TestDecodeMinimal(t *testing.T) {
	res, err := Decode(minimal)
	require.NoError(t, err)

	assert.Equal(t, PlatformPC, res.Platform)
	require.Len(t, res.Files, 1)
	assert.Equal(t, &Simple{Data: []byte{1, 2, 3}}, res.Files[0])

	b, err := res.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, minimal, b)
}

func TestLoadSave(t *testing.T) {
	res, err := Load(bytes.NewReader(minimal))
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, res.Save(buf))
	assert.Equal(t, minimal, buf.Bytes())
}

func TestRoundTrip(t *testing.T) {
	res := testResource(t)

	b, err := res.MarshalBinary()
	require.NoError(t, err)

	got, err := Decode(b, WithVersion(res.Version))
	require.NoError(t, err)
	require.Len(t, got.Files, len(res.Files))

	for i, f := range got.Files {
		assert.IsType(t, res.Files[i], f, "record %d", i)
		assert.Equal(t, res.Files[i].DataType(), f.DataType(), "record %d", i)
	}

	assert.Equal(t, res.Files[1], got.Files[1])
	assert.Equal(t, res.Files[4], got.Files[4])
	assert.Equal(t, res.Files[6], got.Files[6])

	l := got.Files[3].(*Locale)
	require.Len(t, l.Strings(0), 1)
	assert.Equal(t, "Snake", l.Strings(0)[0].Text)

	f := got.Files[5].(*Font)
	assert.Equal(t, uint16(0x1234), f.Identifier)
	assert.Equal(t, []uint8{0, 85, 170, 255}, f.Pages[0].Glyphs[0].Image.Pix)
	assert.False(t, f.Pages[0].Glyphs[1].HasBitmap())

	again, err := got.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, b, again)
}

func TestBadMagic(t *testing.T) {
	b := bytes.Clone(minimal)
	b[0] = 'X'

	_, err := Decode(b)
	var fe *chunk.FormatError
	assert.True(t, errors.As(err, &fe))

	_, err = Decode([]byte{'M'})
	assert.True(t, errors.As(err, &fe))
}

func TestUnknownPlatform(t *testing.T) {
	b := bytes.Clone(minimal)
	b[2], b[3] = 0x12, 0x34

	res, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, PlatformUnknown, res.Platform)
	assert.Equal(t, uint16(0x1234), res.PlatformTag)

	out, err := res.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, b, out)
}

func TestUnknownDataType(t *testing.T) {
	b := []byte{0x4d, 0x47, 0x00, 0x00, 0x99, 0x40, 0x00, 0x01, 0xff, 0x00, 0x00}

	res, err := Decode(b)
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, &Unknown{Type: 0x4099, Data: []byte{0xff}}, res.Files[0])

	out, err := res.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, b, out)
}

func TestDecodeErrors(t *testing.T) {
	tables := map[string][]byte{
		"trailing":  append(bytes.Clone(minimal), 0x00),
		"truncated": minimal[:9],
		"no end":    minimal[:11],
		"odd count": {0x4d, 0x47, 0x00, 0x00, 0x01, 0x40, 0x00, 0x03},
	}

	for name, b := range tables {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(b)
			var fe *chunk.FormatError
			assert.True(t, errors.As(err, &fe))
		})
	}

	_, err := Decode(minimal[:9])
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestKindMismatch(t *testing.T) {
	v := testVersion()
	v.Entries = v.Entries[:1]
	v.Entries[0].Kind = KindFont
	v.Entries[0].DataType = DataFont

	res, err := Decode(minimal, WithVersion(v))
	require.NoError(t, err)
	assert.Equal(t, &Simple{Data: []byte{1, 2, 3}}, res.Files[0])
}

func TestLookup(t *testing.T) {
	res := testResource(t)

	f, err := res.File(0)
	require.NoError(t, err)
	assert.Equal(t, DataSimple, f.DataType())

	_, err = res.File(len(res.Files))
	var re *chunk.RangeError
	assert.True(t, errors.As(err, &re))

	p, err := res.FirstPalette()
	require.NoError(t, err)
	assert.Equal(t, palette.Color{R: 1, G: 2, B: 3}, p.Colors[0])

	_, err = res.Palette(1)
	assert.True(t, errors.As(err, &re))
	assert.EqualError(t, err, "palette index 1 out of range [0, 1)")
}

func TestWriteErrors(t *testing.T) {
	res := New(0)
	res.Append(&Simple{Data: make([]byte, 1<<16)})
	_, err := res.MarshalBinary()
	assert.Error(t, err)

	res = New(0)
	res.Append(&Texture{Type: DataTexture, Pages: [][]byte{{}}})
	_, err = res.MarshalBinary()
	assert.Error(t, err)
}

func TestMG1(t *testing.T) {
	assert.NoError(t, MG1.Validate())
	assert.Len(t, MG1.Entries, 77)
	assert.Equal(t, KindSprite, MG1.Entry(41).Kind)
	assert.Equal(t, DataWithCount, MG1.Entry(52).DataType)
	assert.Equal(t, KindFont, MG1.Entry(75).Kind)
	assert.Equal(t, 5, MG1.Pages(DataFont))
	assert.Equal(t, 2, MG1.Pages(DataTexture))
	assert.Equal(t, "80", MG1.FileName(80))
	assert.Equal(t, KindUnknown, MG1.Entry(80).Kind)
}

func TestFileFraming(t *testing.T) {
	res := testResource(t)

	for i, f := range res.Files {
		b, err := res.EncodeFile(f)
		require.NoError(t, err)

		got, err := res.DecodeFile(b, i)
		require.NoError(t, err)
		assert.Equal(t, f.DataType(), got.DataType(), "record %d", i)
	}

	_, err := res.DecodeFile([]byte{0x00, 0x40, 0x00, 0x01, 0xff, 0xee}, 0)
	var fe *chunk.FormatError
	assert.True(t, errors.As(err, &fe))

	_, err = res.DecodeFile([]byte{0x00, 0x00}, 0)
	assert.True(t, errors.As(err, &fe))
}

func TestSetPlatform(t *testing.T) {
	res := New(0)
	assert.Equal(t, PlatformPC, res.Platform)

	var ue *chunk.UnsupportedValueError
	assert.True(t, errors.As(res.SetPlatform(7), &ue))
	assert.Equal(t, PlatformUnknown, res.Platform)
	assert.Equal(t, uint16(7), res.PlatformTag)
}
