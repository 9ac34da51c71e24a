package resource

import (
	"github.com/bodgit/mgtools/font"
	"github.com/bodgit/mgtools/locale"
	"github.com/bodgit/mgtools/palette"
	"github.com/bodgit/mgtools/sprite"
)

// File is one record of a container. The set of implementations is closed.
type File interface {
	DataType() DataType
	isFile()
}

// Simple is an opaque DataSimple record.
type Simple struct {
	Data []byte
}

// WithCount is a DataWithCount record.
type WithCount struct {
	Entries [][]byte
	Trailer [4]byte
}

// Texture is a page framed record kept as opaque pages. Type is
// DataTexture, or DataFont for a font framed record outside the schema's
// font position.
type Texture struct {
	Type       DataType
	Identifier uint16
	Pages      [][]byte
}

// Font is a decoded font record.
type Font struct {
	Identifier uint16
	Pages      []*font.Page
}

// Sprite is a decoded sprite record.
type Sprite struct {
	*sprite.Sprite
}

// Palette is a decoded color table record.
type Palette struct {
	Colors palette.Palette
}

// Locale is a decoded locale record.
type Locale struct {
	*locale.Locale
}

// Unknown is a record whose data type tag is not recognised. It is assumed
// to be framed like DataSimple.
type Unknown struct {
	Type DataType
	Data []byte
}

func (*Simple) DataType() DataType    { return DataSimple }
func (*WithCount) DataType() DataType { return DataWithCount }
func (t *Texture) DataType() DataType { return t.Type }
func (*Font) DataType() DataType      { return DataFont }
func (*Sprite) DataType() DataType    { return DataSimple }
func (*Palette) DataType() DataType   { return DataSimple }
func (*Locale) DataType() DataType    { return DataSimple }
func (u *Unknown) DataType() DataType { return u.Type }

func (*Simple) isFile()    {}
func (*WithCount) isFile() {}
func (*Texture) isFile()   {}
func (*Font) isFile()      {}
func (*Sprite) isFile()    {}
func (*Palette) isFile()   {}
func (*Locale) isFile()    {}
func (*Unknown) isFile()   {}
