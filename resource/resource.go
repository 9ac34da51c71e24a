/*
Package resource implements the top level resource container of the Metal
Gear PC port.

A container is a 2-byte magic, a 2-byte platform tag and a sequence of
records ended by a zero type tag. Each record is a 2-byte data type tag
followed by a body whose framing depends on the tag. Records are addressed
by position and a versioned schema decides which codec applies to the
record at each position.
*/
package resource

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"

	"github.com/bodgit/mgtools/chunk"
)

// DataType is the tag at the start of every record. It selects the framing
// of the record body.
type DataType uint16

const (
	// DataSimple records hold a 2-byte length and that many bytes.
	DataSimple DataType = 0x4000
	// DataWithCount records hold a 2-byte header of twice the entry
	// count, the 4-byte length prefixed entries and a 4-byte trailer.
	DataWithCount DataType = 0x4001
	// DataFont records hold a 2-byte identifier and a fixed number of
	// 4-byte length prefixed glyph pages.
	DataFont DataType = 0x4002
	// DataTexture records are framed like DataFont with a different page
	// count.
	DataTexture DataType = 0x4013

	dataEnd DataType = 0
)

var dataTypeNames = map[DataType]string{
	DataSimple:    "simple",
	DataWithCount: "with-count",
	DataFont:      "font",
	DataTexture:   "texture",
}

func (d DataType) String() string {
	if s, ok := dataTypeNames[d]; ok {
		return s
	}
	return fmt.Sprintf("unknown(0x%04x)", uint16(d))
}

// Known reports whether the framing of d is understood.
func (d DataType) Known() bool {
	_, ok := dataTypeNames[d]
	return ok
}

// Platform identifies which build a container belongs to.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformPC
)

// The tag values are inferred from observed files and unconfirmed.
var platformTags = map[uint16]Platform{
	0x0000: PlatformPC,
}

func (p Platform) String() string {
	switch p {
	case PlatformPC:
		return "pc"
	default:
		return "unknown"
	}
}

// PlatformFromTag maps a raw platform tag. Unknown tags return
// PlatformUnknown together with an *chunk.UnsupportedValueError that callers
// are expected to log and otherwise ignore.
func PlatformFromTag(tag uint16) (Platform, error) {
	if p, ok := platformTags[tag]; ok {
		return p, nil
	}
	return PlatformUnknown, &chunk.UnsupportedValueError{Kind: "platform", Value: int(tag)}
}

// Resource is one container. The raw platform tag is kept alongside the
// parsed platform so that unknown platforms are written back unchanged.
type Resource struct {
	Version     *Version
	Platform    Platform
	PlatformTag uint16
	Files       []File

	// TextEncoding is used for locale text blocks, MGSCII if nil.
	TextEncoding encoding.Encoding

	logger zerolog.Logger
}

// Option configures a Resource.
type Option func(*Resource)

// WithLogger sets the logger used to report recovered problems.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resource) {
		r.logger = logger
	}
}

// WithVersion selects the schema, MG1 by default.
func WithVersion(v *Version) Option {
	return func(r *Resource) {
		r.Version = v
	}
}

// WithTextEncoding selects the encoding of locale text blocks.
func WithTextEncoding(enc encoding.Encoding) Option {
	return func(r *Resource) {
		r.TextEncoding = enc
	}
}

// New returns an empty resource for the given platform tag.
func New(tag uint16, options ...Option) *Resource {
	r := &Resource{
		Version:     MG1,
		PlatformTag: tag,
		logger:      zerolog.Nop(),
	}
	for _, o := range options {
		o(r)
	}
	r.Platform, _ = PlatformFromTag(tag)
	return r
}

func (r *Resource) String() string {
	return fmt.Sprintf("Resource(version=%s, platform=%s, files=%d)", r.Version.Name, r.Platform, len(r.Files))
}

// Append adds f at the next position.
func (r *Resource) Append(f File) {
	r.Files = append(r.Files, f)
}

// File returns the record at position i.
func (r *Resource) File(i int) (File, error) {
	if i < 0 || i >= len(r.Files) {
		return nil, &chunk.RangeError{Kind: "file", Index: i, Len: len(r.Files)}
	}
	return r.Files[i], nil
}

// Palettes returns every palette record in load order.
func (r *Resource) Palettes() []*Palette {
	var palettes []*Palette
	for _, f := range r.Files {
		if p, ok := f.(*Palette); ok {
			palettes = append(palettes, p)
		}
	}
	return palettes
}

// Palette returns the i-th palette record in load order.
func (r *Resource) Palette(i int) (*Palette, error) {
	palettes := r.Palettes()
	if i < 0 || i >= len(palettes) {
		return nil, &chunk.RangeError{Kind: "palette", Index: i, Len: len(palettes)}
	}
	return palettes[i], nil
}

// FirstPalette returns the first palette record in load order, the one
// sprites are displayed with.
func (r *Resource) FirstPalette() (*Palette, error) {
	return r.Palette(0)
}

// SetPlatform replaces the platform tag. Unknown tags are kept as is and
// reported as an *chunk.UnsupportedValueError.
func (r *Resource) SetPlatform(tag uint16) error {
	var err error
	r.PlatformTag = tag
	r.Platform, err = PlatformFromTag(tag)
	return err
}
