package resource

import (
	"errors"
	"fmt"

	"github.com/bodgit/mgtools/font"
)

// Kind is the codec the schema declares for a position.
type Kind int

const (
	KindUnknown Kind = iota
	KindSprite
	KindPalette
	KindLocale
	KindFont
)

func (k Kind) String() string {
	switch k {
	case KindSprite:
		return "sprite"
	case KindPalette:
		return "palette"
	case KindLocale:
		return "locale"
	case KindFont:
		return "font"
	default:
		return "unknown"
	}
}

// Entry describes one position of a container.
type Entry struct {
	Index    int
	Kind     Kind
	Name     string
	DataType DataType

	// Localizable entries are exported without --all.
	Localizable bool
}

// Version is the schema of one game's containers. The constants here were
// recovered from a single set of files and have not been confirmed against
// other platforms.
type Version struct {
	Name  string
	Magic [2]byte

	Entries []Entry

	// TextBlocks are the locale block indices holding strings.
	TextBlocks []int

	Font        font.Format
	FontHeights []int

	TexturePages int

	AtlasWidth, AtlasHeight int
}

// Entry returns the schema entry for position i. Positions past the end of
// the schema are unknown simple records.
func (v *Version) Entry(i int) Entry {
	if i >= 0 && i < len(v.Entries) {
		return v.Entries[i]
	}
	return Entry{Index: i, Kind: KindUnknown, DataType: DataSimple}
}

// FontPages is the number of pages in a font record.
func (v *Version) FontPages() int {
	return len(v.FontHeights)
}

// Pages returns the fixed page count of a font or texture record.
func (v *Version) Pages(d DataType) int {
	if d == DataFont {
		return v.FontPages()
	}
	return v.TexturePages
}

var errNoPages = errors.New("no font pages")

// Validate checks the schema is consistent.
func (v *Version) Validate() error {
	if v.FontPages() == 0 || v.TexturePages <= 0 {
		return fmt.Errorf("%s: %w", v.Name, errNoPages)
	}
	for i, h := range v.FontHeights {
		if h <= 0 {
			return fmt.Errorf("%s: font page %d has height %d", v.Name, i, h)
		}
	}
	if v.Font.Glyphs <= 0 || v.Font.MinPageSize < 0 {
		return fmt.Errorf("%s: invalid font format %+v", v.Name, v.Font)
	}
	if v.AtlasWidth <= 0 || v.AtlasHeight <= 0 {
		return fmt.Errorf("%s: invalid atlas size", v.Name)
	}

	seen := make(map[int]bool)
	for _, i := range v.TextBlocks {
		if i < 0 || seen[i] {
			return fmt.Errorf("%s: bad text block %d", v.Name, i)
		}
		seen[i] = true
	}

	fonts := 0
	for i, e := range v.Entries {
		if e.Kind == KindFont {
			fonts++
		}
		if e.Index != i {
			return fmt.Errorf("%s: entry %d has index %d", v.Name, i, e.Index)
		}
		if !e.DataType.Known() {
			return fmt.Errorf("%s: entry %d has %s data type", v.Name, i, e.DataType)
		}
		want := DataSimple
		switch e.Kind {
		case KindUnknown:
			continue
		case KindFont:
			want = DataFont
		}
		if e.DataType != want {
			return fmt.Errorf("%s: %s entry %d has %s data type", v.Name, e.Kind, i, e.DataType)
		}
	}
	if fonts > 1 {
		return fmt.Errorf("%s: %d font entries", v.Name, fonts)
	}

	return nil
}

// FileName returns the base name used for position i in exported assets.
func (v *Version) FileName(i int) string {
	if e := v.Entry(i); e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("%02d", i)
}

func newMG1() *Version {
	v := &Version{
		Name:       "mg1",
		Magic:      [2]byte{'M', 'G'},
		TextBlocks: []int{3, 4, 5, 6, 7, 8, 9, 13, 14, 15},
		Font: font.Format{
			Glyphs:      192,
			StartCode:   ' ',
			MinPageSize: 0x1000,
		},
		FontHeights:  []int{16, 16, 12, 12, 8},
		TexturePages: 2,
		AtlasWidth:   512,
		AtlasHeight:  512,
	}

	const files = 77
	kinds := map[int]Kind{
		72: KindLocale,
		74: KindPalette,
		75: KindFont,
	}
	for i := 41; i <= 70; i++ {
		if i != 52 {
			kinds[i] = KindSprite
		}
	}
	dataTypes := map[int]DataType{
		52: DataWithCount,
		75: DataFont,
		76: DataTexture,
	}

	for i := 0; i < files; i++ {
		e := Entry{
			Index:    i,
			Kind:     kinds[i],
			DataType: DataSimple,
		}
		if d, ok := dataTypes[i]; ok {
			e.DataType = d
		}
		e.Localizable = e.Kind == KindLocale || e.Kind == KindFont
		v.Entries = append(v.Entries, e)
	}

	return v
}

// MG1 is the schema of Metal Gear containers.
var MG1 = newMG1()

// Versions lists the supported schemas by name.
var Versions = map[string]*Version{
	MG1.Name: MG1,
}

func init() {
	for _, v := range Versions {
		if err := v.Validate(); err != nil {
			panic(err)
		}
	}
}
