// Package domain provides core models and interfaces for the font converter.
package domain

// Font represents a parsed font file.
type Font struct {
	Path           string
	Data           []byte // Raw file contents, needed by exporters that embed the font
	Family         string
	Subfamily      string
	FullName       string
	PostScriptName string
	UnitsPerEm     int
	Ascent         float64 // Font units, y-up
	Descent        float64 // Font units, y-up (negative below the baseline)
	BBox           Rect
	Glyphs         []Glyph // Indexed by glyph ID
}

// Glyph represents a single glyph of a font.
type Glyph struct {
	ID      int
	Name    string
	Runes   []rune // Code points mapped to this glyph, ascending
	Advance float64
	Outline Outline
}

// Rect is an axis-aligned rectangle in font units.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// Point is a position in font units, y-up.
type Point struct {
	X, Y float64
}

// SegmentOp is the drawing operation of a Segment.
type SegmentOp int

// Segment operations.
const (
	MoveTo SegmentOp = iota
	LineTo
	QuadTo
	CubeTo
)

// Points returns the number of points the operation consumes.
func (op SegmentOp) Points() int {
	switch op {
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	default:
		return 1
	}
}

// Segment is one drawing step of an outline.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Outline is a glyph outline. Every MoveTo starts a new closed contour.
type Outline []Segment

// Mapped returns the glyphs that have at least one code point.
func (f *Font) Mapped() []Glyph {
	var mapped []Glyph

	for _, g := range f.Glyphs {
		if len(g.Runes) > 0 {
			mapped = append(mapped, g)
		}
	}

	return mapped
}

// DisplayName returns the best available human readable name of the font.
func (f *Font) DisplayName() string {
	switch {
	case f.FullName != "":
		return f.FullName
	case f.Family != "":
		return f.Family
	case f.PostScriptName != "":
		return f.PostScriptName
	default:
		return "Untitled"
	}
}
