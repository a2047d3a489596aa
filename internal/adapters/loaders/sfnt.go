// Package loaders provides implementations for opening font files.
package loaders

import (
	"errors"
	"fmt"
	"os"
	"unicode"

	"github.com/GabrielNunesIT/font2svg/internal/domain"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	// maxPPEM bounds the scale outlines are loaded at. x/image multiplies
	// coordinates by ppem in 26.6 before dividing by units per em, so
	// |coord| * ppem * 64 must stay below 2^31: up to 16383 units here.
	maxPPEM = 2048
)

// SFNTLoader opens TrueType and OpenType fonts, including collections.
type SFNTLoader struct {
	collectionIndex int
}

// NewSFNTLoader creates a new SFNT loader. For collections, the font at
// collectionIndex is opened.
func NewSFNTLoader(collectionIndex int) *SFNTLoader {
	return &SFNTLoader{collectionIndex: collectionIndex}
}

// Load reads and parses the font at path.
func (l *SFNTLoader) Load(path string) (*domain.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpenError{Path: path, Err: err}
	}

	f, err := l.Parse(data)
	if err != nil {
		return nil, &domain.OpenError{Path: path, Err: err}
	}

	f.Path = path

	return f, nil
}

// Parse decodes font data. ParseCollection also accepts single fonts.
func (l *SFNTLoader) Parse(data []byte) (*domain.Font, error) {
	collection, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	if l.collectionIndex < 0 || l.collectionIndex >= collection.NumFonts() {
		return nil, fmt.Errorf("font index %d out of range (collection holds %d)", l.collectionIndex, collection.NumFonts())
	}

	sf, err := collection.Font(l.collectionIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %d: %w", l.collectionIndex, err)
	}

	r := newReader(sf)

	out, err := r.read()
	if err != nil {
		return nil, err
	}

	out.Data = data

	return out, nil
}

// reader extracts the domain model from a parsed font. Outlines are loaded
// with ppem equal to units per em, capped at maxPPEM, and scaled back to
// font units.
type reader struct {
	font   *sfnt.Font
	upem   sfnt.Units
	buf    sfnt.Buffer
	scale  fixed.Int26_6
	factor float64
}

func newReader(sf *sfnt.Font) *reader {
	upem := sf.UnitsPerEm()
	scale, factor := loadScale(upem)

	return &reader{font: sf, upem: upem, scale: scale, factor: factor}
}

// loadScale returns the ppem to load at and the factor converting loaded
// pixels back to font units.
func loadScale(upem sfnt.Units) (fixed.Int26_6, float64) {
	ppem := min(upem, maxPPEM)

	return fixed.Int26_6(ppem) << 6, float64(upem) / float64(ppem)
}

func (r *reader) ppem() fixed.Int26_6 {
	return r.scale
}

// units converts a loaded 26.6 value to font units.
func (r *reader) units(v fixed.Int26_6) float64 {
	return float64(v) / 64 * r.factor
}

func (r *reader) read() (*domain.Font, error) {
	out := &domain.Font{
		Family:         r.name(sfnt.NameIDFamily),
		Subfamily:      r.name(sfnt.NameIDSubfamily),
		FullName:       r.name(sfnt.NameIDFull),
		PostScriptName: r.name(sfnt.NameIDPostScript),
		UnitsPerEm:     int(r.upem),
	}

	metrics, err := r.font.Metrics(&r.buf, r.ppem(), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("failed to read metrics: %w", err)
	}

	out.Ascent = r.units(metrics.Ascent)
	out.Descent = -r.units(metrics.Descent)

	bounds, err := r.font.Bounds(&r.buf, r.ppem(), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("failed to read bounds: %w", err)
	}

	// Bounds are y-down.
	out.BBox = domain.Rect{
		XMin: r.units(bounds.Min.X),
		YMin: -r.units(bounds.Max.Y),
		XMax: r.units(bounds.Max.X),
		YMax: -r.units(bounds.Min.Y),
	}

	runes, err := r.charMap()
	if err != nil {
		return nil, err
	}

	n := r.font.NumGlyphs()
	out.Glyphs = make([]domain.Glyph, n)

	for i := 0; i < n; i++ {
		g, err := r.glyph(sfnt.GlyphIndex(i))
		if err != nil {
			return nil, fmt.Errorf("failed to read glyph %d: %w", i, err)
		}

		g.Runes = runes[sfnt.GlyphIndex(i)]
		out.Glyphs[i] = g
	}

	return out, nil
}

func (r *reader) name(id sfnt.NameID) string {
	s, err := r.font.Name(&r.buf, id)
	if err != nil {
		return ""
	}

	return s
}

// charMap inverts the cmap by probing every code point.
func (r *reader) charMap() (map[sfnt.GlyphIndex][]rune, error) {
	runes := make(map[sfnt.GlyphIndex][]rune)

	for c := rune(0); c <= unicode.MaxRune; c++ {
		if c == surrogateMin {
			c = surrogateMax
			continue
		}

		idx, err := r.font.GlyphIndex(&r.buf, c)
		if err != nil {
			return nil, fmt.Errorf("failed to map U+%04X: %w", c, err)
		}

		if idx != 0 {
			runes[idx] = append(runes[idx], c)
		}
	}

	return runes, nil
}

func (r *reader) glyph(idx sfnt.GlyphIndex) (domain.Glyph, error) {
	g := domain.Glyph{ID: int(idx)}

	name, err := r.font.GlyphName(&r.buf, idx)
	if err != nil {
		return g, err
	}

	g.Name = name

	advance, err := r.font.GlyphAdvance(&r.buf, idx, r.ppem(), font.HintingNone)
	if err != nil {
		return g, err
	}

	g.Advance = r.units(advance)

	segments, err := r.font.LoadGlyph(&r.buf, idx, r.ppem(), nil)
	if errors.Is(err, sfnt.ErrColoredGlyph) {
		return g, nil
	}

	if err != nil {
		return g, err
	}

	g.Outline = r.convertSegments(segments)

	return g, nil
}

func (r *reader) convertSegments(segments sfnt.Segments) domain.Outline {
	outline := make(domain.Outline, 0, len(segments))

	for _, s := range segments {
		seg := domain.Segment{}

		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = domain.MoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = domain.LineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op = domain.QuadTo
		case sfnt.SegmentOpCubeTo:
			seg.Op = domain.CubeTo
		}

		for i := 0; i < seg.Op.Points(); i++ {
			seg.Args[i] = domain.Point{X: r.units(s.Args[i].X), Y: -r.units(s.Args[i].Y)}
		}

		outline = append(outline, seg)
	}

	return outline
}
