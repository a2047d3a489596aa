package exporters

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/GabrielNunesIT/font2svg/internal/domain"
)

const (
	svgFormat    = "svg"
	svgExtension = ".svg"
)

// weights maps subfamily keywords to CSS font weights. Compound names
// come before their suffixes so that "semibold" does not match "bold".
var weights = []struct {
	keyword string
	weight  int
}{
	{"extralight", 200},
	{"ultralight", 200},
	{"extrabold", 800},
	{"ultrabold", 800},
	{"semibold", 600},
	{"demibold", 600},
	{"thin", 100},
	{"light", 300},
	{"medium", 500},
	{"bold", 700},
	{"black", 900},
	{"heavy", 900},
}

// SVGExporter writes fonts as SVG fonts.
type SVGExporter struct{}

// NewSVGExporter creates a new SVG font exporter.
func NewSVGExporter() *SVGExporter {
	return &SVGExporter{}
}

// Format returns the output format name.
func (e *SVGExporter) Format() string {
	return svgFormat
}

// Extension returns the output file extension.
func (e *SVGExporter) Extension() string {
	return svgExtension
}

// Export writes the font as an SVG document holding a single <font> element.
func (e *SVGExporter) Export(font *domain.Font, output io.Writer) error {
	w := &errWriter{w: output}
	canvas := svg.New(w)

	canvas.Startraw()
	canvas.Title(font.DisplayName())
	canvas.Def()

	e.writeFont(w, font)

	canvas.DefEnd()
	canvas.End()

	if w.err != nil {
		return fmt.Errorf("failed to write svg: %w", w.err)
	}

	return nil
}

func (e *SVGExporter) writeFont(w io.Writer, font *domain.Font) {
	defaultAdvance := 0.0
	if len(font.Glyphs) > 0 {
		defaultAdvance = font.Glyphs[0].Advance
	}

	fmt.Fprintf(w, "<font id=%s horiz-adv-x=%s>\n", attr(fontID(font)), attr(formatNumber(defaultAdvance)))
	e.writeFontFace(w, font)

	for i, g := range font.Glyphs {
		if i == 0 {
			fmt.Fprintf(w, "<missing-glyph horiz-adv-x=%s d=%s />\n",
				attr(formatNumber(g.Advance)), attr(pathData(g.Outline)))

			continue
		}

		runes := xmlRunes(g.Runes)
		if len(runes) == 0 {
			fmt.Fprintf(w, "<glyph glyph-name=%s horiz-adv-x=%s d=%s />\n",
				attr(glyphName(g)), attr(formatNumber(g.Advance)), attr(pathData(g.Outline)))

			continue
		}

		d := pathData(g.Outline)
		for _, r := range runes {
			fmt.Fprintf(w, "<glyph glyph-name=%s unicode=\"%s\" horiz-adv-x=%s d=%s />\n",
				attr(glyphName(g)), unicodeValue(r), attr(formatNumber(g.Advance)), attr(d))
		}
	}

	fmt.Fprintln(w, "</font>")
}

func (e *SVGExporter) writeFontFace(w io.Writer, font *domain.Font) {
	fmt.Fprintf(w, "<font-face font-family=%s font-weight=\"%d\" font-style=%s units-per-em=\"%d\" ascent=%s descent=%s",
		attr(font.Family), fontWeight(font.Subfamily), attr(fontStyle(font.Subfamily)), font.UnitsPerEm,
		attr(formatNumber(font.Ascent)), attr(formatNumber(font.Descent)))

	fmt.Fprintf(w, " bbox=\"%s %s %s %s\"",
		formatNumber(font.BBox.XMin), formatNumber(font.BBox.YMin),
		formatNumber(font.BBox.XMax), formatNumber(font.BBox.YMax))

	if lo, hi, ok := unicodeRange(font); ok {
		fmt.Fprintf(w, " unicode-range=\"U+%04X-%04X\"", lo, hi)
	}

	fmt.Fprintln(w, " />")
}

// pathData renders an outline as SVG path data. Contours are closed
// explicitly since outlines only mark their starts.
func pathData(o domain.Outline) string {
	var b strings.Builder

	for i, s := range o {
		if s.Op == domain.MoveTo && i > 0 {
			b.WriteByte('Z')
		}

		b.WriteByte(pathCommand(s.Op))

		for j := 0; j < s.Op.Points(); j++ {
			if j > 0 {
				b.WriteByte(' ')
			}

			b.WriteString(formatNumber(s.Args[j].X))
			b.WriteByte(' ')
			b.WriteString(formatNumber(s.Args[j].Y))
		}
	}

	if len(o) > 0 {
		b.WriteByte('Z')
	}

	return b.String()
}

func pathCommand(op domain.SegmentOp) byte {
	switch op {
	case domain.LineTo:
		return 'L'
	case domain.QuadTo:
		return 'Q'
	case domain.CubeTo:
		return 'C'
	default:
		return 'M'
	}
}

func fontID(font *domain.Font) string {
	name := font.PostScriptName
	if name == "" {
		name = font.Family
	}

	id := strings.Map(func(r rune) rune {
		if r < 0x80 && (r == '-' || r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return r
		}

		return -1
	}, name)

	if id == "" {
		return "font"
	}

	return id
}

func glyphName(g domain.Glyph) string {
	if g.Name != "" {
		return g.Name
	}

	if len(g.Runes) > 0 {
		return fmt.Sprintf("uni%04X", g.Runes[0])
	}

	return fmt.Sprintf("glyph%d", g.ID)
}

func fontWeight(subfamily string) int {
	s := strings.ToLower(strings.ReplaceAll(subfamily, " ", ""))

	for _, w := range weights {
		if strings.Contains(s, w.keyword) {
			return w.weight
		}
	}

	return 400
}

func fontStyle(subfamily string) string {
	s := strings.ToLower(subfamily)

	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		return "italic"
	}

	return "normal"
}

func unicodeRange(font *domain.Font) (lo, hi rune, ok bool) {
	for _, g := range font.Glyphs {
		for _, r := range xmlRunes(g.Runes) {
			if !ok || r < lo {
				lo = r
			}

			if !ok || r > hi {
				hi = r
			}

			ok = true
		}
	}

	return lo, hi, ok
}

// xmlRunes filters out code points that XML 1.0 cannot represent.
func xmlRunes(runes []rune) []rune {
	var out []rune

	for _, r := range runes {
		switch {
		case r == 0x09, r == 0x0A, r == 0x0D,
			r >= 0x20 && r <= 0xD7FF,
			r >= 0xE000 && r <= 0xFFFD,
			r >= 0x10000 && r <= 0x10FFFF:
			out = append(out, r)
		}
	}

	return out
}

// unicodeValue returns the XML attribute text for r. Everything but ASCII
// letters and digits is written as a character reference.
func unicodeValue(r rune) string {
	if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return string(r)
	}

	return fmt.Sprintf("&#x%X;", r)
}

// attr returns s escaped and quoted for use as an XML attribute value.
func attr(s string) string {
	var b bytes.Buffer

	b.WriteByte('"')
	_ = xml.EscapeText(&b, []byte(s))
	b.WriteByte('"')

	return b.String()
}
