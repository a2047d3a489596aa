package exporters

import (
	"fmt"
	"io"
	"slices"
	"unicode"

	"github.com/GabrielNunesIT/font2svg/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFormat      = "pdf"
	pdfExtension   = ".pdf"
	pdfPageWidth   = 190.0
	pdfMarginLeft  = 10.0
	pdfMarginTop   = 10.0
	pdfMarginRight = 10.0
	pdfLineHeight  = 5.0
	pdfChartCols   = 16
	pdfFamily      = "specimen"
)

var pdfSampleSizes = []float64{9, 12, 18, 24, 36}

// PDFExporter writes a specimen sheet that embeds the font.
type PDFExporter struct {
	opts Options
	pdf  *gofpdf.Fpdf
}

// NewPDFExporter creates a new PDF specimen exporter.
func NewPDFExporter(opts Options) *PDFExporter {
	return &PDFExporter{opts: opts}
}

// Format returns the output format name.
func (e *PDFExporter) Format() string {
	return pdfFormat
}

// Extension returns the output file extension.
func (e *PDFExporter) Extension() string {
	return pdfExtension
}

// Export writes a specimen of the font as a PDF document.
func (e *PDFExporter) Export(font *domain.Font, output io.Writer) error {
	if len(font.Data) == 0 {
		return fmt.Errorf("font %s carries no data to embed", font.DisplayName())
	}

	e.pdf = gofpdf.New("P", "mm", "A4", "")
	e.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	e.pdf.SetDrawColor(180, 180, 180) // Light gray for chart borders
	e.pdf.AddUTF8FontFromBytes(pdfFamily, "", font.Data)

	if e.pdf.Err() {
		return fmt.Errorf("failed to embed font: %w", e.pdf.Error())
	}

	e.pdf.AddPage()
	e.addTitle(font)
	e.addSamples()
	e.addChart(font)

	if e.pdf.Err() {
		return fmt.Errorf("failed to render specimen: %w", e.pdf.Error())
	}

	return e.pdf.Output(output)
}

func (e *PDFExporter) addTitle(font *domain.Font) {
	e.pdf.SetFont("Arial", "B", 20)
	e.pdf.CellFormat(pdfPageWidth, 10, font.DisplayName(), "", 1, "", false, 0, "")

	e.pdf.SetFont("Arial", "", 10)
	e.pdf.SetTextColor(100, 100, 100)
	e.pdf.CellFormat(pdfPageWidth, pdfLineHeight,
		fmt.Sprintf("%d glyphs, %d units per em", len(font.Glyphs), font.UnitsPerEm), "", 1, "", false, 0, "")
	e.pdf.SetTextColor(0, 0, 0)
	e.pdf.Ln(8)
}

func (e *PDFExporter) addSamples() {
	if e.opts.SpecimenText == "" {
		return
	}

	sizes := pdfSampleSizes
	if e.opts.SpecimenSize > 0 {
		sizes = []float64{e.opts.SpecimenSize}
	}

	for _, size := range sizes {
		e.pdf.SetFont("Arial", "", 8)
		e.pdf.SetTextColor(128, 128, 128)
		e.pdf.CellFormat(pdfPageWidth, 4, fmt.Sprintf("%g pt", size), "", 1, "", false, 0, "")
		e.pdf.SetTextColor(0, 0, 0)

		e.pdf.SetFont(pdfFamily, "", size)
		e.pdf.MultiCell(pdfPageWidth, size*0.5, e.opts.SpecimenText, "", "", false)
		e.pdf.Ln(3)
	}
}

// addChart prints a grid of the printable BMP characters of the font.
func (e *PDFExporter) addChart(font *domain.Font) {
	runes := chartRunes(font, e.opts.SpecimenGlyphs)
	if len(runes) == 0 {
		return
	}

	e.pdf.Ln(5)
	e.pdf.SetFont("Arial", "B", 12)
	e.pdf.CellFormat(pdfPageWidth, 8, "Character Map", "", 1, "", false, 0, "")

	cell := pdfPageWidth / pdfChartCols

	for i, r := range runes {
		e.pdf.SetFont(pdfFamily, "", 14)
		ln := 0
		if (i+1)%pdfChartCols == 0 {
			ln = 1
		}

		e.pdf.CellFormat(cell, cell, string(r), "1", ln, "C", false, 0, "")
	}
}

func chartRunes(font *domain.Font, limit int) []rune {
	var runes []rune

	for _, g := range font.Mapped() {
		for _, r := range g.Runes {
			if r > 0xFFFF || !unicode.IsPrint(r) || unicode.IsSpace(r) {
				continue
			}

			runes = append(runes, r)
		}
	}

	slices.Sort(runes)

	if limit > 0 && len(runes) > limit {
		runes = runes[:limit]
	}

	return runes
}
