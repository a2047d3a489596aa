// Package exporters provides implementations for writing fonts to various formats.
package exporters

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/GabrielNunesIT/font2svg/internal/domain"
)

// Options configures the exporters.
type Options struct {
	SpecimenText   string
	SpecimenSize   float64
	SpecimenGlyphs int
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{svgFormat, pdfFormat}
}

// ForFormat returns the exporter for a format name or file extension.
func ForFormat(format string, opts Options) (domain.Exporter, error) {
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case svgFormat, "":
		return NewSVGExporter(), nil
	case pdfFormat:
		return NewPDFExporter(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s (supported: %s)", domain.ErrUnsupportedFormat, format, strings.Join(Formats(), ", "))
	}
}

// formatNumber returns the shortest exact decimal form of v.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// errWriter remembers the first write error so that writers which ignore
// errors can still report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}

	return n, err
}
