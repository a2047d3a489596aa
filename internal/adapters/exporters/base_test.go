package exporters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielNunesIT/font2svg/internal/domain"
)

func TestForFormat(t *testing.T) {
	tests := []struct {
		format    string
		want      string
		extension string
	}{
		{format: "svg", want: "svg", extension: ".svg"},
		{format: "SVG", want: "svg", extension: ".svg"},
		{format: ".svg", want: "svg", extension: ".svg"},
		{format: "", want: "svg", extension: ".svg"},
		{format: "pdf", want: "pdf", extension: ".pdf"},
		{format: ".PDF", want: "pdf", extension: ".pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exporter, err := ForFormat(tt.format, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, exporter.Format())
			assert.Equal(t, tt.extension, exporter.Extension())
		})
	}
}

func TestForFormatUnsupported(t *testing.T) {
	_, err := ForFormat("woff2", Options{})
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "woff2")
	assert.Contains(t, err.Error(), "svg, pdf")
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		0:        "0",
		1024:     "1024",
		-200:     "-200",
		12.5:     "12.5",
		0.015625: "0.015625",
	}

	for v, want := range tests {
		assert.Equal(t, want, formatNumber(v))
	}
}
