package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/GabrielNunesIT/font2svg/internal/domain"
)

// runCLI executes the command with args and returns its stdout and error.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	app := New(logger.NewConsoleLogger(io.Discard), &stdout)
	// A nil slice would make cobra fall back to os.Args.
	app.SetArgs(append([]string{}, args...))

	err := app.Execute()

	return stdout.String(), err
}

func writeFont(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	return path
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	input := writeFont(t, dir, "foo.ttf")

	stdout, err := runCLI(t, input)
	require.NoError(t, err)
	assert.Equal(t, 0, ExitCode(err))
	assert.Empty(t, stdout)

	data, err := os.ReadFile(filepath.Join(dir, "foo.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<font ")
	assert.Contains(t, string(data), `font-family="Go"`)
}

func TestConvertIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	input := writeFont(t, dir, "foo.ttf")
	output := filepath.Join(dir, "foo.svg")

	_, err := runCLI(t, input)
	require.NoError(t, err)
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	_, err = runCLI(t, input)
	require.NoError(t, err)
	second, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConvertStripsOnlyFinalExtension(t *testing.T) {
	dir := t.TempDir()
	input := writeFont(t, dir, "archive.tar.ttf")

	_, err := runCLI(t, input)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "archive.tar.svg"))
	assert.NoFileExists(t, filepath.Join(dir, "archive.svg"))
}

func TestConvertPDF(t *testing.T) {
	dir := t.TempDir()
	input := writeFont(t, dir, "foo.ttf")

	_, err := runCLI(t, "--format", "pdf", input)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "foo.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "foo.svg"))
}

func TestOpenFailure(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.ttf")
	require.NoError(t, os.WriteFile(garbage, []byte("not a font"), 0o644))

	tests := []struct {
		name  string
		input string
	}{
		{name: "missing file", input: filepath.Join(dir, "missing.ttf")},
		{name: "unparsable file", input: garbage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, err := runCLI(t, tt.input)
			require.Error(t, err)

			assert.Equal(t, "Error opening font file "+tt.input+"!\n", stdout)
			assert.Equal(t, 1, ExitCode(err))
			assert.True(t, Reported(err))

			var openErr *domain.OpenError
			require.ErrorAs(t, err, &openErr)
			assert.NoFileExists(t, OutputPath(tt.input, ".svg"))
		})
	}
}

func TestArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "too many arguments", args: []string{"a.ttf", "b.ttf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, err := runCLI(t, tt.args...)
			require.Error(t, err)

			assert.Empty(t, stdout)
			assert.Equal(t, 1, ExitCode(err))
			assert.False(t, Reported(err))
		})
	}
}

func TestFormatFromEnvironment(t *testing.T) {
	t.Setenv("FONT2SVG_FORMAT", "pdf")

	dir := t.TempDir()
	input := writeFont(t, dir, "foo.ttf")

	_, err := runCLI(t, input)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "foo.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "foo.svg"))
}

func TestFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("FONT2SVG_FORMAT", "pdf")

	dir := t.TempDir()
	input := writeFont(t, dir, "foo.ttf")

	_, err := runCLI(t, "--format", "svg", input)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "foo.svg"))
	assert.NoFileExists(t, filepath.Join(dir, "foo.pdf"))
}

func TestIndexFromEnvironment(t *testing.T) {
	t.Setenv("FONT2SVG_INDEX", "1")

	dir := t.TempDir()
	input := writeFont(t, dir, "foo.ttf")

	stdout, err := runCLI(t, input)
	require.Error(t, err)
	assert.Equal(t, "Error opening font file "+input+"!\n", stdout)

	stdout, err = runCLI(t, "--index", "0", input)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.FileExists(t, filepath.Join(dir, "foo.svg"))
}

func TestUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	input := writeFont(t, dir, "foo.ttf")

	_, err := runCLI(t, "-f", "woff2", input)
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.False(t, Reported(err))
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "foo.ttf", want: "foo.svg"},
		{input: "fonts/foo.otf", want: "fonts/foo.svg"},
		{input: "archive.tar.ttf", want: "archive.tar.svg"},
		{input: "foo", want: "foo.svg"},
		{input: "fonts.d/foo", want: "fonts.d/foo.svg"},
		{input: ".hidden", want: ".hidden.svg"},
		{input: "dir/..ttf", want: "dir/..ttf.svg"},
		{input: "foo.", want: "foo.svg"},
		{input: "/abs/path/Bravura.otf", want: "/abs/path/Bravura.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath(tt.input, ".svg"))
		})
	}
}
