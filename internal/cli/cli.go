// Package cli provides the command-line interface for the font converter.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/font2svg/internal/adapters/exporters"
	"github.com/GabrielNunesIT/font2svg/internal/adapters/loaders"
	"github.com/GabrielNunesIT/font2svg/internal/config"
	"github.com/GabrielNunesIT/font2svg/internal/domain"
	"github.com/spf13/cobra"
)

// CLI holds the command-line interface configuration.
type CLI struct {
	log     logger.ILogger
	stdout  io.Writer
	rootCmd *cobra.Command
}

// Flag names double as config keys.
const (
	flagFormat = "format"
	flagIndex  = "index"
)

// New creates a new CLI instance. Diagnostics meant for the user are
// written to stdout, progress goes to log.
func New(log logger.ILogger, stdout io.Writer) *CLI {
	cli := &CLI{
		log:    log,
		stdout: stdout,
	}

	cli.rootCmd = &cobra.Command{
		Use:   "font2svg <font-file>",
		Short: "Convert a font file to an SVG font",
		Long: "A CLI tool that opens a TrueType or OpenType font and writes it next to the input " +
			"with the extension replaced, as an SVG font by default.",
		Args:          cobra.ExactArgs(1),
		RunE:          cli.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.setupFlags()

	return cli
}

func (c *CLI) setupFlags() {
	defaults := config.Defaults()

	c.rootCmd.Flags().StringP(flagFormat, "f", defaults.Format,
		fmt.Sprintf("Output format: %s", strings.Join(exporters.Formats(), ", ")))
	c.rootCmd.Flags().Int(flagIndex, defaults.CollectionIndex, "Font to open from a collection (.ttc, .otc)")
}

// SetArgs overrides the command-line arguments.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// Execute runs the CLI.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

// Reported reports whether err was already shown to the user by the CLI.
func Reported(err error) bool {
	var openErr *domain.OpenError

	return errors.As(err, &openErr)
}

// ExitCode maps the result of Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	return 1
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	exporter, err := exporters.ForFormat(cfg.Format, exporters.Options{
		SpecimenText:   cfg.Specimen.Text,
		SpecimenSize:   cfg.Specimen.Size,
		SpecimenGlyphs: cfg.Specimen.Glyphs,
	})
	if err != nil {
		return err
	}

	input := args[0]
	c.log.Infof("Opening font file: %s", input)

	font, err := loaders.NewSFNTLoader(cfg.CollectionIndex).Load(input)
	if err != nil {
		fmt.Fprintf(c.stdout, "Error opening font file %s!\n", input)

		return err
	}

	c.log.Infof("Loaded font: %s (%d glyphs, %d mapped)", font.DisplayName(), len(font.Glyphs), len(font.Mapped()))

	output := OutputPath(input, exporter.Extension())
	c.log.Infof("Generating %s...", exporter.Format())

	if err := generate(exporter, font, output); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	c.log.Infof("Successfully created: %s", output)

	return nil
}

func generate(exporter domain.Exporter, font *domain.Font, path string) (err error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	defer func() {
		if cerr := outputFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return exporter.Export(font, outputFile)
}

// OutputPath replaces the final extension of input with ext. Only the last
// path element is considered, and leading dots do not start an extension.
func OutputPath(input, ext string) string {
	return stem(input) + ext
}

func stem(path string) string {
	start := 0

	for i := len(path) - 1; i >= 0; i-- {
		if os.IsPathSeparator(path[i]) {
			start = i + 1

			break
		}
	}

	dot := strings.LastIndexByte(path[start:], '.')
	if dot < 0 {
		return path
	}

	dot += start

	for i := start; i < dot; i++ {
		if path[i] != '.' {
			return path[:dot]
		}
	}

	return path
}
