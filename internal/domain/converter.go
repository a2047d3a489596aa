package domain

import "io"

// Loader defines the interface for opening font files.
type Loader interface {
	// Load reads and parses the font at path.
	// Failures are reported as *OpenError.
	Load(path string) (*Font, error)
}

// Exporter defines the interface for font exporters.
type Exporter interface {
	// Export writes the font in the target format.
	Export(font *Font, output io.Writer) error

	// Format returns the output format name (e.g., "svg", "pdf").
	Format() string

	// Extension returns the file extension written, including the dot.
	Extension() string
}
