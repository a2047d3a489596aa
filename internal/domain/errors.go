package domain

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when no exporter handles a format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// OpenError reports that a font file could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open font %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
