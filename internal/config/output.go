package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat selects how reports are rendered.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // Human-readable text
	JSONFormat                     // One JSON document per report
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSONFormat {
		return "json"
	}
	return "text"
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	default:
		return TextFormat, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
	}
}

// MinLineLength is the narrowest line the text writer will wrap to.
const MinLineLength = 20

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// MaxLineLength is the wrap width for move lists in text output
	MaxLineLength uint

	// ShowBoard prints a board diagram with text reports
	ShowBoard bool

	// ShowFEN includes the FEN after every played move
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        TextFormat,
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < MinLineLength {
		return fmt.Errorf("line length %d below minimum %d: %w",
			o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
