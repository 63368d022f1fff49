package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	cerrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != TextFormat {
		t.Errorf("Format = %v, want %v", cfg.Format, TextFormat)
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if cfg.ShowBoard {
		t.Error("ShowBoard should be false by default")
	}
	if cfg.ShowFEN {
		t.Error("ShowFEN should be false by default")
	}
}

// TestPerftConfig_Defaults verifies PerftConfig has sensible defaults
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 1 {
		t.Errorf("Depth = %d, want 1", cfg.Depth)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if cfg.Divide {
		t.Error("Divide should be false by default")
	}
	if len(cfg.Oracles) != 0 {
		t.Errorf("Oracles = %v, want none", cfg.Oracles)
	}
}

// TestConfig_Validate verifies validation of the whole configuration
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"deepest depth", func(c *Config) { c.Perft.Depth = MaxPerftDepth }, false},
		{"zero depth", func(c *Config) { c.Perft.Depth = 0 }, true},
		{"depth too large", func(c *Config) { c.Perft.Depth = MaxPerftDepth + 1 }, true},
		{"zero workers", func(c *Config) { c.Perft.Workers = 0 }, true},
		{"unlimited hash", func(c *Config) { c.Perft.HashEntries = -1 }, false},
		{"negative hash", func(c *Config) { c.Perft.HashEntries = -2 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"empty FEN", func(c *Config) { c.FEN = "" }, true},
		{"narrow lines", func(c *Config) { c.Output.MaxLineLength = MinLineLength - 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, cerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestParseOutputFormat verifies flag spellings of the output format
func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"text", TextFormat, false},
		{"", TextFormat, false},
		{"json", JSONFormat, false},
		{"pgn", TextFormat, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.in && tt.in != "" {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

// TestConfig_SubConfigs verifies that Config carries its sub-configs
func TestConfig_SubConfigs(t *testing.T) {
	cfg := NewConfig()

	if cfg.FEN != engine.InitialFEN {
		t.Errorf("FEN = %q, want the initial position", cfg.FEN)
	}
	if cfg.Output == nil || cfg.Perft == nil {
		t.Fatal("sub-configs should be initialised")
	}
	if cfg.Output.Format != TextFormat {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, TextFormat)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	logBuf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithJSONOutput(true).
		WithMaxLineLength(120).
		WithBoard(true).
		WithDepth(4).
		WithWorkers(3).
		WithDivide(true).
		WithHashEntries(1024).
		WithOracles("dragontooth", "notnil").
		WithLog(logBuf).
		WithVerbosity(2).
		Build()

	if cfg.FEN != "8/8/8/8/8/8/8/K6k w - - 0 1" {
		t.Errorf("FEN = %q", cfg.FEN)
	}
	if cfg.Output.Format != JSONFormat {
		t.Errorf("Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.Output.MaxLineLength)
	}
	if !cfg.Output.ShowBoard {
		t.Error("ShowBoard should be true")
	}
	if cfg.Perft.Depth != 4 || cfg.Perft.Workers != 3 || !cfg.Perft.Divide {
		t.Errorf("Perft = %+v, want depth 4, 3 workers, divide", *cfg.Perft)
	}
	if cfg.Perft.HashEntries != 1024 {
		t.Errorf("HashEntries = %d, want 1024", cfg.Perft.HashEntries)
	}
	if len(cfg.Perft.Oracles) != 2 {
		t.Errorf("Oracles = %v, want 2 names", cfg.Perft.Oracles)
	}
	if cfg.LogFile != logBuf {
		t.Error("WithLog did not set LogFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
