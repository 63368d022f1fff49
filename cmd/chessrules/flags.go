// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

var (
	// Position
	fenString = flag.String("fen", engine.InitialFEN, "Starting position in FEN")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Print a board diagram with text output")
	fenComments  = flag.Bool("fencomments", false, "Add FEN comment after each played move")

	// Perft options
	depth       = flag.Int("depth", 1, "Perft depth in plies")
	divide      = flag.Bool("divide", false, "Show the perft count below each root move")
	workers     = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	hashEntries = flag.Int("hash", 0, "Perft subtree cache entries (0 = off, -1 = unlimited)")
	crossCheck  = flag.String("crosscheck", "", "Compare perft with these move generators (comma-separated: dragontooth, goose, notnil, all)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("verbosity", 1, "Diagnostic detail: 0=none, 1=summary, 2=every move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)

	cfg.FEN = *fenString
	cfg.OutputFilename = *outputFile
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSONFormat
	} else {
		cfg.Output.Format = config.TextFormat
	}
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowFEN = *fenComments
}

// applyPerftFlags configures perft and cross-checking.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.HashEntries = *hashEntries
	cfg.Perft.Oracles = splitList(*crossCheck)
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
