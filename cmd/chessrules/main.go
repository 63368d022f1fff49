// chessrules lists legal moves, plays move sequences and counts move trees
// for chess positions given in FEN.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := setupStreams(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg, flag.Args()))
}

// setupStreams points the log and report streams at the files named by
// -l, -L and -o. -L wins over -l.
func setupStreams(cfg *config.Config) error {
	switch {
	case *appendLog != "":
		f, err := openFile(*appendLog, true)
		if err != nil {
			return err
		}
		cfg.LogFile = f
	case *logFile != "":
		f, err := openFile(*logFile, false)
		if err != nil {
			return err
		}
		cfg.LogFile = f
	}

	if *outputFile != "" {
		f, err := openFile(*outputFile, *appendOutput)
		if err != nil {
			return err
		}
		cfg.SetOutput(f)
	}
	return nil
}

// openFile creates name, or opens it for appending.
func openFile(name string, appendTo bool) (*os.File, error) {
	var f *os.File
	var err error
	if appendTo {
		f, err = os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created files
	} else {
		f, err = os.Create(name)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return f, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] command [arguments]\n\n")
	fmt.Fprintf(os.Stderr, "Apply the rules of chess to a position given with -fen.\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  moves [square]   List legal moves, optionally for one piece\n")
	fmt.Fprintf(os.Stderr, "  play move...     Apply moves in coordinate notation (e2e4, e7e8n)\n")
	fmt.Fprintf(os.Stderr, "  perft            Count leaf nodes to -depth plies\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
}
