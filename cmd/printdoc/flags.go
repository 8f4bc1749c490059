package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config     string
	output     string
	preview    bool
	documentID string
	styleSheet string
	style      string
	title      string
	assetPath  string
	workers    int
	quiet      bool
	verbose    bool
	version    bool
	help       bool
}

// parseFlags parses args (without the program name) and returns the
// positional document paths.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("printdoc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	// I/O flags
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Document flags
	fs.BoolVarP(&f.preview, "preview", "p", false, "add print preview controls")
	fs.StringVar(&f.documentID, "document-id", "", "document identifier (default: generated)")
	fs.StringVar(&f.styleSheet, "stylesheet", "", "extra CSS file embedded after the baseline style")
	fs.StringVar(&f.style, "style", "", "baseline style name")
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")

	// Output control
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging and timing")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
