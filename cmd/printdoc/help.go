package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: printdoc [flags] <document.yaml|json|dir>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render print documents to self-contained HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  document    YAML or JSON file: a list of lines, or a mapping with")
	fmt.Fprintln(w, "              \"lines\" and optional \"options\". Directories are scanned")
	fmt.Fprintln(w, "              for .yaml, .yml and .json files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: beside input)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -p, --preview             Add Cancel/Print preview controls")
	fmt.Fprintln(w, "      --title <s>           Document title (default: \"Print Preview\")")
	fmt.Fprintln(w, "      --document-id <s>     Document identifier (default: generated)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>        Baseline style name (default: \"default\")")
	fmt.Fprintln(w, "      --stylesheet <path>   Extra CSS file")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory (styles/, scripts/)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Debug logging and timing")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
