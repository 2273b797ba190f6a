package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdviewer [flags] <file.md|dir|glob>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown to a styled HTML page and open it in the browser.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --out <path>          Output file (single input) or directory")
	fmt.Fprintln(w, "      --no-open             Do not open the result in a browser")
	fmt.Fprintln(w, "  -c, --config <path>       Config file (default: search mdviewer.config.json)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --title <s>           Page title (default: file name)")
	fmt.Fprintln(w, "      --heading-title       Use the first heading as title when present")
	fmt.Fprintln(w, "      --engine <name>       Markdown engine: basic, goldmark")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/ and templates/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --debug               Log diagnostics to stderr")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  mdviewer README.md")
	fmt.Fprintln(w, "  mdviewer README.md --out output.html --no-open")
	fmt.Fprintln(w, "  mdviewer 'docs/**/*.md' -o site --no-open")
}
