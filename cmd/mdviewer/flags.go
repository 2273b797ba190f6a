package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command lines.
var ErrUsage = errors.New("invalid usage")

// cliFlags holds all command-line flags.
type cliFlags struct {
	output       string
	noOpen       bool
	config       string
	title        string
	headingTitle bool
	engine       string
	assetPath    string
	workers      int
	quiet        bool
	verbose      bool
	debug        bool
	version      bool
	help         bool
}

// parseFlags parses args (without the program name) and returns the
// positional inputs.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdviewer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &cliFlags{}

	fs.StringVarP(&f.output, "out", "o", "", "output file (single input) or directory")
	fs.BoolVar(&f.noOpen, "no-open", false, "do not open the result in a browser")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVar(&f.title, "title", "", "page title (default: file name)")
	fs.BoolVar(&f.headingTitle, "heading-title", false, "use the first heading as title when present")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: basic, goldmark")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.debug, "debug", false, "log diagnostics to stderr")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if f.workers < 0 {
		return nil, nil, fmt.Errorf("%w: --workers must be >= 0, got %d", ErrUsage, f.workers)
	}
	if f.quiet && f.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	return f, fs.Args(), nil
}
