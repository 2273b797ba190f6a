package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// printer writes user-facing status lines.
type printer struct {
	env     *Environment
	quiet   bool
	verbose bool
	ok      *color.Color
	fail    *color.Color
	warn    *color.Color
}

func newPrinter(env *Environment, quiet, verbose bool) *printer {
	p := &printer{
		env:     env,
		quiet:   quiet,
		verbose: verbose,
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.ok, p.fail, p.warn} {
		if env.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// infof prints to stdout unless quiet.
func (p *printer) infof(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.env.Stdout, format+"\n", args...)
}

// warnf prints a warning to stderr.
func (p *printer) warnf(format string, args ...any) {
	fmt.Fprintf(p.env.Stderr, "%s %s\n", p.warn.Sprint("warning:"), fmt.Sprintf(format, args...))
}

// results prints one line per result and a summary for batches.
// It returns the number of failures.
func (p *printer) results(results []ConversionResult) int {
	summary := countResults(results)
	batch := len(results) > 1

	for _, r := range results {
		if r.Err != nil {
			// A lone failure is reported by the caller's error.
			if batch {
				fmt.Fprintf(p.env.Stderr, "%s %s: %v\n", p.fail.Sprint("FAILED"), r.InputPath, r.Err)
			}
			continue
		}
		if p.verbose {
			p.infof("%s %s -> %s (%v)", p.ok.Sprint("HTML written"), r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			p.infof("%s to %s", p.ok.Sprint("HTML written"), r.OutputPath)
		}
	}

	if batch {
		p.infof("\n%d succeeded, %d failed", summary.Succeeded, summary.Failed)
	}
	return summary.Failed
}
