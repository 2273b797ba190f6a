package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPrinter_Results(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md", OutputPath: "a.html", Duration: 3 * time.Millisecond},
		{InputPath: "b.md", Err: errors.New("boom")},
	}

	tests := []struct {
		name       string
		quiet      bool
		verbose    bool
		wantStdout []string
		noStdout   bool
	}{
		{name: "normal", wantStdout: []string{"HTML written to a.html", "1 succeeded, 1 failed"}},
		{name: "verbose", verbose: true, wantStdout: []string{"HTML written a.md -> a.html (3ms)"}},
		{name: "quiet", quiet: true, noStdout: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			p := newPrinter(&Environment{Stdout: &stdout, Stderr: &stderr}, tt.quiet, tt.verbose)

			if failed := p.results(results); failed != 1 {
				t.Errorf("failed = %d, want 1", failed)
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout = %q, want %q", stdout.String(), want)
				}
			}
			if tt.noStdout && stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
			if !strings.Contains(stderr.String(), "FAILED b.md: boom") {
				t.Errorf("stderr = %q", stderr.String())
			}
		})
	}
}

func TestPrinter_Color(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	p := newPrinter(&Environment{Stdout: &stdout, Stderr: &bytes.Buffer{}, Color: true}, false, false)
	p.results([]ConversionResult{{InputPath: "a.md", OutputPath: "a.html"}})

	if !strings.Contains(stdout.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", stdout.String())
	}
}
