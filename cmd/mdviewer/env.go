package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/alnah/go-mdviewer/internal/browser"
	"github.com/alnah/go-mdviewer/internal/config"
)

// BrowserOpener shows a written page to the user.
type BrowserOpener interface {
	Open(path string) error
}

var _ BrowserOpener = (*browser.Opener)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	Opener     BrowserOpener
	SearchDirs func() []string // config search directories
	Color      bool            // colorize status words
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	fd := os.Stdout.Fd()
	return &Environment{
		Now:        time.Now,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Opener:     browser.New(),
		SearchDirs: func() []string { return config.DefaultSearchDirs() },
		Color:      os.Getenv("NO_COLOR") == "" && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)),
	}
}
