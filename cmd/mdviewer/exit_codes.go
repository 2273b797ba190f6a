package main

import (
	"errors"

	mdviewer "github.com/alnah/go-mdviewer"
	"github.com/alnah/go-mdviewer/internal/config"
)

// Exit codes for the mdviewer CLI.
const (
	ExitSuccess       = 0 // Page written
	ExitUsage         = 1 // Missing input or invalid flags
	ExitInputNotFound = 2 // Input file, directory or glob matched nothing
	ExitConversion    = 3 // Reading, rendering or writing failed
	ExitUnexpected    = 4 // Anything else, including interruption
	ExitConfig        = 5 // Configuration could not be loaded or applied
)

// exitCodeFor returns the exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, mdviewer.ErrInputNotFound):
		return ExitInputNotFound
	case errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrConfigShape),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, mdviewer.ErrUnknownEngine),
		errors.Is(err, mdviewer.ErrInvalidAssetPath),
		errors.Is(err, mdviewer.ErrStyleNotFound),
		errors.Is(err, mdviewer.ErrTemplateNotFound),
		errors.Is(err, mdviewer.ErrInvalidTemplate):
		return ExitConfig
	case errors.Is(err, ErrConversionFailed),
		errors.Is(err, mdviewer.ErrReadInput),
		errors.Is(err, mdviewer.ErrHTMLConversion),
		errors.Is(err, mdviewer.ErrWriteOutput):
		return ExitConversion
	default:
		return ExitUnexpected
	}
}
