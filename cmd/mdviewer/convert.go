package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	mdviewer "github.com/alnah/go-mdviewer"
	"github.com/alnah/go-mdviewer/internal/config"
	"github.com/alnah/go-mdviewer/internal/hints"
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, inputs []string, flags *cliFlags, env *Environment, logger *slog.Logger) error {
	start := env.Now()
	out := newPrinter(env, flags.quiet, flags.verbose)

	if flags.engine != "" && !slices.Contains(mdviewer.Engines(), strings.ToLower(strings.TrimSpace(flags.engine))) {
		return fmt.Errorf("%w: unknown engine %q%s", ErrUsage, flags.engine, hints.ForEngine(mdviewer.Engines()))
	}

	// Inputs are checked before configuration, so a typo in the file name
	// is reported first.
	files, err := discoverFiles(inputs, flags.output)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.config, env, out)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	conv, err := mdviewer.NewConverter(
		mdviewer.WithEngine(cfg.Engine),
		mdviewer.WithAssetPath(cfg.AssetPath),
		mdviewer.WithStyle(cfg.Style),
		mdviewer.WithLogger(logger),
	)
	if err != nil {
		return converterError(err)
	}

	workers := resolveWorkers(flags.workers, len(files))
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Engine: %s, workers: %d, files: %d\n", conv.Engine(), workers, len(files))
	}

	results := convertBatch(ctx, conv, files, fileParams{
		title:        flags.title,
		headingTitle: flags.headingTitle,
	}, workers)

	failed := out.results(results)
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Done in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	if len(results) == 1 {
		r := results[0]
		if r.Err != nil {
			return conversionError(r.Err)
		}
		if !flags.noOpen {
			openResult(r.OutputPath, env, out)
		}
		return nil
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, failed, len(results))
	}
	return nil
}

// loadConfig loads the configuration file and reports where it came from.
func loadConfig(explicit string, env *Environment, out *printer) (*config.Config, error) {
	searchDirs := env.SearchDirs()
	loaded, err := config.Load(explicit, searchDirs)
	if err != nil {
		var hint string
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			hint = hints.ForConfigNotFound(config.Candidates(searchDirs))
		case errors.Is(err, config.ErrConfigShape):
			hint = hints.ForConfigShape()
		}
		return nil, fmt.Errorf("failed to load configuration: %w%s", err, hint)
	}
	if loaded.Path != "" {
		out.infof("Using configuration from %s", loaded.Path)
	}
	// The loaded value is shared by every file of the batch.
	return loaded.Config.Clone(), nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.engine != "" {
		cfg.Engine = flags.engine
	}
	if flags.assetPath != "" {
		cfg.AssetPath = flags.assetPath
	}
}

// converterError appends hints to converter construction errors.
func converterError(err error) error {
	switch {
	case errors.Is(err, mdviewer.ErrUnknownEngine):
		return fmt.Errorf("%w%s", err, hints.ForEngine(mdviewer.Engines()))
	case errors.Is(err, mdviewer.ErrInvalidAssetPath),
		errors.Is(err, mdviewer.ErrStyleNotFound),
		errors.Is(err, mdviewer.ErrTemplateNotFound):
		return fmt.Errorf("%w%s", err, hints.ForAssetPath())
	default:
		return err
	}
}

// conversionError formats the failure of a single-file run.
func conversionError(err error) error {
	var hint string
	if errors.Is(err, mdviewer.ErrWriteOutput) {
		hint = hints.ForOutputDirectory()
	}
	if errors.Is(err, mdviewer.ErrInputNotFound) {
		return fmt.Errorf("input file not found: %w", err)
	}
	return fmt.Errorf("failed to convert Markdown: %w%s", err, hint)
}

// openResult opens path in the browser. Failures are reported as warnings;
// the page has been written either way.
func openResult(path string, env *Environment, out *printer) {
	out.infof("Opening HTML in default browser...")
	if err := env.Opener.Open(path); err != nil {
		out.warnf("%v%s", err, hints.ForBrowserOpen())
	}
}
