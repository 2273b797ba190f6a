package mdviewer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdviewer/internal/fileutil"
)

// FileOptions controls ConvertFile.
type FileOptions struct {
	// OutputPath is the HTML file to write. Empty derives it from the input
	// path by replacing the extension with .html.
	OutputPath string

	// Title overrides the page title. Empty uses the input file's base name
	// without extension.
	Title string

	// PreferHeading uses the first heading as title when the document has
	// one, keeping Title (or the file name) as fallback.
	PreferHeading bool

	// Style overrides the converter's style for this file.
	Style *StyleOptions
}

// ConversionSummary describes a converted file.
type ConversionSummary struct {
	InputPath  string // Absolute input path
	OutputPath string // Absolute output path
	Title      string
	HTML       string
	Duration   time.Duration
}

// ConvertFile reads a Markdown file, renders it and writes the page
// atomically. Relative links are rebased when the output directory differs
// from the input's.
func (c *Converter) ConvertFile(ctx context.Context, inputPath string, opts FileOptions) (*ConversionSummary, error) {
	start := time.Now()

	absInput, err := filepath.Abs(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if !fileutil.FileExists(absInput) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, absInput)
	}

	content, err := os.ReadFile(absInput) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = fileutil.DeriveHTMLPath(absInput)
	}
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	title := opts.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(absInput), filepath.Ext(absInput))
	}

	input := Input{
		Markdown:  string(content),
		Title:     title,
		Style:     opts.Style,
		SourceDir: filepath.Dir(absInput),
		OutputDir: filepath.Dir(absOutput),
	}
	if opts.PreferHeading {
		input.Title, input.FallbackTitle = "", title
	}

	result, err := c.Convert(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := fileutil.WriteFileAtomic(absOutput, result.HTML); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	summary := &ConversionSummary{
		InputPath:  absInput,
		OutputPath: absOutput,
		Title:      result.Title,
		HTML:       result.HTML,
		Duration:   time.Since(start),
	}
	c.logger.DebugContext(ctx, "wrote document",
		slog.String("input", absInput),
		slog.String("output", absOutput),
		slog.Duration("duration", summary.Duration),
	)
	return summary, nil
}
