package main

import (
	"context"
	"errors"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	mdviewer "github.com/alnah/go-mdviewer"
)

// MaxWorkers caps automatic parallelism.
const MaxWorkers = 16

// ErrConversionFailed reports that at least one file of a batch failed.
var ErrConversionFailed = errors.New("conversion failed")

// FileConverter converts one Markdown file to an HTML file.
type FileConverter interface {
	ConvertFile(ctx context.Context, inputPath string, opts mdviewer.FileOptions) (*mdviewer.ConversionSummary, error)
}

// Compile-time interface implementation check.
var _ FileConverter = (*mdviewer.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Err        error
	Duration   time.Duration
}

// fileParams groups options shared by every file of a batch.
type fileParams struct {
	title        string
	headingTitle bool
}

// resolveWorkers returns the worker count for n files. Zero means automatic,
// based on GOMAXPROCS (adjusted by automaxprocs in containers).
func resolveWorkers(requested, n int) int {
	workers := requested
	if workers <= 0 {
		workers = min(runtime.GOMAXPROCS(0), MaxWorkers)
	}
	return max(1, min(workers, n))
}

// convertBatch converts files concurrently with at most workers in flight.
// Results keep the order of files.
func convertBatch(ctx context.Context, conv FileConverter, files []FileToConvert, params fileParams, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))
	var g errgroup.Group
	g.SetLimit(resolveWorkers(workers, len(files)))

	for i, f := range files {
		g.Go(func() error {
			results[i] = convertFile(ctx, conv, f, params)
			return nil
		})
	}
	_ = g.Wait() // per-file errors live in results

	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv FileConverter, f FileToConvert, params fileParams) ConversionResult {
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	summary, err := conv.ConvertFile(ctx, f.InputPath, mdviewer.FileOptions{
		OutputPath:    f.OutputPath,
		Title:         params.title,
		PreferHeading: params.headingTitle,
	})
	if err != nil {
		result.Err = err
		return result
	}

	result.OutputPath = summary.OutputPath
	result.Title = summary.Title
	result.Duration = summary.Duration
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}
