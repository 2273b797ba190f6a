package mdviewer

import (
	"errors"

	"github.com/alnah/go-mdviewer/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrInputNotFound  = errors.New("input file not found")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrUnknownEngine  = pipeline.ErrUnknownEngine

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrInvalidTemplate  = errors.New("invalid template")
)
