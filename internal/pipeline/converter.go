package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// ErrUnknownEngine indicates an engine name that NewConverter does not know.
var ErrUnknownEngine = errors.New("unknown engine")

// Engine names accepted by NewConverter.
const (
	EngineBasic    = "basic"
	EngineGoldmark = "goldmark"
)

// Engines lists the accepted engine names, default first.
var Engines = []string{EngineBasic, EngineGoldmark}

// Fragment is the rendered body of a document and the plain text of its
// first non-empty heading. Title is empty when no heading was found.
type Fragment struct {
	Body  string
	Title string
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (Fragment, error)
}

// NewConverter returns the converter for an engine name.
// An empty name selects EngineBasic.
func NewConverter(engine string) (HTMLConverter, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineBasic:
		return NewBasicConverter(), nil
	case EngineGoldmark:
		return NewGoldmarkConverter(), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownEngine, engine, strings.Join(Engines, ", "))
	}
}
