package mdviewer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alnah/go-mdviewer/internal/assets"
	"github.com/alnah/go-mdviewer/internal/document"
	mdrender "github.com/alnah/go-mdviewer/internal/markdown"
	"github.com/alnah/go-mdviewer/internal/pipeline"
	"github.com/alnah/go-mdviewer/internal/style"
)

// Converter renders Markdown into complete HTML pages.
// Create with NewConverter. A Converter is safe for concurrent use.
type Converter struct {
	engineName string
	engine     pipeline.HTMLConverter
	assembler  *document.Assembler
	style      StyleOptions
	logger     *slog.Logger
}

// NewConverter creates a Converter. Without options it uses the basic engine,
// the built-in assets and the default style.
// Returns error if the engine is unknown or asset loading fails.
func NewConverter(opts ...Option) (*Converter, error) {
	var cfg converterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	engine, err := pipeline.NewConverter(cfg.engine)
	if err != nil {
		return nil, err
	}

	var loader assets.AssetLoader = assets.NewEmbeddedLoader()
	switch {
	case cfg.loader != nil:
		loader = cfg.loader
	case cfg.assetPath != "":
		resolver, err := assets.NewAssetResolver(cfg.assetPath)
		if err != nil {
			return nil, convertAssetError(err)
		}
		loader = resolver
	}

	assembler, err := document.NewAssembler(loader)
	if err != nil {
		return nil, convertAssetError(err)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	engineName := strings.ToLower(strings.TrimSpace(cfg.engine))
	if engineName == "" {
		engineName = EngineBasic
	}

	return &Converter{
		engineName: engineName,
		engine:     engine,
		assembler:  assembler,
		style:      cfg.style,
		logger:     logger,
	}, nil
}

// Engine returns the name of the Markdown engine in use.
func (c *Converter) Engine() string {
	return c.engineName
}

// Convert renders input into a complete HTML page.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	frag, err := c.engine.ToHTML(ctx, input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	body := frag.Body
	if input.SourceDir != "" && input.OutputDir != "" {
		body, err = pipeline.RewriteRelativePaths(body, input.SourceDir, input.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	// Copy so the caller's options are never shared with the resolver.
	opts := c.style
	if input.Style != nil {
		opts = *input.Style
	}
	resolved := style.Resolve(&opts)

	title := ResolveTitle(input.Title, frag.Title)
	if input.Title == "" && frag.Title == "" && input.FallbackTitle != "" {
		title = input.FallbackTitle
	}
	page, err := c.assembler.Build(title, body, resolved)
	if err != nil {
		return nil, convertAssetError(err)
	}

	c.logger.DebugContext(ctx, "rendered document",
		slog.String("engine", c.engineName),
		slog.String("title", title),
		slog.Int("markdown_bytes", len(input.Markdown)),
		slog.Int("html_bytes", len(page)),
	)

	return &ConvertResult{
		HTML:          page,
		Title:         title,
		DetectedTitle: frag.Title,
	}, nil
}

// ResolveTitle picks the page title: explicit when non-empty, then the
// detected heading, then DefaultTitle.
func ResolveTitle(explicit, detected string) string {
	if explicit != "" {
		return explicit
	}
	if detected != "" {
		return detected
	}
	return DefaultTitle
}

// RenderHTML renders markdown into a complete page with the built-in engine,
// assets and the given style (nil for defaults). It never fails.
func RenderHTML(markdown, title string, opts *StyleOptions) string {
	body, detected := mdrender.Render(markdown)
	resolved := style.Resolve(opts)
	page, err := document.Build(ResolveTitle(title, detected), body, resolved)
	if err != nil {
		// Built-in templates only reference fields that always exist.
		panic(err)
	}
	return page
}
