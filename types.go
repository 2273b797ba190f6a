package mdviewer

import (
	"log/slog"

	"github.com/alnah/go-mdviewer/internal/pipeline"
	"github.com/alnah/go-mdviewer/internal/style"
)

// DefaultTitle is used when no title is given and the document has no heading.
const DefaultTitle = "Markdown Document"

// Engine names.
const (
	EngineBasic    = pipeline.EngineBasic
	EngineGoldmark = pipeline.EngineGoldmark
)

// Engines lists the accepted engine names, default first.
func Engines() []string {
	return append([]string(nil), pipeline.Engines...)
}

// StyleOptions is a sparse set of style overrides. Empty fields keep the defaults.
type StyleOptions = style.Options

// Width is a CSS length given as pixels or as a literal length string.
type Width = style.Width

// Pixels returns a Width of n pixels.
func Pixels(n float64) Width { return style.Pixels(n) }

// Length returns a Width holding a literal CSS length such as "50%".
func Length(s string) Width { return style.Length(s) }

// Input contains the document and per-conversion settings.
type Input struct {
	Markdown string // Markdown content

	// Title overrides the detected title when non-empty.
	Title string

	// FallbackTitle replaces DefaultTitle when there is neither a Title nor
	// a heading.
	FallbackTitle string

	// Style overrides the converter's style for this conversion.
	// Nil uses the converter's style.
	Style *StyleOptions

	// SourceDir and OutputDir rebase relative links when they differ.
	// Either may be empty to disable rebasing.
	SourceDir string
	OutputDir string
}

// ConvertResult is a rendered page.
type ConvertResult struct {
	HTML          string // Complete HTML document
	Title         string // Title placed in <title>
	DetectedTitle string // Plain text of the first heading, empty if none
}

// converterConfig holds construction-time settings.
type converterConfig struct {
	engine    string
	assetPath string
	loader    AssetLoader
	style     StyleOptions
	logger    *slog.Logger
}

// Option configures a Converter.
type Option func(*converterConfig)

// WithEngine selects the Markdown engine (EngineBasic or EngineGoldmark).
func WithEngine(name string) Option {
	return func(c *converterConfig) {
		c.engine = name
	}
}

// WithAssetPath loads templates and stylesheets from dir, falling back to
// the built-in assets for missing files.
func WithAssetPath(dir string) Option {
	return func(c *converterConfig) {
		c.assetPath = dir
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(l AssetLoader) Option {
	return func(c *converterConfig) {
		c.loader = l
	}
}

// WithStyle sets the default style overrides. The options are copied.
func WithStyle(opts StyleOptions) Option {
	return func(c *converterConfig) {
		c.style = opts
	}
}

// WithLogger sets the logger for diagnostics. Nil discards them.
func WithLogger(l *slog.Logger) Option {
	return func(c *converterConfig) {
		c.logger = l
	}
}
