// Package config loads mdviewer configuration files.
//
// A configuration file is a JSON or YAML document named mdviewer.config.json
// (or .yaml/.yml) with an optional "style" mapping. Unknown keys are ignored.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdviewer/internal/fileutil"
	"github.com/alnah/go-mdviewer/internal/style"
	"github.com/alnah/go-mdviewer/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigShape    = errors.New("invalid config structure")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// File naming.
const (
	FileBaseName = "mdviewer.config"
	AppDirName   = "mdviewer"
)

// Extensions are tried in order for every search directory.
var Extensions = []string{".json", ".yaml", ".yml"}

// Field length limits.
const (
	MaxColorLength     = 100     // "#2563eb", "rgb(...)", named colors
	MaxGradientLength  = 500     // radial/linear gradient expressions
	MaxFontLength      = 500     // font-family stacks
	MaxWidthLength     = 50      // "960px", "min(90vw, 72ch)"
	MaxCustomCSSLength = 1 << 16 // free-form stylesheet
	MaxEngineLength    = 20
	MaxPathLength      = 4096
)

// Config holds all configuration for a conversion run.
type Config struct {
	Style style.Options

	// Engine selects the renderer ("basic" or "goldmark"). Empty uses the default.
	Engine string

	// AssetPath overrides the embedded templates and stylesheets.
	AssetPath string
}

// Default returns an empty configuration.
func Default() *Config {
	return &Config{}
}

// Clone returns an independent copy. A nil receiver yields Default.
func (c *Config) Clone() *Config {
	if c == nil {
		return Default()
	}
	cp := *c
	return &cp
}

// Validate checks field lengths.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"style.accentColor", c.Style.AccentColor, MaxColorLength},
		{"style.backgroundColor", c.Style.BackgroundColor, MaxColorLength},
		{"style.backgroundGradient", c.Style.BackgroundGradient, MaxGradientLength},
		{"style.baseFontFamily", c.Style.BaseFontFamily, MaxFontLength},
		{"style.codeBlockBackground", c.Style.CodeBlockBackground, MaxColorLength},
		{"style.codeBlockText", c.Style.CodeBlockText, MaxColorLength},
		{"style.containerMaxWidth", c.Style.ContainerMaxWidth.String(), MaxWidthLength},
		{"style.customCss", c.Style.CustomCSS, MaxCustomCSSLength},
		{"engine", c.Engine, MaxEngineLength},
		{"assetPath", c.AssetPath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Parse decodes and validates configuration data. The root and the "style"
// entry must be mappings; everything else is read leniently: entries with
// the wrong type are ignored.
func Parse(data []byte) (*Config, error) {
	root, err := yamlutil.UnmarshalMapping(data)
	if err != nil {
		if errors.Is(err, yamlutil.ErrNotMapping) {
			return nil, fmt.Errorf("%w: configuration root must be an object", ErrConfigShape)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := Default()
	if raw, present := root["style"]; present {
		m, ok := yamlutil.AsMapping(raw)
		if !ok {
			return nil, fmt.Errorf("%w: the \"style\" section must be an object", ErrConfigShape)
		}
		cfg.Style = style.FromMap(m)
	}
	if s, ok := root["engine"].(string); ok {
		cfg.Engine = strings.TrimSpace(s)
	}
	if s, ok := root["assetPath"].(string); ok {
		cfg.AssetPath = strings.TrimSpace(s)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Loaded is a configuration and the file it came from.
// Path is empty when no file was found and defaults are in use.
type Loaded struct {
	Config *Config
	Path   string
}

// Load reads the first configuration file found.
//
// If explicitPath is set it must exist (no silent fallback). Otherwise each
// directory of searchDirs is tried in order with every extension of
// Extensions. When nothing is found, Load returns the defaults and no error.
func Load(explicitPath string, searchDirs []string) (*Loaded, error) {
	if explicitPath != "" {
		return loadFile(explicitPath)
	}

	for _, candidate := range Candidates(searchDirs) {
		if fileutil.FileExists(candidate) {
			return loadFile(candidate)
		}
	}
	return &Loaded{Config: Default()}, nil
}

func loadFile(path string) (*Loaded, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	data, err := os.ReadFile(abs) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, abs)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", abs, err)
	}

	// A relative asset path is relative to the config file.
	if cfg.AssetPath != "" && !filepath.IsAbs(cfg.AssetPath) {
		cfg.AssetPath = filepath.Join(filepath.Dir(abs), cfg.AssetPath)
	}

	return &Loaded{Config: cfg, Path: abs}, nil
}

// Candidates returns the files Load tries for searchDirs, in order, without
// duplicates.
func Candidates(searchDirs []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, dir := range searchDirs {
		if dir == "" {
			continue
		}
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		for _, ext := range Extensions {
			p := filepath.Join(dir, FileBaseName+ext)
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// DefaultSearchDirs returns the standard search directories: the executable's
// directory, extra, the user config directory and the working directory.
// Directories that cannot be determined are skipped.
func DefaultSearchDirs(extra ...string) []string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dirs = append(dirs, filepath.Dir(exe))
	}
	dirs = append(dirs, extra...)
	if ucd, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(ucd, AppDirName))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	return dirs
}
