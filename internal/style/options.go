package style

import "strings"

// Options is a sparse set of style overrides. Empty fields fall back to the
// defaults at resolution time.
type Options struct {
	AccentColor         string `yaml:"accentColor"`
	BackgroundColor     string `yaml:"backgroundColor"`
	BackgroundGradient  string `yaml:"backgroundGradient"`
	BaseFontFamily      string `yaml:"baseFontFamily"`
	CodeBlockBackground string `yaml:"codeBlockBackground"`
	CodeBlockText       string `yaml:"codeBlockText"`
	ContainerMaxWidth   Width  `yaml:"containerMaxWidth"`
	CustomCSS           string `yaml:"customCss"`
}

// Recognized keys, as they appear in configuration files.
const (
	KeyAccentColor         = "accentColor"
	KeyBackgroundColor     = "backgroundColor"
	KeyBackgroundGradient  = "backgroundGradient"
	KeyBaseFontFamily      = "baseFontFamily"
	KeyCodeBlockBackground = "codeBlockBackground"
	KeyCodeBlockText       = "codeBlockText"
	KeyContainerMaxWidth   = "containerMaxWidth"
	KeyCustomCSS           = "customCss"
)

// FromMap builds Options from a decoded configuration mapping.
// Unknown keys are ignored. String keys holding a non-string or blank value
// are ignored as well, so a malformed entry never hides a default.
func FromMap(m map[string]any) Options {
	var o Options
	for key, dst := range o.stringFields() {
		if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
			*dst = s
		}
	}
	if w, ok := ParseWidth(m[KeyContainerMaxWidth]); ok {
		o.ContainerMaxWidth = w
	}
	return o
}

// IsZero reports whether no override is set.
func (o Options) IsZero() bool {
	return o == Options{}
}

func (o *Options) stringFields() map[string]*string {
	return map[string]*string{
		KeyAccentColor:         &o.AccentColor,
		KeyBackgroundColor:     &o.BackgroundColor,
		KeyBackgroundGradient:  &o.BackgroundGradient,
		KeyBaseFontFamily:      &o.BaseFontFamily,
		KeyCodeBlockBackground: &o.CodeBlockBackground,
		KeyCodeBlockText:       &o.CodeBlockText,
		KeyCustomCSS:           &o.CustomCSS,
	}
}
