package style

import "strings"

// DefaultContainerMaxWidth is used when no usable width override is given.
const DefaultContainerMaxWidth = "960px"

// Resolved binds every style key to a concrete value.
// CustomCSS may be empty.
type Resolved struct {
	AccentColor         string
	BackgroundColor     string
	BackgroundGradient  string
	BaseFontFamily      string
	CodeBlockBackground string
	CodeBlockText       string
	ContainerMaxWidth   string
	CustomCSS           string
}

// Defaults returns the built-in style. Each call returns a fresh copy.
func Defaults() Resolved {
	return Resolved{
		AccentColor:         "#2563eb",
		BackgroundColor:     "#f4f4f5",
		BackgroundGradient:  "radial-gradient(circle at top, #ffffff 0%, #f4f4f5 45%, #e4e4e7 100%)",
		BaseFontFamily:      "'Segoe UI', Roboto, Helvetica, Arial, sans-serif",
		CodeBlockBackground: "#0f172a",
		CodeBlockText:       "#e2e8f0",
		ContainerMaxWidth:   DefaultContainerMaxWidth,
	}
}

// Resolve merges opts over Defaults. A nil opts yields the defaults.
func Resolve(opts *Options) Resolved {
	r := Defaults()
	if opts == nil {
		return r
	}

	r.AccentColor = pick(opts.AccentColor, r.AccentColor)
	r.BackgroundColor = pick(opts.BackgroundColor, r.BackgroundColor)
	r.BackgroundGradient = pick(opts.BackgroundGradient, r.BackgroundGradient)
	r.BaseFontFamily = pick(opts.BaseFontFamily, r.BaseFontFamily)
	r.CodeBlockBackground = pick(opts.CodeBlockBackground, r.CodeBlockBackground)
	r.CodeBlockText = pick(opts.CodeBlockText, r.CodeBlockText)
	if opts.ContainerMaxWidth.IsSet() {
		r.ContainerMaxWidth = opts.ContainerMaxWidth.String()
	}
	r.CustomCSS = strings.TrimSpace(opts.CustomCSS)

	return r
}

func pick(override, fallback string) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	return fallback
}
