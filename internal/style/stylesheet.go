package style

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/alnah/go-mdviewer/internal/assets"
)

// ErrInvalidTemplate indicates a stylesheet template failed to parse or execute.
var ErrInvalidTemplate = errors.New("invalid stylesheet template")

// Template renders a Resolved style into CSS.
type Template struct {
	tmpl *template.Template
}

var defaultTemplate = mustDefaultTemplate()

func mustDefaultTemplate() *Template {
	src, err := assets.NewEmbeddedLoader().LoadStyle(assets.DefaultStyleName)
	if err != nil {
		panic(err)
	}
	t, err := ParseTemplate(src)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTemplate parses a stylesheet template. Fields of Resolved are
// available as {{.AccentColor}} and so on.
func ParseTemplate(src string) (*Template, error) {
	tmpl, err := template.New("stylesheet").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Execute interpolates r into the template and appends r.CustomCSS on its
// own line when present.
func (t *Template) Execute(r Resolved) (string, error) {
	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, r); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	if r.CustomCSS != "" {
		sb.WriteString("\n")
		sb.WriteString(r.CustomCSS)
	}
	return sb.String(), nil
}

// Stylesheet composes the built-in stylesheet for r.
func (r Resolved) Stylesheet() string {
	css, err := defaultTemplate.Execute(r)
	if err != nil {
		// The embedded template only references Resolved fields.
		panic(err)
	}
	return css
}
