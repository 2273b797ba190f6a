// Package document assembles the final HTML page from a rendered body
// fragment, a title and a resolved style.
package document

import (
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-mdviewer/internal/assets"
	"github.com/alnah/go-mdviewer/internal/style"
)

// ErrInvalidTemplate indicates the document template failed to parse or execute.
var ErrInvalidTemplate = errors.New("invalid document template")

// Assembler renders pages with a parsed document template and stylesheet.
// It is safe for concurrent use.
type Assembler struct {
	page  *template.Template
	sheet *style.Template
}

// page is the data passed to the document template.
type page struct {
	Title      string
	Stylesheet template.CSS
	Body       template.HTML
}

// NewAssembler loads the document template and stylesheet from loader.
func NewAssembler(loader assets.AssetLoader) (*Assembler, error) {
	pageSrc, err := loader.LoadTemplate(assets.DocumentTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading document template: %w", err)
	}
	tmpl, err := template.New(assets.DocumentTemplateName).Parse(pageSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	styleSrc, err := loader.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return nil, fmt.Errorf("loading stylesheet: %w", err)
	}
	sheet, err := style.ParseTemplate(styleSrc)
	if err != nil {
		return nil, err
	}

	return &Assembler{page: tmpl, sheet: sheet}, nil
}

// Build wraps body in a complete HTML document. The title is escaped and the
// stylesheet is embedded in a <style> block.
func (a *Assembler) Build(title, body string, r style.Resolved) (string, error) {
	css, err := a.sheet.Execute(r)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	err = a.page.Execute(&sb, page{
		Title:      title,
		Stylesheet: template.CSS(sanitizeCSS(css)), // #nosec G203 -- closing tags escaped
		Body:       template.HTML(body),            // #nosec G203 -- renderer output is escaped
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return sb.String(), nil
}

var defaultAssembler = mustDefaultAssembler()

func mustDefaultAssembler() *Assembler {
	a, err := NewAssembler(assets.NewEmbeddedLoader())
	if err != nil {
		panic(err)
	}
	return a
}

// Build assembles a document with the built-in template and stylesheet.
func Build(title, body string, r style.Resolved) (string, error) {
	return defaultAssembler.Build(title, body, r)
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
