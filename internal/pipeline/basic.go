package pipeline

import (
	"context"

	"github.com/alnah/go-mdviewer/internal/markdown"
)

// BasicConverter renders with the built-in block scanner. It never fails
// except on a cancelled context.
type BasicConverter struct{}

// NewBasicConverter creates a BasicConverter.
func NewBasicConverter() *BasicConverter {
	return &BasicConverter{}
}

// ToHTML renders content into a fragment.
func (c *BasicConverter) ToHTML(ctx context.Context, content string) (Fragment, error) {
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}
	body, title := markdown.Render(content)
	return Fragment{Body: body, Title: title}, nil
}

// Compile-time interface check.
var _ HTMLConverter = (*BasicConverter)(nil)
