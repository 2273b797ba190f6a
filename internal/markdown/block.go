package markdown

import (
	"strconv"
	"strings"
)

// Block is one rendered unit of a document. The set of implementations is
// closed: Heading, Paragraph, List, Blockquote, CodeFence and ThematicBreak.
type Block interface {
	// HTML renders the block. Inline formatting is applied to text-bearing
	// blocks; CodeFence content is only escaped.
	HTML() string

	block()
}

// Heading is an ATX heading. Level is between 1 and 6.
type Heading struct {
	Level int
	Text  string
}

// Paragraph holds consecutive text lines joined by a single space.
type Paragraph struct {
	Text string
}

// List is a flat unordered list. Items keep source order.
type List struct {
	Items []string
}

// Blockquote holds consecutive quoted lines, markers stripped, joined by a
// single space.
type Blockquote struct {
	Text string
}

// CodeFence holds the raw lines between fence markers joined by \n.
type CodeFence struct {
	Code string
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

func (Heading) block()       {}
func (Paragraph) block()     {}
func (List) block()          {}
func (Blockquote) block()    {}
func (CodeFence) block()     {}
func (ThematicBreak) block() {}

func (h Heading) HTML() string {
	level := strconv.Itoa(h.Level)
	return "<h" + level + ">" + FormatInline(h.Text) + "</h" + level + ">"
}

func (p Paragraph) HTML() string {
	return "<p>" + FormatInline(p.Text) + "</p>"
}

func (l List) HTML() string {
	var b strings.Builder
	b.WriteString("<ul>\n")
	for _, item := range l.Items {
		b.WriteString("<li>")
		b.WriteString(FormatInline(item))
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>")
	return b.String()
}

func (q Blockquote) HTML() string {
	return "<blockquote>" + FormatInline(q.Text) + "</blockquote>"
}

func (c CodeFence) HTML() string {
	return "<pre><code>" + EscapeHTML(c.Code) + "</code></pre>"
}

func (ThematicBreak) HTML() string {
	return "<hr />"
}
