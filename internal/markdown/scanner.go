package markdown

import (
	"regexp"
	"strings"
)

// lineKind is the classification of a single source line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineFence
	lineHeading
	lineListItem
	lineQuote
	lineThematicBreak
	lineText
)

// space matches the Unicode whitespace set recognized after block markers,
// which is wider than the ASCII-only \s class of package regexp.
const space = `[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]`

var (
	headingLine  = regexp.MustCompile(`^(#{1,6})` + space + `+(.*)$`)
	listItemLine = regexp.MustCompile(`^[*-]` + space + `+`)
	quoteMarker  = regexp.MustCompile(`^>` + space + `?`)
)

const fenceMarker = "```"

// classify returns the kind of line. Rules are checked in a fixed order and
// the first match wins, so "* * *" is a list item, not a thematic break.
func classify(line string) lineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return lineBlank
	case strings.HasPrefix(trimmed, fenceMarker):
		return lineFence
	case headingLine.MatchString(line):
		return lineHeading
	case listItemLine.MatchString(line):
		return lineListItem
	case strings.HasPrefix(line, ">"):
		return lineQuote
	case isThematicBreak(trimmed):
		return lineThematicBreak
	default:
		return lineText
	}
}

// isThematicBreak reports whether s is three or more repetitions of the
// same character among '*', '-' and '_'.
func isThematicBreak(s string) bool {
	if len(s) < 3 {
		return false
	}
	switch s[0] {
	case '*', '-', '_':
	default:
		return false
	}
	return strings.Count(s, s[:1]) == len(s)
}

// Document is the parsed form of a Markdown source.
type Document struct {
	Blocks []Block

	// Title is the plain text of the first heading with a non-empty
	// stripped form, or "" when there is none.
	Title string
}

// HTML renders all blocks joined by newlines.
func (d *Document) HTML() string {
	parts := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		parts[i] = b.HTML()
	}
	return strings.Join(parts, "\n")
}

// Parse scans source into blocks. It never fails: every line is classified
// into exactly one kind.
func Parse(source string) *Document {
	lines := SplitLines(source)
	doc := &Document{}

	for i := 0; i < len(lines); {
		var b Block
		switch classify(lines[i]) {
		case lineBlank:
			i++
			continue
		case lineFence:
			b, i = consumeFence(lines, i)
		case lineHeading:
			var h Heading
			h, i = consumeHeading(lines, i)
			if doc.Title == "" {
				doc.Title = StripInline(h.Text)
			}
			b = h
		case lineListItem:
			b, i = consumeList(lines, i)
		case lineQuote:
			b, i = consumeBlockquote(lines, i)
		case lineThematicBreak:
			b, i = ThematicBreak{}, i+1
		default:
			b, i = consumeParagraph(lines, i)
		}
		doc.Blocks = append(doc.Blocks, b)
	}

	return doc
}

// Render parses source and returns the body HTML and the detected title.
func Render(source string) (body, title string) {
	doc := Parse(source)
	return doc.HTML(), doc.Title
}

// consumeFence collects lines up to the closing fence or end of input.
// Neither marker line is part of the content.
func consumeFence(lines []string, start int) (CodeFence, int) {
	i := start + 1
	var code []string
	for i < len(lines) && classify(lines[i]) != lineFence {
		code = append(code, lines[i])
		i++
	}
	if i < len(lines) {
		i++
	}
	return CodeFence{Code: strings.Join(code, "\n")}, i
}

func consumeHeading(lines []string, start int) (Heading, int) {
	m := headingLine.FindStringSubmatch(lines[start])
	return Heading{Level: len(m[1]), Text: strings.TrimSpace(m[2])}, start + 1
}

func consumeList(lines []string, start int) (List, int) {
	var items []string
	i := start
	for i < len(lines) && listItemLine.MatchString(lines[i]) {
		items = append(items, listItemLine.ReplaceAllString(lines[i], ""))
		i++
	}
	return List{Items: items}, i
}

func consumeBlockquote(lines []string, start int) (Blockquote, int) {
	var parts []string
	i := start
	for i < len(lines) && strings.HasPrefix(lines[i], ">") {
		parts = append(parts, quoteMarker.ReplaceAllString(lines[i], ""))
		i++
	}
	return Blockquote{Text: strings.Join(parts, " ")}, i
}

// consumeParagraph collects lines until a blank line or a line that starts
// another block.
func consumeParagraph(lines []string, start int) (Paragraph, int) {
	var parts []string
	i := start
	for i < len(lines) && classify(lines[i]) == lineText {
		parts = append(parts, lines[i])
		i++
	}
	return Paragraph{Text: strings.Join(parts, " ")}, i
}
