package markdown

import (
	"regexp"
	"strings"
)

// htmlEscaper escapes the characters that are significant in HTML text
// and double- or single-quoted attribute values.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// lineBreaks matches \r\n and lone \r.
var lineBreaks = regexp.MustCompile(`\r\n?`)

// EscapeHTML escapes &, <, >, " and ' for use in HTML text or attributes.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// SplitLines normalizes line endings to \n and splits source into lines.
// An empty source yields a single empty line.
func SplitLines(source string) []string {
	return strings.Split(lineBreaks.ReplaceAllString(source, "\n"), "\n")
}
