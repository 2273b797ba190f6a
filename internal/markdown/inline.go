package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// Protection sentinels. These Private Use Area characters mark where an
// entry of the protected table is reinserted. Literal occurrences in the
// input are themselves moved to the table, so every sentinel found during
// reinsertion was placed by FormatInline and the input survives unchanged.
const (
	spanOpen  = "\uE000"
	spanClose = "\uE001"
)

// inlineKind identifies an inline construct.
type inlineKind int

const (
	inlineCode inlineKind = iota
	inlineLink
	inlineStrong
	inlineEmphasis
)

// inlineRule pairs a construct with the pattern that recognizes it.
// Group 1 is always the inner text (or link label); group 2 is the link URL.
type inlineRule struct {
	kind    inlineKind
	pattern *regexp.Regexp
}

// markup returns the replacement template for the rule's HTML form.
func (r inlineRule) markup() string {
	switch r.kind {
	case inlineLink:
		return `<a href="${2}">${1}</a>`
	case inlineStrong:
		return "<strong>${1}</strong>"
	case inlineEmphasis:
		return "<em>${1}</em>"
	default:
		return "${1}"
	}
}

var (
	codeSpanRule = inlineRule{inlineCode, regexp.MustCompile("`([^`]+)`")}

	// formatRules run on escaped text, in precedence order.
	formatRules = []inlineRule{
		{inlineLink, regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)},
		{inlineStrong, regexp.MustCompile(`\*\*(.+?)\*\*`)},
		{inlineStrong, regexp.MustCompile(`__(.+?)__`)},
		{inlineEmphasis, regexp.MustCompile(`\*(.+?)\*`)},
		{inlineEmphasis, regexp.MustCompile(`_(.+?)_`)},
	}

	// protectedPattern matches a code span or a literal sentinel rune.
	protectedPattern = regexp.MustCompile(codeSpanRule.pattern.String() + "|[" + spanOpen + spanClose + "]")
	sentinelPattern  = regexp.MustCompile(spanOpen + `([0-9]+)` + spanClose)
)

// FormatInline renders code spans, links, strong and emphasis in text and
// escapes everything else. Processing runs in three phases:
//
//  1. code spans (rendered as <code> with their content escaped exactly
//     once) and literal sentinel runes are moved to an indexed table,
//     leaving sentinels
//  2. the remainder is escaped and the link, strong and emphasis rules
//     are applied in order
//  3. sentinels are replaced by their table entries
func FormatInline(text string) string {
	table, protected := extractProtected(text)

	out := EscapeHTML(protected)
	for _, rule := range formatRules {
		out = rule.pattern.ReplaceAllString(out, rule.markup())
	}

	return reinsertProtected(out, table)
}

// StripInline removes inline markup and keeps the inner text of each
// construct (the label for links). The result is trimmed.
func StripInline(text string) string {
	text = codeSpanRule.pattern.ReplaceAllString(text, "${1}")
	for _, rule := range formatRules {
		text = rule.pattern.ReplaceAllString(text, "${1}")
	}
	return strings.TrimSpace(text)
}

// extractProtected replaces each code span and each literal sentinel rune
// with a numbered sentinel and returns the finished HTML for every number.
func extractProtected(text string) ([]string, string) {
	var table []string
	protected := protectedPattern.ReplaceAllStringFunc(text, func(match string) string {
		entry := match
		if strings.HasPrefix(match, "`") {
			entry = "<code>" + EscapeHTML(match[1:len(match)-1]) + "</code>"
		}
		table = append(table, entry)
		return spanOpen + strconv.Itoa(len(table)-1) + spanClose
	})
	return table, protected
}

// reinsertProtected swaps sentinels for their table entries.
func reinsertProtected(text string, table []string) string {
	if len(table) == 0 {
		return text
	}
	return sentinelPattern.ReplaceAllStringFunc(text, func(match string) string {
		idx, err := strconv.Atoi(match[len(spanOpen) : len(match)-len(spanClose)])
		if err != nil || idx >= len(table) {
			return match
		}
		return table[idx]
	})
}
