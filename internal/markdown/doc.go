// Package markdown implements the built-in Markdown renderer.
//
// The renderer is a single-pass, line-oriented scanner. Each line is
// classified into one of seven kinds (blank, fence, heading, list item,
// blockquote, thematic break, paragraph text) and handed to a consumer that
// returns a Block and the index to resume from. Text-bearing blocks are
// formatted with FormatInline when rendered.
//
// Supported syntax:
//
//	# Heading (levels 1-6)
//	* item / - item
//	> quoted text
//	```
//	fenced code
//	```
//	--- / *** / ___
//	`code`, [label](url), **strong**, __strong__, *em*, _em_
//
// Nested blocks, ordered lists, tables, reference links and raw HTML are
// not recognized; such input degrades to paragraphs or literal text.
// Parsing never fails.
package markdown
