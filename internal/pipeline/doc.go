// Package pipeline turns Markdown into a body fragment and a detected title.
//
// Two engines implement HTMLConverter:
//   - BasicConverter runs the built-in line scanner from internal/markdown
//   - GoldmarkConverter runs goldmark with GFM extensions
//
// Both produce a fragment only. Wrapping it in a document is done by
// internal/document. RewriteRelativePaths adjusts relative links in a
// fragment when the output file lands outside the source directory.
package pipeline
