package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteRelativePaths rebases relative image and link paths in an HTML
// fragment so they keep pointing at the same files when the fragment is
// written to outputDir instead of sourceDir.
// If either directory is empty, both resolve to the same place, or the
// fragment has no relative reference, the fragment is returned unchanged.
// Otherwise it is re-serialized by the HTML renderer.
//
// Rewrites:
//   - img[src]
//   - a[href] pointing at files (not anchors, not URLs)
//
// Targets are made relative to outputDir. When no relative path exists
// (different volumes on Windows) a file:// URL is used instead.
func RewriteRelativePaths(fragment, sourceDir, outputDir string) (string, error) {
	if sourceDir == "" || outputDir == "" {
		return fragment, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	absOutputDir, err := filepath.Abs(outputDir)
	if err != nil {
		return "", err
	}
	if absSourceDir == absOutputDir {
		return fragment, nil
	}

	doc, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	if !rewriteNode(doc, absSourceDir, absOutputDir) {
		return fragment, nil
	}

	return renderFragment(doc)
}

// parseFragment parses HTML in a body context and wraps the resulting nodes
// in a container for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the container's children without any wrapper.
func renderFragment(doc *html.Node) (string, error) {
	var buf strings.Builder
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteNode reports whether any attribute in the subtree was rewritten.
func rewriteNode(n *html.Node, sourceDir, outputDir string) bool {
	changed := false
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			changed = rewriteAttr(n, "src", sourceDir, outputDir)
		case atom.A:
			changed = rewriteAttr(n, "href", sourceDir, outputDir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteNode(c, sourceDir, outputDir) {
			changed = true
		}
	}
	return changed
}

func rewriteAttr(n *html.Node, attrName, sourceDir, outputDir string) bool {
	changed := false
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}
		n.Attr[i].Val = rebase(attr.Val, sourceDir, outputDir)
		changed = true
	}
	return changed
}

// rebase resolves ref against sourceDir and expresses it relative to
// outputDir. A trailing query or fragment is preserved.
func rebase(ref, sourceDir, outputDir string) string {
	pathPart, suffix := ref, ""
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		pathPart, suffix = ref[:i], ref[i:]
	}

	target := filepath.Join(sourceDir, filepath.FromSlash(pathPart))
	rel, err := filepath.Rel(outputDir, target)
	if err != nil {
		return pathToFileURL(target) + suffix
	}
	return filepath.ToSlash(rel) + suffix
}

// isRelativePath returns true if the path should be rewritten.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}

	// URLs with a scheme (http, https, file, data, mailto) and protocol-relative
	if strings.HasPrefix(path, "//") {
		return false
	}
	if u, err := url.Parse(path); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		return false
	}

	// Anchors and query-only references point into the same document
	if strings.HasPrefix(path, "#") || strings.HasPrefix(path, "?") {
		return false
	}

	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return false
	}

	return true
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	p := filepath.ToSlash(absPath)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // Windows drive letters
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}
