package pipeline

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRewriteRelativePaths - Main Function Tests
// ---------------------------------------------------------------------------

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	root := "/work"
	if runtime.GOOS == "windows" {
		root = `C:\work`
	}
	sourceDir := filepath.Join(root, "docs")
	outputDir := filepath.Join(root, "site")

	tests := []struct {
		name         string
		html         string
		sourceDir    string
		outputDir    string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "relative image rebased",
			html:         `<img src="images/logo.png"/>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`src="../docs/images/logo.png"`},
		},
		{
			name:         "dot slash link rebased",
			html:         `<a href="./guide.html">Guide</a>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`href="../docs/guide.html"`},
		},
		{
			name:         "fragment suffix kept",
			html:         `<a href="other.html#intro">x</a>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`href="../docs/other.html#intro"`},
		},
		{
			name:         "output in subdirectory",
			html:         `<img src="a.png"/>`,
			sourceDir:    sourceDir,
			outputDir:    filepath.Join(sourceDir, "out"),
			wantContains: []string{`src="../a.png"`},
		},
		{
			name:         "absolute path unchanged",
			html:         `<img src="/abs/logo.png"/>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`src="/abs/logo.png"`},
		},
		{
			name:         "http URL unchanged",
			html:         `<a href="https://example.com/x">x</a>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`href="https://example.com/x"`},
		},
		{
			name:         "mailto unchanged",
			html:         `<a href="mailto:a@b.c">mail</a>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`href="mailto:a@b.c"`},
		},
		{
			name:         "data URI unchanged",
			html:         `<img src="data:image/png;base64,ABC123"/>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`src="data:image/png;base64,ABC123"`},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#section">jump</a>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`href="#section"`},
		},
		{
			name:         "same directory returns input untouched",
			html:         `<hr />`,
			sourceDir:    sourceDir,
			outputDir:    sourceDir,
			wantContains: []string{`<hr />`},
		},
		{
			name:         "empty source dir returns input untouched",
			html:         `<img src="./logo.png">`,
			sourceDir:    "",
			outputDir:    outputDir,
			wantContains: []string{`src="./logo.png"`},
		},
		{
			name:         "other elements ignored",
			html:         `<script src="app.js"></script><p>text</p>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`src="app.js"`, "<p>text</p>"},
		},
		{
			name:         "no html wrapper added",
			html:         `<p>a</p>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantExcludes: []string{"<html>", "<body>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, tt.sourceDir, tt.outputDir)
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("got %q, want substring %q", got, want)
				}
			}
			for _, unwanted := range tt.wantExcludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("got %q, should not contain %q", got, unwanted)
				}
			}
		})
	}
}

func TestRewriteRelativePaths_NoReferencesKeepsBytes(t *testing.T) {
	t.Parallel()

	root := "/work"
	if runtime.GOOS == "windows" {
		root = `C:\work`
	}

	tests := []struct {
		name string
		html string
	}{
		{"escaped quotes and void element", "<p>Say &quot;hi&quot;</p>\n<hr />"},
		{"anchor and absolute URL only", `<p><a href="#top">up</a> <img src="https://x.test/a.png" /></p>`},
		{"blocks joined by newlines", "<h1>T</h1>\n<ul>\n<li>a</li>\n</ul>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, filepath.Join(root, "docs"), filepath.Join(root, "site"))
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error = %v", err)
			}
			if got != tt.html {
				t.Errorf("RewriteRelativePaths() = %q, want input unchanged %q", got, tt.html)
			}
		})
	}
}

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"", false},
		{"img.png", true},
		{"./img.png", true},
		{"../img.png", true},
		{"dir/page.html?x=1", true},
		{"#top", false},
		{"?q=1", false},
		{"//cdn.example.com/a.png", false},
		{"http://example.com", false},
		{"file:///tmp/a.png", false},
		{"mailto:a@b.c", false},
		{"/abs/a.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := isRelativePath(tt.path); got != tt.want {
				t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathToFileURL(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		if got := pathToFileURL(`C:\docs\a b.png`); got != "file:///C:/docs/a%20b.png" {
			t.Errorf("pathToFileURL() = %q", got)
		}
		return
	}
	if got := pathToFileURL("/docs/a b.png"); got != "file:///docs/a%20b.png" {
		t.Errorf("pathToFileURL() = %q", got)
	}
}
