package mdviewer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeMarkdown(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConvertFile(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("derives output path and uses file name as title", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "guide.md")
		writeMarkdown(t, in, "# Heading\n\nBody")

		summary, err := conv.ConvertFile(context.Background(), in, FileOptions{})
		if err != nil {
			t.Fatalf("ConvertFile() error = %v", err)
		}
		if want := filepath.Join(dir, "guide.html"); summary.OutputPath != want {
			t.Errorf("OutputPath = %q, want %q", summary.OutputPath, want)
		}
		if summary.Title != "guide" {
			t.Errorf("Title = %q, want guide", summary.Title)
		}
		written, err := os.ReadFile(summary.OutputPath)
		if err != nil {
			t.Fatal(err)
		}
		if string(written) != summary.HTML {
			t.Error("written file differs from summary HTML")
		}
		if !strings.Contains(summary.HTML, "<title>guide</title>") {
			t.Error("page title should be the file name")
		}
	})

	t.Run("explicit output and title", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "a.md")
		out := filepath.Join(dir, "out", "page.html")
		writeMarkdown(t, in, "text")

		summary, err := conv.ConvertFile(context.Background(), in, FileOptions{OutputPath: out, Title: "Custom"})
		if err != nil {
			t.Fatalf("ConvertFile() error = %v", err)
		}
		if summary.OutputPath != out || summary.Title != "Custom" {
			t.Errorf("summary = %+v", summary)
		}
		if _, err := os.Stat(out); err != nil {
			t.Errorf("output not written: %v", err)
		}
	})

	t.Run("prefer heading", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		withHeading := filepath.Join(dir, "one.md")
		withoutHeading := filepath.Join(dir, "two.md")
		writeMarkdown(t, withHeading, "# Real Title\n\ntext")
		writeMarkdown(t, withoutHeading, "no heading here")

		s1, err := conv.ConvertFile(context.Background(), withHeading, FileOptions{PreferHeading: true})
		if err != nil {
			t.Fatal(err)
		}
		if s1.Title != "Real Title" {
			t.Errorf("Title = %q, want Real Title", s1.Title)
		}

		s2, err := conv.ConvertFile(context.Background(), withoutHeading, FileOptions{PreferHeading: true})
		if err != nil {
			t.Fatal(err)
		}
		if s2.Title != "two" {
			t.Errorf("Title = %q, want file name fallback", s2.Title)
		}
	})

	t.Run("relative links rebased for other output dir", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "docs", "index.md")
		out := filepath.Join(dir, "site", "index.html")
		writeMarkdown(t, in, "[next](next.html)")

		summary, err := conv.ConvertFile(context.Background(), in, FileOptions{OutputPath: out})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(summary.HTML, `href="../docs/next.html"`) {
			t.Errorf("link not rebased: %q", summary.HTML)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := conv.ConvertFile(context.Background(), filepath.Join(t.TempDir(), "none.md"), FileOptions{})
		if !errors.Is(err, ErrInputNotFound) {
			t.Errorf("error = %v, want ErrInputNotFound", err)
		}
	})

	t.Run("directory input", func(t *testing.T) {
		t.Parallel()

		_, err := conv.ConvertFile(context.Background(), t.TempDir(), FileOptions{})
		if !errors.Is(err, ErrInputNotFound) {
			t.Errorf("error = %v, want ErrInputNotFound", err)
		}
	})

	t.Run("unwritable output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "a.md")
		writeMarkdown(t, in, "x")

		_, err := conv.ConvertFile(context.Background(), in, FileOptions{OutputPath: dir})
		if !errors.Is(err, ErrWriteOutput) {
			t.Errorf("error = %v, want ErrWriteOutput", err)
		}
	})
}
