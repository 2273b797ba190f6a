package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		file bool
		dir  bool
	}{
		{"regular file", file, true, false},
		{"directory", dir, false, true},
		{"missing", filepath.Join(dir, "missing"), false, false},
		{"empty", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FileExists(tt.path); got != tt.file {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.file)
			}
			if got := DirExists(tt.path); got != tt.dir {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.dir)
			}
		})
	}
}

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"README.md", true},
		{"notes.MD", true},
		{"doc.markdown", true},
		{"page.html", false},
		{"md", false},
		{"dir.md/file.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := IsMarkdown(tt.path); got != tt.want {
				t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsHTML(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]bool{"a.html": true, "a.HTM": true, "a.md": false, "html": false} {
		if got := IsHTML(path); got != want {
			t.Errorf("IsHTML(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestDeriveHTMLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"README.md", "README.html"},
		{filepath.Join("docs", "guide.markdown"), filepath.Join("docs", "guide.html")},
		{"notes", "notes.html"},
		{"archive.v2.md", "archive.v2.html"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := DeriveHTMLPath(tt.input); got != tt.want {
				t.Errorf("DeriveHTMLPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates parents and writes", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "out", "page.html")
		if err := WriteFileAtomic(path, "<p>hi</p>"); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "<p>hi</p>" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("old content that is longer"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := WriteFileAtomic(path, "new"); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}
		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if err := WriteFileAtomic("", "x"); !errors.Is(err, ErrEmptyPath) {
			t.Errorf("error = %v, want ErrEmptyPath", err)
		}
	})

	t.Run("target is a directory", func(t *testing.T) {
		t.Parallel()

		if err := WriteFileAtomic(t.TempDir(), "x"); err == nil {
			t.Error("expected error writing over a directory")
		}
	})
}
