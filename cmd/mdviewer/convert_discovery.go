package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	mdviewer "github.com/alnah/go-mdviewer"
	"github.com/alnah/go-mdviewer/internal/fileutil"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string // empty derives <input>.html
}

// discoverFiles expands inputs (files, directories and glob patterns) into
// the files to convert.
//
// With a single file input, out names the output file unless it is an
// existing directory or ends with a separator. Otherwise out is an output
// directory that mirrors each input's position under its directory or
// glob base.
func discoverFiles(inputs []string, out string) ([]FileToConvert, error) {
	if len(inputs) == 1 && out != "" && singleFileOutput(inputs[0], out) {
		abs, err := inputFile(inputs[0])
		if err != nil {
			return nil, err
		}
		return []FileToConvert{{InputPath: abs, OutputPath: out}}, nil
	}
	if out != "" && fileutil.IsHTML(out) {
		return nil, fmt.Errorf("%w: --out %s names a file but several inputs were given", ErrUsage, out)
	}

	var files []FileToConvert
	seen := make(map[string]bool)
	add := func(path, base string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		files = append(files, FileToConvert{InputPath: abs, OutputPath: outputPath(abs, base, out)})
	}

	for _, in := range inputs {
		switch {
		case fileutil.DirExists(in):
			found, err := walkMarkdown(in)
			if err != nil {
				return nil, err
			}
			for _, p := range found {
				add(p, in)
			}
		case !fileutil.FileExists(in) && isGlob(in):
			base, matches, err := globMarkdown(in)
			if err != nil {
				return nil, err
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("%w: no markdown files match %s", mdviewer.ErrInputNotFound, in)
			}
			for _, p := range matches {
				add(p, base)
			}
		default:
			abs, err := inputFile(in)
			if err != nil {
				return nil, err
			}
			add(abs, filepath.Dir(abs))
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no markdown files found in %s", mdviewer.ErrInputNotFound, strings.Join(inputs, ", "))
	}
	return files, nil
}

// singleFileOutput reports whether out names the output file for input.
func singleFileOutput(input, out string) bool {
	if fileutil.DirExists(input) || (!fileutil.FileExists(input) && isGlob(input)) {
		return false
	}
	if strings.HasSuffix(out, "/") || strings.HasSuffix(out, string(filepath.Separator)) {
		return false
	}
	return !fileutil.DirExists(out)
}

// inputFile validates an explicit input file and returns its absolute path.
func inputFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if !fileutil.FileExists(abs) {
		return "", fmt.Errorf("%w: %s", mdviewer.ErrInputNotFound, abs)
	}
	if fileutil.IsHTML(abs) {
		return "", fmt.Errorf("%w: %s is already HTML", ErrUsage, abs)
	}
	return abs, nil
}

// outputPath places input under out, keeping its path relative to base.
func outputPath(input, base, out string) string {
	if out == "" {
		return ""
	}
	name := filepath.Base(fileutil.DeriveHTMLPath(input))
	if base != "" {
		if absBase, err := filepath.Abs(base); err == nil {
			if rel, err := filepath.Rel(absBase, input); err == nil && !strings.HasPrefix(rel, "..") {
				return filepath.Join(out, filepath.Dir(rel), name)
			}
		}
	}
	return filepath.Join(out, name)
}

// walkMarkdown lists the markdown files under dir.
func walkMarkdown(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

// isGlob reports whether s contains glob metacharacters.
func isGlob(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// globMarkdown expands a doublestar pattern and keeps markdown files.
// base is the pattern's static prefix.
func globMarkdown(pattern string) (string, []string, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return "", nil, fmt.Errorf("%w: invalid pattern %q", ErrUsage, pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return "", nil, fmt.Errorf("expanding %s: %w", pattern, err)
	}

	var files []string
	for _, m := range matches {
		if fileutil.IsMarkdown(m) {
			files = append(files, m)
		}
	}

	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	return filepath.FromSlash(base), files, nil
}
