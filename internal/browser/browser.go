// Package browser opens generated files in the user's default browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/go-rod/rod/lib/launcher"
)

// ErrOpen indicates no browser could be started for a file.
var ErrOpen = errors.New("failed to open browser")

// Starter starts a command without waiting for it to finish.
type Starter interface {
	Start(name string, args ...string) error
}

// Opener launches files with the platform's default handler and falls back
// to a Chromium-family browser when no handler is available.
type Opener struct {
	goos     string
	starter  Starter
	lookPath func(file string) (string, error)
	findBin  func() (string, bool)
}

// Option configures an Opener.
type Option func(*Opener)

// WithStarter replaces the process starter.
func WithStarter(s Starter) Option {
	return func(o *Opener) { o.starter = s }
}

// WithGOOS overrides the target platform.
func WithGOOS(goos string) Option {
	return func(o *Opener) { o.goos = goos }
}

// WithLookPath overrides executable lookup for the platform handler.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(o *Opener) { o.lookPath = fn }
}

// WithBrowserFinder overrides how the fallback browser binary is located.
func WithBrowserFinder(fn func() (string, bool)) Option {
	return func(o *Opener) { o.findBin = fn }
}

// New creates an Opener for the current platform.
func New(opts ...Option) *Opener {
	o := &Opener{
		goos:     runtime.GOOS,
		starter:  detachedStarter{},
		lookPath: exec.LookPath,
		findBin:  findBrowserBinary,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Command returns the platform handler invocation for absPath.
func Command(goos, absPath string) (name string, args []string) {
	switch goos {
	case "windows":
		return "cmd", []string{"/c", "start", "", absPath}
	case "darwin":
		return "open", []string{absPath}
	default:
		return "xdg-open", []string{absPath}
	}
}

// Open starts a browser on path. It returns once the process is started.
func (o *Opener) Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpen, err)
	}

	name, args := Command(o.goos, abs)
	var primaryErr error
	if _, err := o.lookPath(name); err != nil {
		primaryErr = err
	} else if err := o.starter.Start(name, args...); err != nil {
		primaryErr = err
	} else {
		return nil
	}

	bin, ok := o.findBin()
	if !ok {
		return fmt.Errorf("%w for %s: %s: %v", ErrOpen, abs, name, primaryErr)
	}
	if err := o.starter.Start(bin, fileURL(abs)); err != nil {
		return fmt.Errorf("%w for %s: %s: %v", ErrOpen, abs, bin, err)
	}
	return nil
}

// findBrowserBinary honors ROD_BROWSER_BIN, then searches the usual
// Chromium install locations.
func findBrowserBinary() (string, bool) {
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		return bin, true
	}
	return launcher.LookPath()
}

func fileURL(absPath string) string {
	p := filepath.ToSlash(absPath)
	if len(p) > 0 && p[0] != '/' {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

// detachedStarter runs commands in their own process group with no stdio,
// so the browser outlives the CLI and ignores its signals.
type detachedStarter struct{}

func (detachedStarter) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...) // #nosec G204 -- fixed handler names, user's own file
	cmd.SysProcAttr = detachedAttr()
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
