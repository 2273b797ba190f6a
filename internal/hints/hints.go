// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"runtime"
	"strings"

	"github.com/alnah/go-mdviewer/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// GOOS is the platform the hints are computed for.
var GOOS = runtime.GOOS

// ForBrowserOpen returns hints for failures to open the output in a browser.
func ForBrowserOpen() string {
	var hints []string

	headless := IsInContainer() || os.Getenv("CI") != "" ||
		(GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "")
	if headless {
		hints = append(hints, "no display detected, use --no-open")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to a browser binary")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for an explicit config file that does not exist.
// Suggests one of the automatically searched locations, preferring the
// user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "check the --config path"

	for _, p := range searchedPaths {
		if strings.Contains(slashed(p), "/mdviewer/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForConfigShape returns the expected layout of a configuration file.
func ForConfigShape() string {
	return format(`expected {"style": {"accentColor": "#2563eb", "containerMaxWidth": 960}}`)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForEngine lists the valid engine names.
func ForEngine(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForAssetPath describes the layout of an asset directory.
func ForAssetPath() string {
	return format("asset directory may contain styles/base.css and templates/document.html")
}

// slashed normalizes separators so hints match on every platform.
func slashed(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
