package style

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Width is a CSS length given either as a pixel count or as a literal
// length string such as "50%" or "72ch". The zero value is unset.
type Width struct {
	pixels float64
	length string
	set    bool
}

// Pixels returns a Width of n pixels. Non-finite values yield an unset Width.
func Pixels(n float64) Width {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Width{}
	}
	return Width{pixels: n, set: true}
}

// Length returns a Width holding a literal CSS length. Blank input yields an
// unset Width.
func Length(s string) Width {
	s = strings.TrimSpace(s)
	if s == "" {
		return Width{}
	}
	return Width{length: s, set: true}
}

// ParseWidth converts a decoded configuration value into a Width.
// Numbers are pixels, strings are literal lengths; anything else, including
// non-finite numbers and blank strings, is rejected.
func ParseWidth(v any) (Width, bool) {
	var w Width
	switch n := v.(type) {
	case string:
		w = Length(n)
	case int:
		w = Pixels(float64(n))
	case int64:
		w = Pixels(float64(n))
	case uint64:
		w = Pixels(float64(n))
	case float32:
		w = Pixels(float64(n))
	case float64:
		w = Pixels(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return Width{}, false
		}
		w = Pixels(f)
	}
	return w, w.set
}

// IsSet reports whether the width carries a value.
func (w Width) IsSet() bool {
	return w.set
}

// String renders the width as CSS: pixels as "<n>px", lengths verbatim.
// An unset width renders as the empty string.
func (w Width) String() string {
	switch {
	case !w.set:
		return ""
	case w.length != "":
		return w.length
	default:
		return strconv.FormatFloat(w.pixels, 'f', -1, 64) + "px"
	}
}

// UnmarshalYAML accepts a number or a string. Other values leave the width
// unset rather than failing the whole document.
func (w *Width) UnmarshalYAML(data []byte) error {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return err
	}
	*w, _ = ParseWidth(v)
	return nil
}
