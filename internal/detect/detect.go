// Package detect classifies source text as HTML, CSS or JavaScript.
//
// Detection is a surface heuristic, not a parser. HTML fragments without a
// doctype or <html> root are reported as JavaScript, and JavaScript that happens
// to contain something like `a.b {` is reported as CSS.
package detect

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// FileType is the category a source text is minified as.
type FileType string

const (
	HTML FileType = "html"
	CSS  FileType = "css"
	JS   FileType = "js"
)

// Auto means "run Detect" when used as an override.
const Auto FileType = ""

// WhitespaceClass is a regexp character class matching one ECMAScript
// whitespace or line terminator character. RE2's \s is narrower.
const WhitespaceClass = `[\s\v\x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

var cssSelectorRe = regexp.MustCompile(`[.#][\w-]+` + WhitespaceClass + `*\{`)

// IsSpace reports whether r is ECMAScript whitespace or a line terminator.
// Unlike unicode.IsSpace it includes U+FEFF, so a leading byte order mark is
// trimmed, and excludes U+0085.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// TrimSpace removes leading and trailing ECMAScript whitespace.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// Detect returns the file type of code. It never fails; anything that is not
// recognised as HTML or CSS is JS, including empty input.
func Detect(code string) FileType {
	code = strings.ToLower(TrimSpace(code))

	if strings.HasPrefix(code, "<!doctype html") || strings.HasPrefix(code, "<html") {
		return HTML
	}
	if strings.Contains(code, "{") && cssSelectorRe.MatchString(code) {
		return CSS
	}
	return JS
}

// Parse converts a user supplied type name into a FileType.
// "auto" and "" return Auto.
func Parse(name string) (FileType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "html", "htm":
		return HTML, nil
	case "css":
		return CSS, nil
	case "js", "javascript", "mjs":
		return JS, nil
	}
	return Auto, fmt.Errorf("unknown file type %q (want auto, html, css or js)", name)
}

// FromExtension maps a file name to the type its extension suggests.
func FromExtension(path string) (FileType, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return HTML, true
	case ".css":
		return CSS, true
	case ".js", ".mjs", ".cjs":
		return JS, true
	}
	return Auto, false
}

func (t FileType) String() string {
	if t == Auto {
		return "auto"
	}
	return string(t)
}
