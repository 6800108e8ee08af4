package minifier

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	cssPunctRe      = regexp.MustCompile(`\s*([{};:,>~])\s*`)
	cssTrailingSemi = regexp.MustCompile(`;\s*}`)
)

// BasicCSS is a regex based CSS minifier with no external dependencies.
// Comments inside strings are kept, but whitespace inside strings is
// squeezed, so content like `content: "a  b"` changes.
type BasicCSS struct{}

// MinifyCSS strips comments and squeezes whitespace around punctuation.
func (BasicCSS) MinifyCSS(source string, opts CSSOptions) (string, error) {
	comments := cssComments
	comments.keepLicense = opts.Comments
	result := comments.strip(source)

	result = whitespaceRe.ReplaceAllString(result, " ")
	result = cssPunctRe.ReplaceAllString(result, "$1")

	if opts.Restructure {
		result = cssTrailingSemi.ReplaceAllString(result, "}")
	}

	return strings.TrimSpace(result), nil
}
