package minifier

import (
	"log/slog"
	"regexp"
	"strings"

	"minipress/internal/detect"
)

const ws = detect.WhitespaceClass

var (
	interTagRe   = regexp.MustCompile(`>` + ws + `+<`)
	repeatedRe   = regexp.MustCompile(ws + `{2,}`)
	lineEdgeRe   = regexp.MustCompile(`(?m)^` + ws + `+|` + ws + `+$`)
	boolAttrRe   = regexp.MustCompile(`(` + ws + `)([a-zA-Z-]+)=['"]([a-zA-Z-]+)['"]`)
	quotedAttrRe = regexp.MustCompile(`(` + ws + `)([a-zA-Z-]+)=["']([^"'<>]+)["']`)
	styleBlockRe = regexp.MustCompile(`(?is)<style[^>]*>(.*?)</style>`)
)

// HTMLMinifier shrinks HTML markup with an ordered list of text substitutions.
// It does not parse the document.
type HTMLMinifier struct {
	// CSS minifies the body of <style> blocks. Nil leaves them untouched.
	CSS    CSSMinifier
	Logger *slog.Logger
}

// MinifyHTML is a convenience wrapper around HTMLMinifier.
func MinifyHTML(html string, css CSSMinifier) string {
	h := HTMLMinifier{CSS: css}
	return h.Minify(html)
}

// Minify returns the minified markup. Order matters: comments go first so the
// whitespace they leave behind is collapsed by the later passes.
//
// Attribute values are unquoted whenever they hold no quote or angle bracket,
// even if they contain spaces; such output is not valid HTML.
func (h *HTMLMinifier) Minify(html string) string {
	if html == "" {
		return ""
	}

	result := stripComments(html)

	patterns := []struct {
		re   *regexp.Regexp
		repl string
	}{
		{interTagRe, "><"},
		{repeatedRe, " "},
		{lineEdgeRe, ""},
	}
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.repl)
	}

	result = collapseBooleanAttrs(result)
	result = quotedAttrRe.ReplaceAllString(result, "${1}${2}=${3}")

	return h.minifyStyleBlocks(result)
}

// stripComments removes <!-- ... --> comments. A comment whose body starts
// with "<!" is kept, as is one whose first body character is '$' or '>'.
func stripComments(s string) string {
	const open, closing = "<!--", "-->"

	var b strings.Builder
	pos, search := 0, 0
	for {
		i := strings.Index(s[search:], open)
		if i < 0 {
			break
		}
		start := search + i
		body := start + len(open)
		if body >= len(s) || strings.HasPrefix(s[body:], "<!") || s[body] == '$' || s[body] == '>' {
			search = start + 1
			continue
		}

		end := strings.Index(s[body+1:], closing)
		if end < 0 {
			break
		}
		b.WriteString(s[pos:start])
		pos = body + 1 + end + len(closing)
		search = pos
	}
	if pos == 0 {
		return s
	}
	b.WriteString(s[pos:])
	return b.String()
}

// collapseBooleanAttrs rewrites name="name" to a bare name.
func collapseBooleanAttrs(s string) string {
	return replaceSubmatches(boolAttrRe, s, func(s string, m []int) string {
		space, name, value := s[m[2]:m[3]], s[m[4]:m[5]], s[m[6]:m[7]]
		if name == value {
			return space + name
		}
		return s[m[0]:m[1]]
	})
}

func (h *HTMLMinifier) minifyStyleBlocks(s string) string {
	return replaceSubmatches(styleBlockRe, s, func(s string, m []int) string {
		block := s[m[0]:m[1]]
		css := s[m[2]:m[3]]
		if h.CSS == nil || css == "" {
			return block
		}

		minified, err := h.CSS.MinifyCSS(css, InlineCSSOptions)
		if err != nil {
			h.logger().Warn("inline css minification failed", "error", err, "offset", m[0])
			return block
		}
		return s[m[0]:m[2]] + minified + s[m[3]:m[1]]
	})
}

func (h *HTMLMinifier) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// replaceSubmatches is ReplaceAllStringFunc with access to submatch offsets.
func replaceSubmatches(re *regexp.Regexp, s string, fn func(s string, m []int) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		b.WriteString(fn(s, m))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
