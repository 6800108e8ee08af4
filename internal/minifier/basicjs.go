package minifier

import (
	"context"
	"regexp"
	"strings"
)

var (
	jsPunctRe    = regexp.MustCompile(`\s*([{}\[\]();,:<>+\-*/%=!&|?])\s*`)
	jsKeywordRes = compileKeywordPatterns([]string{
		"return", "throw", "new", "delete", "typeof", "void", "in", "instanceof",
		"var", "let", "const", "if", "else", "for", "while", "do", "switch", "case",
		"break", "continue", "function", "class", "extends", "import", "export",
		"default", "try", "catch", "finally", "async", "await", "yield",
	})
)

type keywordPattern struct {
	re   *regexp.Regexp
	repl string
}

func compileKeywordPatterns(keywords []string) []keywordPattern {
	patterns := make([]keywordPattern, 0, len(keywords))
	for _, kw := range keywords {
		patterns = append(patterns, keywordPattern{
			re:   regexp.MustCompile(`\b` + kw + `\b([^\s;{(])`),
			repl: kw + " $1",
		})
	}
	return patterns
}

// BasicJS is a regex based JS minifier. Comment stripping skips string and
// template literals but whitespace is squeezed everywhere, so it is only safe
// for simple scripts.
type BasicJS struct{}

// MinifyJS removes comments and redundant whitespace.
func (BasicJS) MinifyJS(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	result := jsComments.strip(source)
	result = whitespaceRe.ReplaceAllString(result, " ")
	result = jsPunctRe.ReplaceAllString(result, "$1")

	for _, p := range jsKeywordRes {
		result = p.re.ReplaceAllString(result, p.repl)
	}

	return strings.TrimSpace(result), nil
}
