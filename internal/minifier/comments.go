package minifier

import "strings"

// commentScanner removes comments from CSS or JS source. Quoted strings are
// copied through untouched, so "http://x" or "/* not a comment */" survive.
type commentScanner struct {
	quotes       string // characters that open a string literal
	lineComments bool   // also strip // comments up to the end of the line
	keepLicense  bool   // keep /*! ... */ comments
}

var (
	cssComments = commentScanner{quotes: `'"`}
	jsComments  = commentScanner{quotes: "'\"`", lineComments: true}
)

func (c commentScanner) strip(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	var quote byte
	for i := 0; i < len(src); i++ {
		ch := src[i]

		if quote != 0 {
			b.WriteByte(ch)
			switch {
			case ch == '\\' && i+1 < len(src):
				i++
				b.WriteByte(src[i])
			case ch == quote:
				quote = 0
			case ch == '\n' && quote != '`':
				// an unterminated ' or " string ends at the line break
				quote = 0
			}
			continue
		}

		if strings.IndexByte(c.quotes, ch) >= 0 {
			quote = ch
			b.WriteByte(ch)
			continue
		}

		if ch == '/' && i+1 < len(src) {
			switch src[i+1] {
			case '*':
				end := strings.Index(src[i+2:], "*/")
				stop := len(src)
				if end >= 0 {
					stop = i + 2 + end + 2
				}
				if c.keepLicense && strings.HasPrefix(src[i:], "/*!") {
					b.WriteString(src[i:stop])
				}
				i = stop - 1
				continue
			case '/':
				if c.lineComments {
					end := strings.IndexByte(src[i:], '\n')
					if end < 0 {
						return b.String()
					}
					i += end - 1
					continue
				}
			}
		}

		b.WriteByte(ch)
	}

	return b.String()
}
