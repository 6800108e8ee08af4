package minifier

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

var licenseCommentRe = regexp.MustCompile(`/\*![\s\S]*?\*/`)

// TdewolffCSS minifies stylesheets with github.com/tdewolff/minify.
type TdewolffCSS struct {
	m *minify.M
}

// NewTdewolffCSS returns a ready to use CSS minifier.
func NewTdewolffCSS() *TdewolffCSS {
	return &TdewolffCSS{m: minify.New()}
}

// MinifyCSS minifies source. Without Restructure the output stays CSS2
// compatible, so no CSS3-only shorthands are introduced.
func (t *TdewolffCSS) MinifyCSS(source string, opts CSSOptions) (string, error) {
	cm := &css.Minifier{KeepCSS2: !opts.Restructure}

	var buf bytes.Buffer
	if err := cm.Minify(t.m, &buf, strings.NewReader(source), nil); err != nil {
		return "", err
	}

	out := licenseCommentRe.ReplaceAllString(buf.String(), "")
	if opts.Comments {
		out = keepLicenseComments(source, out)
	}
	return out, nil
}

// keepLicenseComments prepends the /*! ... */ comments of source to out.
func keepLicenseComments(source, out string) string {
	comments := licenseCommentRe.FindAllString(source, -1)
	if len(comments) == 0 {
		return out
	}
	return strings.Join(comments, "") + out
}

// TdewolffJS minifies scripts with github.com/tdewolff/minify.
type TdewolffJS struct {
	m *minify.M
}

// NewTdewolffJS returns a ready to use JS minifier.
func NewTdewolffJS() *TdewolffJS {
	return &TdewolffJS{m: minify.New()}
}

type jsOutcome struct {
	out string
	err error
}

// MinifyJS runs the minifier in its own goroutine so a cancelled ctx returns
// immediately; the abandoned run finishes in the background.
func (t *TdewolffJS) MinifyJS(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	done := make(chan jsOutcome, 1)
	go func() {
		var buf bytes.Buffer
		err := js.Minify(t.m, &buf, strings.NewReader(source), nil)
		done <- jsOutcome{out: buf.String(), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.out, res.err
	}
}
