// Package minifier turns HTML, CSS and JS source text into minified output.
//
// HTML is handled locally by HTMLMinifier. CSS and JS are delegated to the
// collaborators injected into an Engine, so a missing minifier is reported as
// a MissingCollaboratorError instead of being discovered at random.
package minifier

import (
	"context"
	"fmt"
	"log/slog"

	"minipress/internal/detect"
)

// Options control a single Minify call.
type Options struct {
	// Type overrides detection when not detect.Auto.
	Type detect.FileType
	// CSS is forwarded to the CSS minifier for stylesheets.
	CSS CSSOptions
}

// Engine dispatches source text to the right minifier.
type Engine struct {
	collab Collaborators
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCollaborators sets both external minifiers.
func WithCollaborators(c Collaborators) Option {
	return func(e *Engine) { e.collab = c }
}

// WithCSS sets the CSS minifier.
func WithCSS(c CSSMinifier) Option {
	return func(e *Engine) { e.collab.CSS = c }
}

// WithJS sets the JS minifier.
func WithJS(j JSMinifier) Option {
	return func(e *Engine) { e.collab.JS = j }
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an Engine. Without options it has no CSS or JS minifier.
func New(opts ...Option) *Engine {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Minify trims source, picks its type and minifies it. Blank input returns
// ErrEmptyInput. Sizes in the Result are measured on the trimmed source.
func (e *Engine) Minify(ctx context.Context, source string, opts Options) (*Result, error) {
	code := detect.TrimSpace(source)
	if code == "" {
		return nil, ErrEmptyInput
	}

	fileType := opts.Type
	if fileType == detect.Auto {
		fileType = detect.Detect(code)
	}

	log := e.logger.With("type", fileType.String(), "size", SizeOf(code))
	log.Debug("minify.start")

	var (
		output string
		err    error
	)
	switch fileType {
	case detect.JS:
		output, err = e.minifyJS(ctx, code)
	case detect.CSS:
		output, err = e.minifyCSS(code, opts.CSS)
	case detect.HTML:
		h := HTMLMinifier{CSS: e.collab.CSS, Logger: e.logger}
		output = h.Minify(code)
	default:
		return nil, fmt.Errorf("unsupported file type %q", fileType)
	}
	if err != nil {
		log.Error("minify.failed", "error", err)
		return nil, err
	}

	res := newResult(fileType, code, output)
	log.Debug("minify.done", "minified_size", res.MinifiedSize)
	return res, nil
}

func (e *Engine) minifyJS(ctx context.Context, code string) (string, error) {
	if e.collab.JS == nil {
		return "", &MissingCollaboratorError{Tool: ToolJS}
	}
	out, err := e.collab.JS.MinifyJS(ctx, code)
	if err != nil {
		return "", &CollaboratorExecutionError{Tool: ToolJS, Err: err}
	}
	return out, nil
}

func (e *Engine) minifyCSS(code string, opts CSSOptions) (string, error) {
	if e.collab.CSS == nil {
		return "", &MissingCollaboratorError{Tool: ToolCSS}
	}
	out, err := e.collab.CSS.MinifyCSS(code, opts)
	if err != nil {
		return "", &CollaboratorExecutionError{Tool: ToolCSS, Err: err}
	}
	return out, nil
}
