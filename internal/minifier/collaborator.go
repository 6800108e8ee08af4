package minifier

import (
	"context"
	"fmt"
	"strings"
)

// CSSOptions are forwarded verbatim to the CSS minifier.
type CSSOptions struct {
	// Restructure allows the minifier to rewrite declarations into shorter forms.
	Restructure bool `json:"restructure" yaml:"restructure" mapstructure:"restructure"`
	// Comments keeps /*! ... */ license comments.
	Comments bool `json:"comments" yaml:"comments" mapstructure:"comments"`
}

// InlineCSSOptions is used for <style> blocks inside HTML documents.
var InlineCSSOptions = CSSOptions{Restructure: true, Comments: true}

// CSSMinifier minifies a stylesheet.
type CSSMinifier interface {
	MinifyCSS(source string, opts CSSOptions) (string, error)
}

// JSMinifier minifies a script. Implementations must return promptly once ctx is done.
type JSMinifier interface {
	MinifyJS(ctx context.Context, source string) (string, error)
}

// Collaborators are the external minifiers an Engine delegates to.
// A nil field means that minifier is unavailable.
type Collaborators struct {
	CSS CSSMinifier
	JS  JSMinifier
}

// Engine names accepted by NewCollaborators.
const (
	EngineTdewolff = "tdewolff"
	EngineBasic    = "basic"
	EngineNone     = "none"
)

// EngineNames lists the engines in the order they are documented.
var EngineNames = []string{EngineTdewolff, EngineBasic, EngineNone}

// NewCollaborators returns the CSS and JS minifiers for the named engine.
// "none" returns empty Collaborators so only HTML can be minified.
func NewCollaborators(engine string) (Collaborators, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineTdewolff:
		return Collaborators{CSS: NewTdewolffCSS(), JS: NewTdewolffJS()}, nil
	case EngineBasic:
		return Collaborators{CSS: BasicCSS{}, JS: BasicJS{}}, nil
	case EngineNone:
		return Collaborators{}, nil
	}
	return Collaborators{}, fmt.Errorf("unknown engine %q (want %s)", engine, strings.Join(EngineNames, ", "))
}
