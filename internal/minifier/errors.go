package minifier

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when there is nothing to minify. Callers treat it
// as a silent no-op rather than a failure.
var ErrEmptyInput = errors.New("empty input")

// Tool names used in error messages.
const (
	ToolCSS = "CSS minifier"
	ToolJS  = "JS minifier"
)

// MissingCollaboratorError reports that a required minifier was not configured.
type MissingCollaboratorError struct {
	Tool string
}

func (e *MissingCollaboratorError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s not available; check the configured engine", e.Tool)
}

// CollaboratorExecutionError wraps a failure raised by an external minifier.
type CollaboratorExecutionError struct {
	Tool string
	Err  error
}

func (e *CollaboratorExecutionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return e.Tool + " failed"
	}
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *CollaboratorExecutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsMissingCollaborator reports whether err is, or wraps, a MissingCollaboratorError.
func IsMissingCollaborator(err error) bool {
	var mc *MissingCollaboratorError
	return errors.As(err, &mc)
}

// UserMessage renders err the way it is shown in place of the output.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s\nTry again after checking the input and the configured engine.", err.Error())
}
