// Package report renders the outcome of an audit run as a terminal table,
// Markdown, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"minipress/internal/detect"
	"minipress/internal/minifier"
)

// Format names an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatTable, FormatMarkdown, FormatJSON, FormatYAML}

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "table":
		return FormatTable, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want table, markdown, json or yaml)", name)
}

// Entry is the audit row of one file.
type Entry struct {
	Path         string          `json:"path" yaml:"path"`
	Type         detect.FileType `json:"type,omitempty" yaml:"type,omitempty"`
	OriginalSize int             `json:"original_size" yaml:"original_size"`
	MinifiedSize int             `json:"minified_size" yaml:"minified_size"`
	Savings      float64         `json:"savings" yaml:"savings"`
	GzipOriginal int             `json:"gzip_original,omitempty" yaml:"gzip_original,omitempty"`
	GzipMinified int             `json:"gzip_minified,omitempty" yaml:"gzip_minified,omitempty"`
	Skipped      bool            `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Error        string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the file was minified.
func (e Entry) OK() bool {
	return e.Error == "" && !e.Skipped
}

// Totals sums the successful entries of a run.
type Totals struct {
	Files        int     `json:"files" yaml:"files"`
	Minified     int     `json:"minified" yaml:"minified"`
	Skipped      int     `json:"skipped" yaml:"skipped"`
	Failed       int     `json:"failed" yaml:"failed"`
	OriginalSize int     `json:"original_size" yaml:"original_size"`
	MinifiedSize int     `json:"minified_size" yaml:"minified_size"`
	Savings      float64 `json:"savings" yaml:"savings"`
	GzipOriginal int     `json:"gzip_original,omitempty" yaml:"gzip_original,omitempty"`
	GzipMinified int     `json:"gzip_minified,omitempty" yaml:"gzip_minified,omitempty"`
}

// Report is a complete audit run.
type Report struct {
	Entries []Entry `json:"files" yaml:"files"`
	Totals  Totals  `json:"totals" yaml:"totals"`
	// Gzip marks that gzip sizes were measured.
	Gzip bool `json:"gzip" yaml:"gzip"`
}

// New builds a Report and its totals from entries.
func New(entries []Entry, gzip bool) *Report {
	r := &Report{Entries: entries, Gzip: gzip}
	r.Totals.Files = len(entries)
	for _, e := range entries {
		switch {
		case e.Error != "":
			r.Totals.Failed++
		case e.Skipped:
			r.Totals.Skipped++
		default:
			r.Totals.Minified++
			r.Totals.OriginalSize += e.OriginalSize
			r.Totals.MinifiedSize += e.MinifiedSize
			r.Totals.GzipOriginal += e.GzipOriginal
			r.Totals.GzipMinified += e.GzipMinified
		}
	}
	r.Totals.Savings = minifier.Savings(r.Totals.OriginalSize, r.Totals.MinifiedSize)
	return r
}

// HasFailures reports whether any file failed.
func (r *Report) HasFailures() bool {
	return r.Totals.Failed > 0
}

// Write renders r to w in the given format.
func Write(w io.Writer, r *Report, format Format) error {
	switch format {
	case FormatTable, "":
		return WriteTable(w, r)
	case FormatMarkdown:
		return WriteMarkdown(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	}
	return fmt.Errorf("unknown format %q", format)
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes r as YAML.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func status(e Entry) string {
	switch {
	case e.Error != "":
		return "error: " + e.Error
	case e.Skipped:
		return "skipped (empty)"
	}
	return "ok"
}

func typeName(e Entry) string {
	if e.Type == detect.Auto {
		return "-"
	}
	return string(e.Type)
}

func savings(e Entry) string {
	if !e.OK() {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", e.Savings)
}

func size(e Entry, n int) string {
	if !e.OK() {
		return "-"
	}
	return minifier.FormatBytes(n)
}
