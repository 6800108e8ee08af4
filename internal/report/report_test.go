package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"minipress/internal/detect"
)

func sampleEntries() []Entry {
	return []Entry{
		{Path: "site/index.html", Type: detect.HTML, OriginalSize: 2048, MinifiedSize: 1024, Savings: 50, GzipOriginal: 600, GzipMinified: 500},
		{Path: "site/app.css", Type: detect.CSS, OriginalSize: 100, MinifiedSize: 80, Savings: 20, GzipOriginal: 90, GzipMinified: 70},
		{Path: "site/empty.js", Skipped: true},
		{Path: "site/broken.js", Type: detect.JS, Error: "JS minifier failed: unexpected EOF"},
	}
}

func TestNewTotals(t *testing.T) {
	r := New(sampleEntries(), true)

	assert.Equal(t, 4, r.Totals.Files)
	assert.Equal(t, 2, r.Totals.Minified)
	assert.Equal(t, 1, r.Totals.Skipped)
	assert.Equal(t, 1, r.Totals.Failed)
	assert.Equal(t, 2148, r.Totals.OriginalSize)
	assert.Equal(t, 1104, r.Totals.MinifiedSize)
	assert.Equal(t, 690, r.Totals.GzipOriginal)
	assert.Equal(t, 570, r.Totals.GzipMinified)
	assert.InDelta(t, 48.6, r.Totals.Savings, 0.05)
	assert.True(t, r.HasFailures())
}

func TestNewEmpty(t *testing.T) {
	r := New(nil, false)
	assert.Zero(t, r.Totals.Files)
	assert.Zero(t, r.Totals.Savings)
	assert.False(t, r.HasFailures())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatTable},
		{"TABLE", FormatTable},
		{"md", FormatMarkdown},
		{"markdown", FormatMarkdown},
		{"json", FormatJSON},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(sampleEntries(), true), FormatTable))

	out := buf.String()
	assert.Contains(t, out, "site/index.html")
	assert.Contains(t, out, "2.0 KB")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "skipped (empty)")
	assert.Contains(t, out, "error: JS minifier failed")
	assert.Contains(t, out, "GZIP ORIGINAL")
	assert.Contains(t, out, "4 files")
}

func TestWriteTableWithoutGzip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, New(sampleEntries(), false)))
	assert.NotContains(t, buf.String(), "GZIP")
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(sampleEntries(), false), FormatMarkdown))

	out := buf.String()
	assert.Contains(t, out, "# Minification Audit")
	assert.Contains(t, out, "## Summary")
	assert.Contains(t, out, "`site/app.css`")
	assert.Contains(t, out, "## Failures")
	assert.Contains(t, out, "unexpected EOF")
	assert.NotContains(t, out, "Gzip")
}

func TestWriteMarkdownNoFiles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, New(nil, false)))
	assert.Contains(t, buf.String(), "No matching files.")
	assert.NotContains(t, buf.String(), "## Failures")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(sampleEntries(), false), FormatJSON))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Entries, 4)
	assert.Equal(t, 1, decoded.Totals.Failed)
	assert.Equal(t, detect.CSS, decoded.Entries[1].Type)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(sampleEntries(), false), FormatYAML))

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Entries, 4)
	assert.True(t, decoded.Entries[2].Skipped)
	assert.Equal(t, 2148, decoded.Totals.OriginalSize)
}
