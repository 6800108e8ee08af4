package minifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeOf(t *testing.T) {
	assert.Equal(t, 2, SizeOf("é"))
	assert.Equal(t, 3, SizeOf("abc"))
	assert.Equal(t, 4, SizeOf("😀"))
	assert.Equal(t, 0, SizeOf(""))
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{10 * 1024 * 1024, "10240.0 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.n))
		})
	}
}

func TestResultSummary(t *testing.T) {
	r := &Result{OriginalSize: 2048, MinifiedSize: 512}
	assert.Equal(t, "Original: 2.0 KB | Minified: 512 B | Saved: 75.0%", r.Summary())

	grown := &Result{OriginalSize: 100, MinifiedSize: 110}
	assert.InDelta(t, -10.0, grown.Savings(), 0.001)
	assert.Contains(t, grown.Summary(), "Saved: -10.0%")
}

func TestSavingsZeroOriginal(t *testing.T) {
	assert.Equal(t, 0.0, Savings(0, 0))
}

func TestGzipSize(t *testing.T) {
	text := strings.Repeat("<p>hello</p>", 200)

	n, err := GzipSize(text)
	require.NoError(t, err)
	assert.Greater(t, n, 0)
	assert.Less(t, n, len(text))

	empty, err := GzipSize("")
	require.NoError(t, err)
	assert.Greater(t, empty, 0)
}

func TestGzipSizesMeasureTrimmedSource(t *testing.T) {
	code := ".a { color: red; }"
	res := &Result{Output: ".a{color:red}"}

	padded, _, err := GzipSizes("\ufeff\n\n   "+code+strings.Repeat(" \n", 50), res)
	require.NoError(t, err)
	trimmed, minified, err := GzipSizes(code, res)
	require.NoError(t, err)

	assert.Equal(t, trimmed, padded)
	want, err := GzipSize(res.Output)
	require.NoError(t, err)
	assert.Equal(t, want, minified)
}
