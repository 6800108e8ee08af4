package minifier

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/gzip"

	"minipress/internal/detect"
)

// Result is the outcome of one minification pass.
type Result struct {
	Type         detect.FileType `json:"type" yaml:"type"`
	Output       string          `json:"output,omitempty" yaml:"output,omitempty"`
	OriginalSize int             `json:"original_size" yaml:"original_size"`
	MinifiedSize int             `json:"minified_size" yaml:"minified_size"`
}

func newResult(t detect.FileType, original, output string) *Result {
	return &Result{
		Type:         t,
		Output:       output,
		OriginalSize: SizeOf(original),
		MinifiedSize: SizeOf(output),
	}
}

// Savings returns the size reduction in percent. It is negative when the
// output grew and 0 for an empty original.
func (r *Result) Savings() float64 {
	return Savings(r.OriginalSize, r.MinifiedSize)
}

// Summary renders the one-line size report.
func (r *Result) Summary() string {
	return fmt.Sprintf("Original: %s | Minified: %s | Saved: %.1f%%",
		FormatBytes(r.OriginalSize), FormatBytes(r.MinifiedSize), r.Savings())
}

// SizeOf returns the UTF-8 encoded length of s in bytes.
func SizeOf(s string) int {
	return len(s)
}

// Savings returns (original-minified)/original as a percentage.
func Savings(original, minified int) float64 {
	if original == 0 {
		return 0
	}
	return float64(original-minified) / float64(original) * 100
}

// FormatBytes renders n as "N B" below 1 KB and "X.Y KB" above.
func FormatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}

// GzipSize returns the size of s after gzip compression at the best level,
// which approximates what a server would send over the wire.
func GzipSize(s string) (int, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write([]byte(s)); err != nil {
		w.Close()
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

// GzipSizes returns the gzip sizes of source and of res.Output. The source is
// trimmed first so the figure matches res.OriginalSize.
func GzipSizes(source string, res *Result) (original, minified int, err error) {
	if original, err = GzipSize(detect.TrimSpace(source)); err != nil {
		return 0, 0, err
	}
	if minified, err = GzipSize(res.Output); err != nil {
		return 0, 0, err
	}
	return original, minified, nil
}
