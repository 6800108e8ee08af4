package session

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

const readChunk = 32 * 1024

// ReadText reads r to the end, checking ctx between chunks. Invalid UTF-8 is
// replaced with U+FFFD so byte sizes match what a text decoder would report.
func ReadText(ctx context.Context, r io.Reader) (string, error) {
	var buf bytes.Buffer
	chunk := make([]byte, readChunk)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, err := r.Read(chunk)
		buf.Write(chunk[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.ToValidUTF8(buf.String(), "�"), nil
}

// ReadFile reads the file at path, or standard input when path is "-".
func ReadFile(ctx context.Context, path string) (string, error) {
	if path == Stdin {
		return ReadText(ctx, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	text, err := ReadText(ctx, f)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	return text, nil
}
