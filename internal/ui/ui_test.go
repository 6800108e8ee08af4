package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"white", "dark", "mono"}, ThemeNames())
}

func TestLookupTheme(t *testing.T) {
	th, err := LookupTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, "dark", th.Name)

	_, err = LookupTheme("neon")
	assert.Error(t, err)

	assert.Equal(t, "white", ThemeOrDefault("neon").Name)
}

func TestNextTheme(t *testing.T) {
	th := DefaultTheme()
	th = NextTheme(th)
	assert.Equal(t, "dark", th.Name)
	th = NextTheme(th)
	assert.Equal(t, "mono", th.Name)
	th = NextTheme(th)
	assert.Equal(t, "white", th.Name)
}

func TestPrinterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(DefaultTheme(), &buf)
	require.True(t, p.Plain)

	p.Success("done %d", 3)
	p.Error("bad")
	p.Info("note")
	p.Warning("careful")
	p.KeyValue("Type", "css")
	p.Stats("Original: 10 B")

	assert.Equal(t, "✓ done 3\n✗ bad\n• note\n⚠ careful\n  Type: css\nOriginal: 10 B\n", buf.String())
}

func TestPrinterHeader(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(DefaultTheme(), &buf)

	assert.Equal(t, "▸ Audit", p.Header("Audit"))

	p.PrintHeader("1.2.3")
	out := buf.String()
	assert.Contains(t, out, p.Divider())
	assert.Contains(t, out, " Version: 1.2.3")
}
