package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestExpandGlob(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"index.html":         "x",
		"about.htm":          "x",
		"app.js":             "x",
		"style.css":          "x",
		"src/main.js":        "x",
		"src/util.js":        "x",
		"src/lib/helper.js":  "x",
		"assets/site.css":    "x",
		"assets/logo.svg":    "x",
		"assets/fonts/a.css": "x",
	})

	tests := []struct {
		name     string
		pattern  string
		expected int
	}{
		{"single wildcard js", "*.js", 1},
		{"all css files", "*.css", 1},
		{"directory", "src", 3},
		{"recursive js", "**/*.js", 4},
		{"recursive css under dir", "assets/**/*.css", 2},
		{"specific file", "index.html", 1},
		{"subdirectory wildcard", "src/*.js", 2},
		{"assets directory", "assets", 3},
		{"no match", "*.php", 0},
		{"missing plain path", "nope.html", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := ExpandGlob(dir, tt.pattern)
			require.NoError(t, err)
			assert.Len(t, results, tt.expected, "got %v", results)
		})
	}
}

func TestContainsGlobChars(t *testing.T) {
	tests := []struct {
		pattern  string
		expected bool
	}{
		{"*.js", true},
		{"file?.css", true},
		{"[abc].html", true},
		{"file.html", false},
		{"src/app.js", false},
		{"**/*.css", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.expected, containsGlobChars(tt.pattern))
		})
	}
}

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		excludes []string
		expected bool
	}{
		{"no excludes", "app.js", nil, false},
		{"exact match", "app.js", []string{"app.js"}, true},
		{"wildcard match", "app.min.js", []string{"*.min.js"}, true},
		{"no match", "app.js", []string{"*.css"}, false},
		{"directory glob", "vendor/jquery.js", []string{"vendor/*"}, true},
		{"bare directory", "vendor/lib/x.js", []string{"vendor"}, true},
		{"bare directory prefix only", "vendors.js", []string{"vendor"}, false},
		{"recursive exclude", "src/lib/file.js", []string{"**/*.js"}, true},
		{"recursive under prefix", "node_modules/a/b.js", []string{"node_modules/**"}, true},
		{"multiple excludes match", "a.css", []string{"*.js", "*.css"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsExcluded(tt.path, tt.excludes))
		})
	}
}

func TestExpandIncludes(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"index.html":      "x",
		"app.js":          "x",
		"app.min.js":      "x",
		"readme.md":       "x",
		"vendor/lib.js":   "x",
		"css/site.css":    "x",
		"css/print.css":   "x",
		"images/logo.png": "x",
	})

	tests := []struct {
		name     string
		includes []string
		excludes []string
		expected []string
	}{
		{"everything minifiable", []string{"."}, nil,
			[]string{"app.js", "app.min.js", "css/print.css", "css/site.css", "index.html", "vendor/lib.js"}},
		{"exclude vendor and min", []string{"**/*.js"}, []string{"vendor", "*.min.js"},
			[]string{"app.js"}},
		{"duplicates collapse", []string{"*.js", "app.js"}, nil,
			[]string{"app.js", "app.min.js"}},
		{"non minifiable ignored", []string{"readme.md", "images"}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := ExpandIncludes(dir, tt.includes, tt.excludes)
			require.NoError(t, err)
			var want []string
			for _, p := range tt.expected {
				want = append(want, filepath.FromSlash(p))
			}
			assert.Equal(t, want, results)
		})
	}
}
