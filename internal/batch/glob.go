package batch

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"minipress/internal/detect"
)

// ExpandGlob expands a glob pattern relative to baseDir and returns the
// matching regular files. ** matches any number of directories and a plain
// directory name expands to everything below it.
func ExpandGlob(baseDir, pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		return expandRecursive(baseDir, pattern)
	}

	matches, err := filepath.Glob(filepath.Join(baseDir, pattern))
	if err != nil {
		return nil, err
	}

	var results []string
	for _, match := range matches {
		files, err := walkFiles(baseDir, match)
		if err != nil {
			return nil, err
		}
		results = append(results, files...)
	}

	// No glob characters: treat the pattern as a plain path
	if len(results) == 0 && !containsGlobChars(pattern) {
		full := filepath.Join(baseDir, pattern)
		if _, err := os.Stat(full); err == nil {
			return walkFiles(baseDir, full)
		}
	}

	return results, nil
}

func expandRecursive(baseDir, pattern string) ([]string, error) {
	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimSuffix(parts[0], string(filepath.Separator))
	prefix = strings.TrimSuffix(prefix, "/")
	suffix := strings.TrimPrefix(parts[1], string(filepath.Separator))
	suffix = strings.TrimPrefix(suffix, "/")

	startDir := baseDir
	if prefix != "" {
		startDir = filepath.Join(baseDir, prefix)
	}

	var results []string
	err := filepath.WalkDir(startDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}

		if suffix != "" {
			matched, _ := filepath.Match(suffix, d.Name())
			if !matched {
				relFromStart, _ := filepath.Rel(startDir, path)
				matched, _ = filepath.Match(suffix, relFromStart)
			}
			if !matched {
				return nil
			}
		}

		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return nil
		}
		results = append(results, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// walkFiles returns root itself when it is a file, or every file below it.
func walkFiles(baseDir, root string) ([]string, error) {
	var results []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return nil
		}
		results = append(results, rel)
		return nil
	})
	return results, err
}

// containsGlobChars checks if a pattern contains glob special characters
func containsGlobChars(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// IsExcluded checks if a path matches any of the exclude patterns
func IsExcluded(path string, excludes []string) bool {
	for _, pattern := range excludes {
		if matchPattern(path, pattern) {
			return true
		}
	}
	return false
}

// matchPattern checks if a path matches a pattern (supports * and **)
func matchPattern(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		parts := strings.SplitN(pattern, "**", 2)
		prefix := strings.TrimSuffix(parts[0], "/")
		suffix := strings.TrimPrefix(parts[1], "/")

		if prefix != "" && !strings.HasPrefix(path, prefix+"/") {
			matched, _ := filepath.Match(prefix+"*", path)
			if !matched {
				return false
			}
		}
		if suffix == "" {
			return true
		}

		if matched, _ := filepath.Match(suffix, filepath.Base(path)); matched {
			return true
		}
		return strings.HasSuffix(path, "/"+suffix) || path == suffix
	}

	// Standard glob matching
	if matched, _ := filepath.Match(pattern, path); matched {
		return true
	}

	// A bare directory name excludes everything below it
	if !containsGlobChars(pattern) && strings.HasPrefix(path, strings.TrimSuffix(pattern, "/")+"/") {
		return true
	}

	// Also try matching against just the filename
	matched, _ := filepath.Match(pattern, filepath.Base(path))
	return matched
}

// Minifiable reports whether path has an extension minipress handles.
func Minifiable(path string) bool {
	_, ok := detect.FromExtension(path)
	return ok
}

// ExpandIncludes expands all include patterns and returns the unique,
// minifiable, non-excluded file paths in lexical order.
func ExpandIncludes(baseDir string, includes []string, excludes []string) ([]string, error) {
	seen := make(map[string]bool)
	var results []string

	for _, pattern := range includes {
		expanded, err := ExpandGlob(baseDir, pattern)
		if err != nil {
			return nil, err
		}

		for _, path := range expanded {
			if seen[path] || !Minifiable(path) || IsExcluded(path, excludes) {
				continue
			}
			seen[path] = true
			results = append(results, path)
		}
	}

	sort.Strings(results)
	return results, nil
}
