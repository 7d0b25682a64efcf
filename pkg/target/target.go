// Package target derives CMake target names from source file paths.
package target

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned when the source file does not live under
// the project root.
var ErrOutsideRoot = errors.New("file is outside the project root")

// Name derives the build target for file within the project rooted at
// root. The target is the file's path relative to root with the
// extension stripped, separators replaced by underscores, and the
// lower-cased extension appended. Both paths must be absolute.
func Name(file, root string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", fmt.Errorf("deriving target for %s: %w", file, ErrOutsideRoot)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("deriving target for %s: %w", file, ErrOutsideRoot)
	}

	ext := strings.ToLower(filepath.Ext(rel))
	base := strings.TrimSuffix(rel, filepath.Ext(rel))
	base = strings.ReplaceAll(filepath.ToSlash(base), "/", "_")

	if ext == "" {
		return base, nil
	}
	return base + "_" + strings.TrimPrefix(ext, "."), nil
}
