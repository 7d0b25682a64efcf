// Package project locates the enclosing CMake project and loads its
// crun defaults.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoProject is returned when no CMakeLists.txt is found walking up
// from the starting directory.
var ErrNoProject = errors.New("no CMakeLists.txt found")

// FindRoot walks upward from startDir to the nearest directory
// containing a CMakeLists.txt and returns its absolute path.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	homeDir, _ := os.UserHomeDir()

	for {
		if _, err := os.Stat(filepath.Join(dir, "CMakeLists.txt")); err == nil {
			return dir, nil
		}

		if dir == homeDir {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", ErrNoProject
}
