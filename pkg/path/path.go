package path

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot walks upward from startDir until it finds a directory containing
// targetName. isDir constrains whether the target must be a directory.
func FindRoot(startDir, targetName string, isDir bool) (string, error) {
	for dir := startDir; ; {
		if info, err := os.Stat(filepath.Join(dir, targetName)); err == nil && info.IsDir() == isDir {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find %s starting from %s", targetName, startDir)
		}
		dir = parent
	}
}
