package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// createUniqueDir creates a fresh directory under base, preferring the
// given name and appending a numeric suffix until a free name is found.
func createUniqueDir(base, preferred string) (string, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", fmt.Errorf("%w: create base path %s: %w", ErrIOFailure, base, err)
	}

	name := preferred
	for i := 1; ; i++ {
		path := filepath.Join(base, name)
		err := os.Mkdir(path, 0o755)
		if err == nil {
			return path, nil
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("%w: create run folder %s: %w", ErrIOFailure, path, err)
		}
		name = preferred + strconv.Itoa(i)
	}
}
