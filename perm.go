package pyprints

import (
	"fmt"
	"os"
)

// bestEffortChmod marks the executable at path with mode. It runs before
// every invocation on non-Windows platforms. The returned error is
// informational only: callers log it and proceed, and an unusable binary
// surfaces as ErrSpawn at start time.
func bestEffortChmod(path string, mode os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm() == mode.Perm() {
		return nil
	}
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
