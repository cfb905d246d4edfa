//go:build !windows

package pyprints

import (
	"io"

	"github.com/google/renameio/v2"
)

// writeAtomic streams r into path through a pending file that only
// replaces path once fully written
func writeAtomic(path string, r io.Reader) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(FileMode))
	if err != nil {
		return err
	}
	defer func() { _ = pf.Cleanup() }()

	if _, err := io.Copy(pf, r); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}
