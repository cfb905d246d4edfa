package pyprints

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const defaultSpoolName = "document.pdf"

// PrintReader stages the PDF read from r in the spool directory and prints
// it. The staged copy is written atomically and removed once the job ends,
// whether or not it succeeded.
func (c *Client) PrintReader(ctx context.Context, name string, r io.Reader, opts PrintOptions) (PrintResult, error) {
	if r == nil {
		return PrintResult{}, &OpError{Op: OpSpool, Path: name, Err: fmt.Errorf("%w: reader required", ErrInvalidArgument)}
	}

	if err := os.MkdirAll(c.SpoolDir, DirMode); err != nil {
		return PrintResult{}, &OpError{Op: OpSpool, Path: c.SpoolDir, Err: err}
	}

	jobID := uuid.NewString()
	jobDir := filepath.Join(c.SpoolDir, "job-"+jobID)
	if err := os.Mkdir(jobDir, DirMode); err != nil {
		return PrintResult{}, &OpError{Op: OpSpool, Path: jobDir, Err: err}
	}
	defer func() { _ = os.RemoveAll(jobDir) }()

	target := filepath.Join(jobDir, spoolName(name))
	if err := writeAtomic(target, r); err != nil {
		return PrintResult{}, &OpError{Op: OpSpool, Path: target, Err: err}
	}

	c.Logger.Debug("spooled document", "job", jobID, "path", target)

	return c.PrintPDF(ctx, target, opts)
}

// spoolName reduces name to a safe base name ending in .pdf
func spoolName(name string) string {
	base := strings.TrimLeft(filepath.Base(filepath.Clean(name)), ".")
	if base == "" || base == string(filepath.Separator) {
		return defaultSpoolName
	}
	if !isPDF(base) {
		base += ".pdf"
	}
	return base
}
