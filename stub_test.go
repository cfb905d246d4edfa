//go:build linux || darwin

package pyprints

import (
	"os"
	"testing"

	"github.com/google/renameio/v2"
)

// writeStub installs a shell script as the bundled executable under root
// for the host platform and returns its resolved location
func writeStub(t *testing.T, root, body string, mode os.FileMode) Executable {
	t.Helper()

	exe, err := FullLayout().Resolve(root, CurrentPlatform())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(exe.Dir, DirMode); err != nil {
		t.Fatal(err)
	}

	script := "#!/bin/sh\n" + body + "\n"
	if err := renameio.WriteFile(exe.Path, []byte(script), mode); err != nil {
		t.Fatal(err)
	}
	return exe
}

// newStubClient returns a client running a stub executable built from body
func newStubClient(t *testing.T, body string, opts ...Option) (*Client, Executable) {
	t.Helper()

	root := t.TempDir()
	exe := writeStub(t, root, body, ExecMode)

	opts = append([]Option{WithRoot(root), WithLayout(FullLayout())}, opts...)
	c, err := New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c, exe
}

// recordArgsScript writes each argument on its own line to args.txt in
// the working directory, then prints a status line
const recordArgsScript = `printf '%s\n' "$@" > args.txt
echo "printed $2"`
