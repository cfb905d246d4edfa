//go:build linux || darwin

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/renameio/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axondata/go-pyprints"
)

const stubScript = `#!/bin/sh
case "$1" in
  list) echo '{"printers":["A","B"],"default":"B"}' ;;
  set-default)
    [ "$2" = "A" ] || { echo "Printer not found: $2" >&2; exit 1; }
    echo "Default printer set to: $2" ;;
  print) echo "printed $2" ;;
esac
`

// newStubRoot installs the stub executable for the host platform
func newStubRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	exe, err := pyprints.FullLayout().Resolve(root, pyprints.CurrentPlatform())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(exe.Dir, 0o755))
	require.NoError(t, renameio.WriteFile(exe.Path, []byte(stubScript), 0o755))
	return root
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--root", newStubRoot(t), "--all-platforms"}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestListCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "Printers:\n  - A\n  - B (default)\n", out)
}

func TestListCommandJSON(t *testing.T) {
	out, _, err := runCLI(t, "", "list", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"printers":["A","B"],"default":"B"}`, out)
}

func TestSetDefaultCommand(t *testing.T) {
	_, _, err := runCLI(t, "", "set-default", "A")
	require.NoError(t, err)

	_, _, err = runCLI(t, "", "set-default", "Z")
	require.Error(t, err)
	assert.Equal(t, "Printer not found: Z", err.Error())
}

func TestPrintCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))

	out, _, err := runCLI(t, "", "print", path, "--printer", "A", "--copies", "2")
	require.NoError(t, err)
	assert.Equal(t, "printed "+path+"\n", out)
}

func TestPrintCommandStdin(t *testing.T) {
	out, _, err := runCLI(t, "%PDF-1.4", "--spool-dir", t.TempDir(), "print", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "printed "), out)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "stdin.pdf"), out)
}

func TestPrintCommandMissingFile(t *testing.T) {
	_, _, err := runCLI(t, "", "print", filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, pyprints.ErrFileNotFound)
}

func TestPrintAllCommand(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.pdf", "b.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
		paths = append(paths, path)
	}

	_, logs, err := runCLI(t, "", append([]string{"print-all", "--concurrency", "2"}, paths...)...)
	require.NoError(t, err)
	for _, path := range paths {
		assert.Contains(t, logs, path)
	}
}

// lockedBuffer lets the test read logs while the command writes them
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchCommand(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logs := &lockedBuffer{}
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(logs)
	cmd.SetArgs([]string{"--root", newStubRoot(t), "--all-platforms", "--debounce", "20ms", "watch", dir})

	done := make(chan error, 1)
	go func() {
		done <- cmd.ExecuteContext(ctx)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "watching for PDF files")
	}, 2*time.Second, 10*time.Millisecond, logs.String())

	path := filepath.Join(dir, "drop.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))

	require.Eventually(t, func() bool {
		out := logs.String()
		return strings.Contains(out, "printed "+path)
	}, 2*time.Second, 10*time.Millisecond, logs.String())

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not exit after cancellation")
	}
}
