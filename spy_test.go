package pyprints

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
)

// spyRunner records invocations instead of spawning processes
type spyRunner struct {
	mu    sync.Mutex
	calls [][]string
	inv   invocation
	err   error
}

func (s *spyRunner) run(_ context.Context, _ Executable, args []string) (invocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, slices.Clone(args))
	return s.inv, s.err
}

func (s *spyRunner) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *spyRunner) last() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil
	}
	return s.calls[len(s.calls)-1]
}

// newSpyClient returns a client for the Windows bundle whose invocations
// are captured by the returned spy
func newSpyClient(t *testing.T, opts ...Option) (*Client, *spyRunner) {
	t.Helper()

	opts = append([]Option{WithRoot(t.TempDir()), WithPlatform(PlatformWindows)}, opts...)
	c, err := New(opts...)
	if err != nil {
		t.Fatal(err)
	}

	spy := &spyRunner{}
	c.runner = spy
	return c, spy
}

// writePDF creates a placeholder PDF and returns its absolute path
func writePDF(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4\n%%EOF\n"), FileMode); err != nil {
		t.Fatal(err)
	}
	return path
}
