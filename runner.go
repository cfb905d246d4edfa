package pyprints

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// invocation is the collected outcome of one finished process
type invocation struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// runner spawns the bundled executable. It returns an error only when the
// process could not be started or was cancelled; exit codes are reported
// in the invocation.
type runner interface {
	run(ctx context.Context, exe Executable, args []string) (invocation, error)
}

// execRunner runs the executable with os/exec
type execRunner struct {
	env []string
}

func (r *execRunner) run(ctx context.Context, exe Executable, args []string) (invocation, error) {
	cmd := exec.CommandContext(ctx, exe.Path, args...)
	cmd.Dir = exe.Dir
	cmd.Env = append(cmd.Environ(), r.env...)
	hideWindow(cmd)

	// os/exec copies both pipes from separate goroutines, so neither
	// stream can fill up and stall the child.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return invocation{}, err
	}

	err := cmd.Wait()
	inv := invocation{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}
	if err == nil {
		return inv, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return invocation{}, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		inv.ExitCode = exitErr.ExitCode()
		return inv, nil
	}
	return invocation{}, err
}
