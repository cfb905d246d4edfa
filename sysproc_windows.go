//go:build windows

package pyprints

import (
	"os/exec"
	"syscall"
)

// hideWindow keeps the child from opening a console window
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
