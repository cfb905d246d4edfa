// Package main is the pyprints command line tool. It lists printers, sets
// the default printer and prints PDF files through the bundled
// python-prints executable.
package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/axondata/go-pyprints"
)

// shutdownSignals cancel the command context
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(pyprints.GetVersion().Version),
		fang.WithNotifySignal(shutdownSignals...),
	); err != nil {
		os.Exit(1)
	}
}
