package pyprints

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"
)

// folderState tracks pending and completed jobs of a hot-folder watch.
// It is only touched from the watch goroutine.
type folderState struct {
	timers  map[string]*time.Timer
	printed map[string]time.Time
}

// WatchFolder prints every PDF written into dir. Each file is printed once
// it has been quiet for WatchDebounce, and again only if its modification
// time changes. Files present before the watch starts are left alone.
//
// Every attempt is reported on the returned channel. The cleanup function
// stops the watch, cancels an in-flight job and closes the channel.
//
//nolint:gocyclo // event loop multiplexes fsnotify, timers and shutdown
func (c *Client) WatchFolder(ctx context.Context, dir string, opts PrintOptions) (<-chan PrintEvent, WatchCleanupFunc, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, &OpError{Op: OpWatch, Path: dir, Err: err}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, &OpError{Op: OpWatch, Path: absDir, Err: err}
	}

	if err := watcher.Add(absDir); err != nil {
		_ = watcher.Close()
		return nil, nil, &OpError{Op: OpWatch, Path: absDir, Err: err}
	}

	ch := make(chan PrintEvent, 10)
	ready := make(chan string, 16)

	jobCtx, cancelJobs := context.WithCancel(ctx)

	state := &folderState{
		timers:  make(map[string]*time.Timer),
		printed: make(map[string]time.Time),
	}

	sctx := stopper.WithContext(ctx)

	// Runs after every goroutine below has returned, so nothing can
	// send on ch once it is closed.
	sctx.Defer(func() {
		for _, t := range state.timers {
			t.Stop()
		}
		cancelJobs()
		_ = watcher.Close()
		close(ch)
	})

	cleanup := func() error {
		sctx.Stop(100 * time.Millisecond)
		return sctx.Wait()
	}

	emit := func(ev PrintEvent) bool {
		select {
		case ch <- ev:
			return true
		case <-sctx.Stopping():
			return false
		}
	}

	schedule := func(path string) {
		if t, ok := state.timers[path]; ok {
			t.Stop()
		}
		state.timers[path] = time.AfterFunc(c.WatchDebounce, func() {
			select {
			case ready <- path:
			case <-sctx.Stopping():
			}
		})
	}

	printFile := func(path string) bool {
		delete(state.timers, path)

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return true
		}
		if last, ok := state.printed[path]; ok && last.Equal(info.ModTime()) {
			return true
		}
		state.printed[path] = info.ModTime()

		res, err := c.PrintPDF(jobCtx, path, opts)
		if err != nil && sctx.IsStopping() {
			return false
		}
		return emit(PrintEvent{Path: path, Result: res, Err: err})
	}

	// Cancel the running job as soon as a stop is requested
	sctx.Go(func(sctx *stopper.Context) error {
		<-sctx.Stopping()
		cancelJobs()
		return nil
	})

	sctx.Go(func(sctx *stopper.Context) error {
		for !sctx.IsStopping() {
			select {
			case <-sctx.Stopping():
				return nil

			case path := <-ready:
				if !printFile(path) {
					return nil
				}

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				if !isPDF(event.Name) {
					continue
				}
				schedule(event.Name)

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil && !emit(PrintEvent{Path: absDir, Err: &OpError{Op: OpWatch, Path: absDir, Err: err}}) {
					return nil
				}
			}
		}
		return nil
	})

	return ch, cleanup, nil
}

func isPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
