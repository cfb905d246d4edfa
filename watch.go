package pyprints

// PrintEvent reports one print attempt made by a hot-folder watch
type PrintEvent struct {
	// Path is the PDF that was printed
	Path string
	// Result is set when the job succeeded
	Result PrintResult
	// Err is set when the job or the watcher failed
	Err error
}

// WatchCleanupFunc stops a watch and waits for its goroutines to exit.
// The event channel is closed once it returns.
type WatchCleanupFunc func() error
