package pyprints

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Manager submits batches of print jobs concurrently through one Client.
// It bounds the number of live tool processes and collects per-file errors.
type Manager struct {
	// Client runs the individual jobs
	Client *Client
	// Concurrency is the maximum number of concurrent jobs
	Concurrency int
	// Timeout is the per-job timeout; zero means no timeout
	Timeout time.Duration
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithConcurrency sets the maximum number of concurrent jobs
func WithConcurrency(n int) ManagerOption {
	return func(m *Manager) {
		m.Concurrency = n
	}
}

// WithTimeout sets the per-job timeout
func WithTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.Timeout = d
	}
}

// NewManager creates a new Manager with default settings
func NewManager(client *Client, opts ...ManagerOption) *Manager {
	m := &Manager{
		Client:      client,
		Concurrency: 4,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.Concurrency < 1 {
		m.Concurrency = 1
	}

	return m
}

// PrintAll prints every path with the same options. Results are keyed by
// path; failed jobs are absent from the map and reported in a *MultiError.
func (m *Manager) PrintAll(ctx context.Context, opts PrintOptions, paths ...string) (map[string]PrintResult, error) {
	results := make(map[string]PrintResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	// Semaphore for concurrency control
	sem := make(chan struct{}, m.Concurrency)

	var wg sync.WaitGroup
	var mu sync.Mutex
	merr := &MultiError{}

	for _, path := range paths {
		wg.Add(1)
		go func(file string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				merr.Add(&OpError{Op: OpPrint, Path: file, Err: ctx.Err()})
				mu.Unlock()
				return
			}

			opCtx := ctx
			if m.Timeout > 0 {
				var cancel context.CancelFunc
				opCtx, cancel = context.WithTimeout(ctx, m.Timeout)
				defer cancel()
			}

			res, err := m.Client.PrintPDF(opCtx, file, opts)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				var opErr *OpError
				if !errors.As(err, &opErr) {
					err = &OpError{Op: OpPrint, Path: file, Err: err}
				}
				merr.Add(err)
				return
			}
			results[file] = res
		}(path)
	}

	wg.Wait()

	return results, merr.Err()
}
