package pyprints

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// Client runs the bundled python-prints executable for one install root.
// A Client is safe for concurrent use: each call spawns its own process
// and no state is shared between invocations.
type Client struct {
	// Root is the install root containing the bin/ bundle directory
	Root string

	// Platform selects the bundle entry to run
	Platform Platform

	// Layout maps platforms to bundle locations
	Layout Layout

	// StrictPaths requires PrintPDF paths to be absolute and to exist
	StrictPaths bool

	// Env holds extra KEY=VALUE pairs appended to the inherited environment
	Env []string

	// SpoolDir is where PrintReader stages documents
	SpoolDir string

	// WatchDebounce is the settle time before a dropped PDF is printed
	WatchDebounce time.Duration

	// Logger receives debug traces; discarded unless set
	Logger *log.Logger

	runner runner
}

// Option configures a Client
type Option func(*Client)

// WithRoot sets the install root
func WithRoot(root string) Option {
	return func(c *Client) {
		c.Root = root
	}
}

// WithPlatform overrides the detected platform
func WithPlatform(p Platform) Option {
	return func(c *Client) {
		c.Platform = p
	}
}

// WithLayout replaces the platform-to-bundle table
func WithLayout(l Layout) Option {
	return func(c *Client) {
		c.Layout = l
	}
}

// WithStrictPaths toggles the absolute-path and existence checks in PrintPDF
func WithStrictPaths(strict bool) Option {
	return func(c *Client) {
		c.StrictPaths = strict
	}
}

// WithEnv appends KEY=VALUE pairs to the executable's environment
func WithEnv(env ...string) Option {
	return func(c *Client) {
		c.Env = append(c.Env, env...)
	}
}

// WithSpoolDir sets the directory used by PrintReader
func WithSpoolDir(dir string) Option {
	return func(c *Client) {
		c.SpoolDir = dir
	}
}

// WithWatchDebounce sets the settle time used by WatchFolder
func WithWatchDebounce(d time.Duration) Option {
	return func(c *Client) {
		c.WatchDebounce = d
	}
}

// WithLogger sets the logger used for debug traces
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.Logger = l
	}
}

// New creates a Client. Without WithRoot the root is taken from
// $PYPRINTS_ROOT, falling back to the directory of the running program.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		Platform:      CurrentPlatform(),
		Layout:        DefaultLayout(),
		StrictPaths:   true,
		SpoolDir:      filepath.Join(os.TempDir(), DefaultSpoolDirName),
		WatchDebounce: DefaultWatchDebounce,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.Root == "" {
		root, err := defaultRoot()
		if err != nil {
			return nil, fmt.Errorf("resolving install root: %w", err)
		}
		c.Root = root
	}

	absRoot, err := filepath.Abs(c.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving install root: %w", err)
	}
	c.Root = absRoot

	// Staged jobs go through PrintPDF, which only accepts absolute paths
	// in strict mode.
	if c.SpoolDir == "" {
		c.SpoolDir = filepath.Join(os.TempDir(), DefaultSpoolDirName)
	}
	absSpool, err := filepath.Abs(c.SpoolDir)
	if err != nil {
		return nil, fmt.Errorf("resolving spool directory: %w", err)
	}
	c.SpoolDir = absSpool

	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	c.runner = &execRunner{env: c.Env}

	return c, nil
}

func defaultRoot() (string, error) {
	if root := os.Getenv(RootEnv); root != "" {
		return root, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// Executable resolves the bundled executable for the client's platform
func (c *Client) Executable() (Executable, error) {
	return c.Layout.Resolve(c.Root, c.Platform)
}

// invoke runs the executable once with args and returns its trimmed stdout
func (c *Client) invoke(ctx context.Context, op Operation, args []string) (string, error) {
	exe, err := c.Executable()
	if err != nil {
		return "", err
	}

	if c.Platform != PlatformWindows {
		if err := bestEffortChmod(exe.Path, ExecMode); err != nil {
			c.Logger.Debug("ignoring permission adjustment failure", "path", exe.Path, "err", err)
		}
	}

	start := time.Now()
	inv, err := c.runner.run(ctx, exe, args)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", &OpError{Op: op, Path: exe.Path, Err: err}
		}
		return "", &OpError{Op: op, Path: exe.Path, Err: fmt.Errorf("%w: %w", ErrSpawn, err)}
	}

	c.Logger.Debug("invocation finished",
		"op", op,
		"args", args,
		"exit", inv.ExitCode,
		"elapsed", time.Since(start),
	)

	if inv.ExitCode != 0 {
		return "", newToolError(op, inv)
	}
	return inv.Stdout, nil
}

// List enumerates printers and the current OS default
func (c *Client) List(ctx context.Context) (Printers, error) {
	out, err := c.invoke(ctx, OpList, []string{cmdList, flagJSON})
	if err != nil {
		return Printers{}, err
	}

	if out == "" {
		out = "{}"
	}

	var p Printers
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		return Printers{}, &OpError{Op: OpList, Path: c.Root, Err: fmt.Errorf("%w: %w", ErrParse, err)}
	}
	return p, nil
}

// SetDefault makes printer the OS default printer
func (c *Client) SetDefault(ctx context.Context, printer string) error {
	if printer == "" {
		return &OpError{Op: OpSetDefault, Err: fmt.Errorf("%w: printer name required", ErrInvalidArgument)}
	}

	_, err := c.invoke(ctx, OpSetDefault, []string{cmdSetDefault, printer})
	return err
}

// PrintOptions configures a print job. Zero values are omitted from the
// command line.
type PrintOptions struct {
	// Printer is the target printer; the OS default is used when empty
	Printer string
	// Copies is the number of copies
	Copies int
}

// PrintResult is the outcome of a successful print job
type PrintResult struct {
	// OK is always true for a returned result
	OK bool
	// Message is the tool's trimmed status output
	Message string
}

// PrintPDF submits the PDF at path to a printer
func (c *Client) PrintPDF(ctx context.Context, path string, opts PrintOptions) (PrintResult, error) {
	path, err := c.checkPrintPath(path)
	if err != nil {
		return PrintResult{}, err
	}
	if opts.Copies < 0 {
		return PrintResult{}, &OpError{Op: OpPrint, Path: path, Err: fmt.Errorf("%w: copies must not be negative", ErrInvalidArgument)}
	}

	msg, err := c.invoke(ctx, OpPrint, printArgs(path, opts))
	if err != nil {
		return PrintResult{}, err
	}
	return PrintResult{OK: true, Message: msg}, nil
}

func (c *Client) checkPrintPath(path string) (string, error) {
	if path == "" {
		return "", &OpError{Op: OpPrint, Err: fmt.Errorf("%w: file path required", ErrInvalidArgument)}
	}

	if !c.StrictPaths {
		// The child runs in the bundle directory, so anchor relative
		// paths to the caller's working directory.
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", &OpError{Op: OpPrint, Path: path, Err: err}
		}
		return abs, nil
	}

	if !filepath.IsAbs(path) {
		return "", &OpError{Op: OpPrint, Path: path, Err: ErrFileNotFound}
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", &OpError{Op: OpPrint, Path: path, Err: ErrFileNotFound}
	}
	return path, nil
}

func printArgs(path string, opts PrintOptions) []string {
	args := []string{cmdPrint, path}
	if opts.Printer != "" {
		args = append(args, flagPrinter, opts.Printer)
	}
	if opts.Copies > 0 {
		args = append(args, flagCopies, strconv.Itoa(opts.Copies))
	}
	return args
}
