package pyprints

import "time"

// Bundle layout constants
const (
	// BinDir is the subdirectory of the install root holding platform bundles
	BinDir = "bin"

	// ToolDir is the directory inside each platform bundle holding the executable
	ToolDir = "python-prints"

	// ToolName is the base name of the bundled executable
	ToolName = "python-prints"

	// RootEnv names the environment variable that overrides the install root
	RootEnv = "PYPRINTS_ROOT"

	// DefaultWatchDebounce is the default settle time before a dropped PDF is printed
	DefaultWatchDebounce = 250 * time.Millisecond

	// DefaultSpoolDirName is the directory under os.TempDir used for spooled jobs
	DefaultSpoolDirName = "pyprints-spool"
)

// File modes
const (
	// DirMode is the default mode for created directories
	DirMode = 0o755

	// FileMode is the default mode for spooled files
	FileMode = 0o644

	// ExecMode is the mode applied to the bundled executable
	ExecMode = 0o755
)

// Executable commands understood by the bundled tool
const (
	cmdList       = "list"
	cmdSetDefault = "set-default"
	cmdPrint      = "print"

	flagJSON    = "--json"
	flagPrinter = "--printer"
	flagCopies  = "--copies"
)

// Operation represents a pyprints operation type
type Operation int

const (
	// OpUnknown represents an unknown operation
	OpUnknown Operation = iota
	// OpResolve locates the bundled executable
	OpResolve
	// OpList enumerates printers
	OpList
	// OpSetDefault changes the OS default printer
	OpSetDefault
	// OpPrint submits a PDF to a printer
	OpPrint
	// OpWatch watches a hot folder
	OpWatch
	// OpSpool writes a PDF stream to the spool directory
	OpSpool
)

// Operation string constants
const (
	opUnknownStr    = "unknown"
	opResolveStr    = "resolve"
	opListStr       = "list"
	opSetDefaultStr = "set-default"
	opPrintStr      = "print"
	opWatchStr      = "watch"
	opSpoolStr      = "spool"
)

// String returns the string representation of an Operation
func (op Operation) String() string {
	switch op {
	case OpResolve:
		return opResolveStr
	case OpList:
		return opListStr
	case OpSetDefault:
		return opSetDefaultStr
	case OpPrint:
		return opPrintStr
	case OpWatch:
		return opWatchStr
	case OpSpool:
		return opSpoolStr
	default:
		return opUnknownStr
	}
}
