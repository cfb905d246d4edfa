package pyprints

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Platform identifies an operating system the bundled executable may ship for
type Platform int

const (
	// PlatformUnknown represents a platform with no known bundle
	PlatformUnknown Platform = iota
	// PlatformWindows represents Microsoft Windows
	PlatformWindows
	// PlatformDarwin represents macOS
	PlatformDarwin
	// PlatformLinux represents Linux
	PlatformLinux
)

// Platform string constants
const (
	platformUnknownStr = "unknown"
	platformWindowsStr = "windows"
	platformDarwinStr  = "darwin"
	platformLinuxStr   = "linux"
)

// String returns the GOOS-style name of the Platform
func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return platformWindowsStr
	case PlatformDarwin:
		return platformDarwinStr
	case PlatformLinux:
		return platformLinuxStr
	case PlatformUnknown:
		fallthrough
	default:
		return platformUnknownStr
	}
}

// PlatformFromGOOS maps a runtime.GOOS value to a Platform
func PlatformFromGOOS(goos string) Platform {
	switch goos {
	case platformWindowsStr:
		return PlatformWindows
	case platformDarwinStr:
		return PlatformDarwin
	case platformLinuxStr:
		return PlatformLinux
	default:
		return PlatformUnknown
	}
}

// CurrentPlatform returns the Platform of the running process
func CurrentPlatform() Platform {
	return PlatformFromGOOS(runtime.GOOS)
}

// ParsePlatform parses a user-supplied platform name.
// It accepts GOOS names and the bundle directory aliases (win, mac).
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return CurrentPlatform(), nil
	case platformWindowsStr, "win":
		return PlatformWindows, nil
	case platformDarwinStr, "mac", "macos":
		return PlatformDarwin, nil
	case platformLinuxStr:
		return PlatformLinux, nil
	default:
		return PlatformUnknown, fmt.Errorf("%w: unknown platform %q", ErrInvalidArgument, s)
	}
}

// Target describes where a platform's executable lives inside the bundle
type Target struct {
	// Subdir is the directory under BinDir for this platform
	Subdir string
	// FileName is the executable file name
	FileName string
}

// Layout maps each supported platform to its bundle target
type Layout map[Platform]Target

// DefaultLayout returns the layout of the shipped bundle, which only
// includes the Windows executable.
func DefaultLayout() Layout {
	return Layout{
		PlatformWindows: {Subdir: "win", FileName: ToolName + ".exe"},
	}
}

// FullLayout returns a layout for bundles shipping Windows, macOS and Linux executables
func FullLayout() Layout {
	return Layout{
		PlatformWindows: {Subdir: "win", FileName: ToolName + ".exe"},
		PlatformDarwin:  {Subdir: "mac", FileName: ToolName},
		PlatformLinux:   {Subdir: "linux", FileName: ToolName},
	}
}

// Executable is a resolved bundled executable
type Executable struct {
	// Dir is the directory holding the executable; used as the working directory
	Dir string
	// Path is the full path to the executable
	Path string
}

// Resolve returns the executable for platform p under root.
// It fails with ErrUnsupportedPlatform when the layout has no entry for p.
func (l Layout) Resolve(root string, p Platform) (Executable, error) {
	target, ok := l[p]
	if !ok || target.FileName == "" {
		return Executable{}, &OpError{
			Op:   OpResolve,
			Path: root,
			Err:  fmt.Errorf("%w: no bundled executable for %s", ErrUnsupportedPlatform, p),
		}
	}

	dir := filepath.Join(root, BinDir, target.Subdir, ToolDir)
	return Executable{
		Dir:  dir,
		Path: filepath.Join(dir, target.FileName),
	}, nil
}

// Platforms returns the platforms the layout supports in a stable order
func (l Layout) Platforms() []Platform {
	var out []Platform
	for _, p := range []Platform{PlatformWindows, PlatformDarwin, PlatformLinux} {
		if _, ok := l[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
