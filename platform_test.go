package pyprints

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestLayoutResolve(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "opt", "app")

	tests := []struct {
		platform Platform
		subdir   string
		file     string
	}{
		{PlatformWindows, "win", "python-prints.exe"},
		{PlatformDarwin, "mac", "python-prints"},
		{PlatformLinux, "linux", "python-prints"},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			exe, err := FullLayout().Resolve(root, tt.platform)
			if err != nil {
				t.Fatal(err)
			}

			wantDir := filepath.Join(root, "bin", tt.subdir, "python-prints")
			if exe.Dir != wantDir {
				t.Errorf("Dir = %q, want %q", exe.Dir, wantDir)
			}
			if filepath.Base(exe.Path) != tt.file {
				t.Errorf("Path = %q, want file name %q", exe.Path, tt.file)
			}
			if filepath.Dir(exe.Path) != exe.Dir {
				t.Errorf("Path %q is not inside Dir %q", exe.Path, exe.Dir)
			}
		})
	}
}

func TestLayoutResolveUnsupported(t *testing.T) {
	tests := []struct {
		name     string
		layout   Layout
		platform Platform
	}{
		{"default layout on linux", DefaultLayout(), PlatformLinux},
		{"default layout on darwin", DefaultLayout(), PlatformDarwin},
		{"unknown platform", FullLayout(), PlatformUnknown},
		{"empty layout", Layout{}, PlatformWindows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.layout.Resolve("/opt/app", tt.platform)
			if !errors.Is(err, ErrUnsupportedPlatform) {
				t.Fatalf("err = %v, want ErrUnsupportedPlatform", err)
			}
			var opErr *OpError
			if !errors.As(err, &opErr) || opErr.Op != OpResolve {
				t.Errorf("err = %#v, want OpError with OpResolve", err)
			}
			if !strings.Contains(err.Error(), tt.platform.String()) {
				t.Errorf("err = %q, want to name platform %s", err, tt.platform)
			}
		})
	}
}

func TestLayoutPlatforms(t *testing.T) {
	got := FullLayout().Platforms()
	want := []Platform{PlatformWindows, PlatformDarwin, PlatformLinux}
	if len(got) != len(want) {
		t.Fatalf("Platforms() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Platforms()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := DefaultLayout().Platforms(); len(got) != 1 || got[0] != PlatformWindows {
		t.Errorf("DefaultLayout().Platforms() = %v, want [windows]", got)
	}
}

func TestPlatformFromGOOS(t *testing.T) {
	tests := map[string]Platform{
		"windows": PlatformWindows,
		"darwin":  PlatformDarwin,
		"linux":   PlatformLinux,
		"freebsd": PlatformUnknown,
		"":        PlatformUnknown,
	}
	for goos, want := range tests {
		if got := PlatformFromGOOS(goos); got != want {
			t.Errorf("PlatformFromGOOS(%q) = %v, want %v", goos, got, want)
		}
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in      string
		want    Platform
		wantErr bool
	}{
		{in: "windows", want: PlatformWindows},
		{in: "WIN", want: PlatformWindows},
		{in: "mac", want: PlatformDarwin},
		{in: "macos", want: PlatformDarwin},
		{in: "darwin", want: PlatformDarwin},
		{in: " linux ", want: PlatformLinux},
		{in: "", want: CurrentPlatform()},
		{in: "auto", want: CurrentPlatform()},
		{in: "plan9", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePlatform(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParsePlatform(%q) err = %v, want ErrInvalidArgument", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePlatform(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePlatform(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
