package launcher

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestBinaryPath(t *testing.T) {
	l := newTestLauncher(t, t.TempDir())

	t.Run("posix layout", func(t *testing.T) {
		got := l.BinaryPath(TripleLinuxAMD64)
		want := filepath.Join(l.Root, "vendor", "x86_64-unknown-linux-musl", "viberun", "viberun")
		if got != want {
			t.Errorf("BinaryPath = %v, want %v", got, want)
		}
	})

	t.Run("windows suffix", func(t *testing.T) {
		got := l.BinaryPath(TripleWindowsAMD64)
		if !strings.HasSuffix(got, ".exe") {
			t.Errorf("BinaryPath = %v, want .exe suffix", got)
		}
	})

	t.Run("suffix iff windows", func(t *testing.T) {
		for _, triple := range SupportedTriples {
			got := l.BinaryPath(triple)
			if strings.HasSuffix(got, ".exe") != triple.Windows() {
				t.Errorf("BinaryPath(%v) = %v, suffix mismatch", triple, got)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		for _, triple := range SupportedTriples {
			if l.BinaryPath(triple) != l.BinaryPath(triple) {
				t.Errorf("BinaryPath(%v) not deterministic", triple)
			}
		}
	})
}

func TestVendorRoot(t *testing.T) {
	l := newTestLauncher(t, t.TempDir())

	got := l.VendorRoot(TripleDarwinARM64)
	want := filepath.Join(l.Root, "vendor", "aarch64-apple-darwin")
	if got != want {
		t.Errorf("VendorRoot = %v, want %v", got, want)
	}
}

func TestLayoutOverrides(t *testing.T) {
	l := newTestLauncher(t, t.TempDir(),
		WithVendorDir("dist"),
		WithBinaryDir("bin"),
		WithBinaryName("tool"),
		WithPathDir("extras"),
	)

	got := l.BinaryPath(TripleLinuxARM64)
	want := filepath.Join(l.Root, "dist", "aarch64-unknown-linux-musl", "bin", "tool")
	if got != want {
		t.Errorf("BinaryPath = %v, want %v", got, want)
	}

	gotTools := l.toolsDir(TripleLinuxARM64)
	wantTools := filepath.Join(l.Root, "dist", "aarch64-unknown-linux-musl", "extras")
	if gotTools != wantTools {
		t.Errorf("toolsDir = %v, want %v", gotTools, wantTools)
	}
}
