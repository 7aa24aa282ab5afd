package launcher

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveTriple(t *testing.T) {
	tests := []struct {
		name   string
		osName string
		arch   string
		want   Triple
	}{
		{"linux x86_64", "linux", "x86_64", TripleLinuxAMD64},
		{"linux amd64 alias", "linux", "amd64", TripleLinuxAMD64},
		{"linux aarch64", "linux", "aarch64", TripleLinuxARM64},
		{"linux arm64 alias", "linux", "arm64", TripleLinuxARM64},
		{"linux2 prefix", "linux2", "x86_64", TripleLinuxAMD64},
		{"darwin x86_64", "darwin", "x86_64", TripleDarwinAMD64},
		{"darwin amd64 alias", "darwin", "amd64", TripleDarwinAMD64},
		{"darwin arm64", "darwin", "arm64", TripleDarwinARM64},
		{"darwin aarch64 alias", "darwin", "aarch64", TripleDarwinARM64},
		{"windows amd64", "windows", "amd64", TripleWindowsAMD64},
		{"win32 x86_64", "win32", "x86_64", TripleWindowsAMD64},
		{"cygwin amd64", "cygwin", "amd64", TripleWindowsAMD64},
		{"msys arm64", "msys", "arm64", TripleWindowsARM64},
		{"windows aarch64", "windows", "aarch64", TripleWindowsARM64},
		{"mixed case", "Linux", "AMD64", TripleLinuxAMD64},
		{"upper case windows", "WIN32", "X86_64", TripleWindowsAMD64},
		{"surrounding space", " darwin ", " arm64 ", TripleDarwinARM64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTriple(tt.osName, tt.arch)
			if err != nil {
				t.Fatalf("ResolveTriple(%q, %q) error: %v", tt.osName, tt.arch, err)
			}
			if got != tt.want {
				t.Errorf("ResolveTriple(%q, %q) = %v, want %v", tt.osName, tt.arch, got, tt.want)
			}
		})
	}
}

func TestResolveTripleAliasesAgree(t *testing.T) {
	// amd64/x86_64 and arm64/aarch64 must resolve identically on every
	// supported OS.
	for _, osName := range []string{"linux", "darwin", "windows", "win32"} {
		for _, pair := range [][2]string{{"amd64", "x86_64"}, {"arm64", "aarch64"}} {
			a, errA := ResolveTriple(osName, pair[0])
			b, errB := ResolveTriple(osName, pair[1])
			if errA != nil || errB != nil {
				t.Fatalf("ResolveTriple(%q, %v) errors: %v, %v", osName, pair, errA, errB)
			}
			if a != b {
				t.Errorf("ResolveTriple(%q): %q -> %v but %q -> %v", osName, pair[0], a, pair[1], b)
			}
		}
	}
}

func TestResolveTripleUnsupported(t *testing.T) {
	tests := []struct {
		name   string
		osName string
		arch   string
	}{
		{"freebsd", "freebsd", "amd64"},
		{"plan9", "plan9", "amd64"},
		{"linux mips", "linux", "mips"},
		{"darwin 386", "darwin", "386"},
		{"windows arm", "windows", "arm"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveTriple(tt.osName, tt.arch)
			if err == nil {
				t.Fatalf("ResolveTriple(%q, %q) succeeded, want unsupported-platform", tt.osName, tt.arch)
			}
			if !errors.Is(err, ErrUnsupportedPlatform) {
				t.Errorf("error = %v, want ErrUnsupportedPlatform", err)
			}
			if tt.osName != "" && !strings.Contains(err.Error(), tt.osName) {
				t.Errorf("error %q does not name the OS %q", err, tt.osName)
			}
			if tt.arch != "" && !strings.Contains(err.Error(), strings.ToLower(tt.arch)) {
				t.Errorf("error %q does not name the architecture %q", err, tt.arch)
			}

			var lerr *LaunchError
			if !errors.As(err, &lerr) {
				t.Fatalf("error type = %T, want *LaunchError", err)
			}
			if lerr.Stage != StageResolve {
				t.Errorf("Stage = %v, want %v", lerr.Stage, StageResolve)
			}
		})
	}
}

func TestTripleWindows(t *testing.T) {
	for _, triple := range SupportedTriples {
		isWindows := triple == TripleWindowsAMD64 || triple == TripleWindowsARM64
		if triple.Windows() != isWindows {
			t.Errorf("%v.Windows() = %v, want %v", triple, triple.Windows(), isWindows)
		}
	}
}
