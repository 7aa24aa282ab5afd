package launcher

import "strings"

// Triple identifies one of the prebuilt binary targets shipped in the
// vendored tree. The value is the directory name under <root>/vendor.
type Triple string

// Supported target triples
const (
	// TripleLinuxAMD64 is x86-64 Linux (static musl build)
	TripleLinuxAMD64 Triple = "x86_64-unknown-linux-musl"
	// TripleLinuxARM64 is 64-bit ARM Linux (static musl build)
	TripleLinuxARM64 Triple = "aarch64-unknown-linux-musl"
	// TripleDarwinAMD64 is x86-64 macOS
	TripleDarwinAMD64 Triple = "x86_64-apple-darwin"
	// TripleDarwinARM64 is Apple silicon macOS
	TripleDarwinARM64 Triple = "aarch64-apple-darwin"
	// TripleWindowsAMD64 is x86-64 Windows (MSVC build)
	TripleWindowsAMD64 Triple = "x86_64-pc-windows-msvc"
	// TripleWindowsARM64 is 64-bit ARM Windows (MSVC build)
	TripleWindowsARM64 Triple = "aarch64-pc-windows-msvc"
)

// SupportedTriples lists every target the release pipeline ships
// binaries for.
var SupportedTriples = []Triple{
	TripleLinuxAMD64,
	TripleLinuxARM64,
	TripleDarwinAMD64,
	TripleDarwinARM64,
	TripleWindowsAMD64,
	TripleWindowsARM64,
}

// Windows reports whether the triple targets Windows, which changes the
// binary filename suffix.
func (t Triple) Windows() bool {
	return strings.Contains(string(t), "-windows-")
}

// Normalized architecture names
const (
	archX8664   = "x86_64"
	archAarch64 = "aarch64"
)

// ResolveTriple maps raw OS and CPU architecture names to the matching
// target triple. Comparison is case-insensitive. Both Go runtime names
// (windows, amd64, arm64) and their common platform-reported spellings
// (win32, cygwin, msys, x86_64, aarch64) are accepted, and any OS name
// starting with "linux" counts as Linux.
//
// When no supported pair matches, the error wraps
// ErrUnsupportedPlatform and names the raw inputs.
func ResolveTriple(osName, arch string) (Triple, error) {
	system := strings.ToLower(strings.TrimSpace(osName))
	machine := normalizeArch(arch)

	switch {
	case strings.HasPrefix(system, "linux"):
		switch machine {
		case archX8664:
			return TripleLinuxAMD64, nil
		case archAarch64:
			return TripleLinuxARM64, nil
		}
	case system == "darwin":
		switch machine {
		case archX8664:
			return TripleDarwinAMD64, nil
		case archAarch64:
			return TripleDarwinARM64, nil
		}
	case system == "windows" || system == "win32" || system == "cygwin" || system == "msys":
		switch machine {
		case archX8664:
			return TripleWindowsAMD64, nil
		case archAarch64:
			return TripleWindowsARM64, nil
		}
	}

	return "", &LaunchError{
		Stage: StageResolve,
		Path:  osName + " (" + arch + ")",
		Err:   ErrUnsupportedPlatform,
	}
}

// normalizeArch folds the common aliases for the two supported CPU
// architectures. Unknown names are returned lowercased so they appear
// verbatim in the unsupported-platform error.
func normalizeArch(arch string) string {
	machine := strings.ToLower(strings.TrimSpace(arch))
	switch machine {
	case "x86_64", "amd64":
		return archX8664
	case "aarch64", "arm64":
		return archAarch64
	default:
		return machine
	}
}
