package launcher

import "path/filepath"

// Vendored tree layout constants
const (
	// DefaultVendorDir is the directory under the package root holding
	// one subdirectory per target triple
	DefaultVendorDir = "vendor"

	// DefaultBinaryDir is the directory under a triple's vendor root
	// containing the binary
	DefaultBinaryDir = "viberun"

	// DefaultBinaryName is the vendored binary's base name, without the
	// Windows suffix
	DefaultBinaryName = "viberun"

	// DefaultPathDir is the optional auxiliary-tools directory under a
	// triple's vendor root, prepended to the child's PATH when present
	DefaultPathDir = "path"

	// ConfigFileName is the optional launcher config file in the
	// package root
	ConfigFileName = "launcher.toml"

	// windowsExeSuffix is appended to the binary name on Windows targets
	windowsExeSuffix = ".exe"
)

// Environment variables
const (
	// MarkerEnv is always set in the child environment to signal a
	// managed-packaging launch
	MarkerEnv = "VIBERUN_MANAGED_BY_PIP"

	// markerValue is the fixed value for MarkerEnv
	markerValue = "1"

	// EnvRoot overrides the package root discovered from the launcher
	// executable's location
	EnvRoot = "VIBERUN_LAUNCHER_ROOT"

	// EnvConfigPath overrides the launcher config file location
	EnvConfigPath = "VIBERUN_LAUNCHER_CONFIG"

	// EnvDebug enables debug logging when set to "1"
	EnvDebug = "VIBERUN_LAUNCHER_DEBUG"
)

// VendorRoot returns the vendor directory for a triple:
// <root>/<vendor-dir>/<triple>.
func (l *Launcher) VendorRoot(t Triple) string {
	return filepath.Join(l.Root, l.VendorDir, string(t))
}

// BinaryPath returns the expected vendored binary path for a triple:
// <root>/<vendor-dir>/<triple>/<binary-dir>/<binary-name>[.exe].
// Construction is deterministic; the suffix is present iff the triple
// targets Windows.
func (l *Launcher) BinaryPath(t Triple) string {
	name := l.BinaryName
	if t.Windows() {
		name += windowsExeSuffix
	}
	return filepath.Join(l.VendorRoot(t), l.BinaryDir, name)
}

// toolsDir returns the auxiliary-tools directory for a triple. Its
// absence is not an error.
func (l *Launcher) toolsDir(t Triple) string {
	return filepath.Join(l.VendorRoot(t), l.PathDir)
}
