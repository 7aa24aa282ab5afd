package launcher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// Launcher locates and runs the vendored viberun binary for the host
// platform. A Launcher is built once per invocation; it never mutates
// the parent process environment.
type Launcher struct {
	// Root is the canonical path to the installed package root
	Root string

	// VendorDir is the vendor directory name under Root
	VendorDir string

	// BinaryDir is the binary directory name under a triple's vendor root
	BinaryDir string

	// BinaryName is the vendored binary's base name
	BinaryName string

	// PathDir is the auxiliary-tools directory name under a triple's
	// vendor root
	PathDir string

	// OS is the host OS name used for triple resolution
	OS string

	// Arch is the host CPU architecture used for triple resolution
	Arch string

	// WaitForBinary is the grace period to wait for a missing binary to
	// appear before failing; zero disables the wait
	WaitForBinary time.Duration

	// ReportFile is the launch report destination; empty disables the
	// report. Relative paths are resolved against Root.
	ReportFile string

	// Debug enables debug logging on stderr
	Debug bool

	// Environ is the base environment copied into the child; defaults
	// to the parent's environment
	Environ []string

	// ExtraEnv holds additional child-only environment entries from the
	// launcher config
	ExtraEnv map[string]string

	// Stdin, Stdout, Stderr are inherited by the child
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	log    zerolog.Logger
	logSet bool
}

// Option configures a Launcher
type Option func(*Launcher)

// WithVendorDir overrides the vendor directory name
func WithVendorDir(dir string) Option {
	return func(l *Launcher) {
		l.VendorDir = dir
	}
}

// WithBinaryDir overrides the binary directory name
func WithBinaryDir(dir string) Option {
	return func(l *Launcher) {
		l.BinaryDir = dir
	}
}

// WithBinaryName overrides the vendored binary's base name
func WithBinaryName(name string) Option {
	return func(l *Launcher) {
		l.BinaryName = name
	}
}

// WithPathDir overrides the auxiliary-tools directory name
func WithPathDir(dir string) Option {
	return func(l *Launcher) {
		l.PathDir = dir
	}
}

// WithPlatform overrides the host OS and architecture used for triple
// resolution
func WithPlatform(osName, arch string) Option {
	return func(l *Launcher) {
		l.OS = osName
		l.Arch = arch
	}
}

// WithWaitForBinary sets the grace period for a missing binary to appear
func WithWaitForBinary(d time.Duration) Option {
	return func(l *Launcher) {
		l.WaitForBinary = d
	}
}

// WithReportFile sets the launch report destination
func WithReportFile(path string) Option {
	return func(l *Launcher) {
		l.ReportFile = path
	}
}

// WithEnviron replaces the base environment copied into the child
func WithEnviron(environ []string) Option {
	return func(l *Launcher) {
		l.Environ = environ
	}
}

// WithStdio sets the streams inherited by the child
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.Stdin = stdin
		l.Stdout = stdout
		l.Stderr = stderr
	}
}

// WithLogger replaces the launcher's logger
func WithLogger(log zerolog.Logger) Option {
	return func(l *Launcher) {
		l.log = log
		l.logSet = true
	}
}

// New creates a Launcher for the given package root. Defaults reproduce
// the shipped vendored layout; an optional launcher.toml in the root
// (or at VIBERUN_LAUNCHER_CONFIG) overlays them, and options are
// applied last.
func New(root string, opts ...Option) (*Launcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving package root: %w", err)
	}

	l := &Launcher{
		Root:       absRoot,
		VendorDir:  DefaultVendorDir,
		BinaryDir:  DefaultBinaryDir,
		BinaryName: DefaultBinaryName,
		PathDir:    DefaultPathDir,
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		Debug:      os.Getenv(EnvDebug) == "1",
		Environ:    os.Environ(),
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}

	if err := l.loadConfig(); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(l)
	}

	if !l.logSet {
		l.log = newLogger(l.Debug)
	}
	l.log.Debug().Str("version", Version).Str("root", l.Root).Msg("launcher ready")

	return l, nil
}
