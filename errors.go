package launcher

import (
	"errors"
	"fmt"
)

// Common errors returned by launcher operations
var (
	// ErrUnsupportedPlatform indicates no vendored binary exists for the
	// host OS and architecture combination
	ErrUnsupportedPlatform = errors.New("launcher: unsupported platform")

	// ErrMissingBinary indicates the vendored binary is absent at its
	// expected path
	ErrMissingBinary = errors.New("launcher: binary missing")
)

// Stage identifies the launch phase an error occurred in
type Stage int

const (
	// StageUnknown represents an unknown phase
	StageUnknown Stage = iota
	// StageResolve is target triple resolution
	StageResolve
	// StageConfig is launcher config loading
	StageConfig
	// StageLocate is vendored binary location
	StageLocate
	// StageSpawn is child process creation
	StageSpawn
	// StageWait is the supervise wait on the child
	StageWait
)

// String returns the string representation of a Stage
func (s Stage) String() string {
	switch s {
	case StageResolve:
		return "resolve"
	case StageConfig:
		return "config"
	case StageLocate:
		return "locate"
	case StageSpawn:
		return "spawn"
	case StageWait:
		return "wait"
	default:
		return "unknown"
	}
}

// LaunchError represents an error from a launch phase
type LaunchError struct {
	// Stage is the phase that failed
	Stage Stage
	// Path is the file path or platform description involved
	Path string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *LaunchError) Error() string {
	return fmt.Sprintf("launcher %s %q: %v", e.Stage.String(), e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *LaunchError) Unwrap() error {
	return e.Err
}
