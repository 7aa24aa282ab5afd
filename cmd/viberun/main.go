// Command viberun is the packaging shim installed by pip in place of
// the real viberun binary. It takes no flags of its own: the entire
// argument vector is forwarded verbatim to the vendored binary for the
// host platform, and the child's exit status becomes this process's
// exit status. A child killed by a signal is mirrored by re-raising the
// same signal here; where that is impossible the process exits with the
// conventional 128+signum code.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shayne/viberun-launcher"
	"github.com/shayne/viberun-launcher/internal/sigraise"
)

func main() {
	os.Exit(run())
}

func run() int {
	root, err := packageRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "viberun: %v\n", err)
		return 1
	}

	l, err := launcher.New(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "viberun: %v\n", err)
		return 1
	}

	status, err := l.Run(context.Background(), os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "viberun: %v\n", err)
		return 1
	}

	if status.Signal != nil {
		// Normally fatal; falling through means the signal could not be
		// re-delivered and the 128+signum code applies.
		_ = sigraise.Raise(status.Signal)
	}
	return status.Code
}

// packageRoot locates the installed package root: the directory holding
// the launcher executable, or VIBERUN_LAUNCHER_ROOT when set.
func packageRoot() (string, error) {
	if root := os.Getenv(launcher.EnvRoot); root != "" {
		return root, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating launcher executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving launcher executable: %w", err)
	}
	return filepath.Dir(resolved), nil
}
