//go:build windows

package launcher

import (
	"os"
	"syscall"
)

// forwardedSignals on Windows is limited to the console interrupt; the
// platform has no SIGTERM/SIGHUP delivery.
var forwardedSignals = []os.Signal{os.Interrupt}

// fatalSignal never matches on Windows: processes do not die to POSIX
// signals, so the raw exit code passes through unchanged.
func fatalSignal(_ *os.ProcessState) (syscall.Signal, bool) {
	return 0, false
}
