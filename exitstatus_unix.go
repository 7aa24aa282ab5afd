//go:build unix

package launcher

import (
	"os"
	"syscall"
)

// forwardedSignals are relayed to the child while it runs. SIGKILL
// cannot be caught and is deliberately absent.
var forwardedSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGHUP,
}

// fatalSignal reports the signal that killed the child, if any.
func fatalSignal(ps *os.ProcessState) (syscall.Signal, bool) {
	ws, ok := ps.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0, false
	}
	return ws.Signal(), true
}
