//go:build unix

package sigraise

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Raise resets any handler for sig and delivers it to the current
// process. On success the process normally dies before Raise returns.
func Raise(sig os.Signal) error {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return ErrUnsupported
	}
	signal.Reset(sig)
	return unix.Kill(unix.Getpid(), s)
}
