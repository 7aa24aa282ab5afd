//go:build windows

package sigraise

import "os"

// Raise is unsupported on Windows: processes do not terminate via POSIX
// signals, so the caller's numeric exit code stands in.
func Raise(_ os.Signal) error {
	return ErrUnsupported
}
