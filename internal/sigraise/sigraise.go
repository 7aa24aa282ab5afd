// Package sigraise re-delivers a child's fatal signal to the current
// process so the launcher's own termination mirrors the child's.
package sigraise

import "errors"

// ErrUnsupported indicates the host cannot re-deliver POSIX signals;
// callers fall back to the 128+signum exit convention.
var ErrUnsupported = errors.New("sigraise: not supported on this platform")
