package sigraise

import (
	"errors"
	"testing"
)

type fakeSignal struct{}

func (fakeSignal) String() string { return "fake" }
func (fakeSignal) Signal()        {}

// Raising the real thing would kill the test process, so only the
// rejection path is exercised here.
func TestRaiseRejectsNonPosixSignal(t *testing.T) {
	if err := Raise(fakeSignal{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Raise(fakeSignal) = %v, want ErrUnsupported", err)
	}
}
