package launcher

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"vawter.tech/stopper"
)

// signalStopGrace bounds how long supervise waits for the forwarding
// goroutine to drain after the child exits.
const signalStopGrace = 100 * time.Millisecond

// ExitStatus describes how the child terminated.
type ExitStatus struct {
	// Code is the exit code to propagate. When the child died to a
	// signal it carries the conventional 128+signum value as a fallback
	// for hosts that cannot re-deliver the signal.
	Code int

	// Signal is the fatal signal when the child was killed by one, nil
	// otherwise. Always nil on Windows.
	Signal os.Signal
}

// Run resolves the host triple, locates the vendored binary, prepares
// the child environment, and runs the binary with args passed through
// verbatim and stdio inherited. It blocks until the child exits and
// returns its termination status. Resolution and location failures are
// fatal before any process is spawned.
func (l *Launcher) Run(ctx context.Context, args []string) (ExitStatus, error) {
	triple, err := ResolveTriple(l.OS, l.Arch)
	if err != nil {
		return ExitStatus{}, err
	}
	l.log.Debug().Str("triple", string(triple)).Msg("resolved target triple")

	binary := l.BinaryPath(triple)
	if err := l.ensureBinary(ctx, binary); err != nil {
		return ExitStatus{}, err
	}

	cmd := exec.Command(binary, args...)
	cmd.Env = l.prepareEnv(triple)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return ExitStatus{}, &LaunchError{Stage: StageSpawn, Path: binary, Err: err}
	}
	l.log.Debug().Int("pid", cmd.Process.Pid).Strs("args", args).Msg("spawned child")

	status, err := l.supervise(ctx, cmd)
	if err != nil {
		return ExitStatus{}, err
	}

	l.writeReport(triple, binary, started, status)
	return status, nil
}

// supervise forwards termination signals to the child until it exits,
// then decodes its wait status. Handlers are registered only for the
// duration of the wait and released on every exit path.
func (l *Launcher) supervise(ctx context.Context, cmd *exec.Cmd) (ExitStatus, error) {
	sctx := stopper.WithContext(ctx)

	sigCh := make(chan os.Signal, 4)
	signal.Notify(sigCh, forwardedSignals...)
	sctx.Defer(func() {
		signal.Stop(sigCh)
	})

	sctx.Go(func(sctx *stopper.Context) error {
		for {
			select {
			case <-sctx.Stopping():
				return nil
			case sig := <-sigCh:
				// Best effort: the child may already have exited and a
				// failed delivery must never take the launcher down.
				if err := cmd.Process.Signal(sig); err != nil {
					l.log.Debug().Err(err).Str("signal", sig.String()).Msg("signal forward failed")
				} else {
					l.log.Debug().Str("signal", sig.String()).Msg("forwarded signal")
				}
			}
		}
	})

	waitErr := cmd.Wait()
	sctx.Stop(signalStopGrace)
	_ = sctx.Wait()

	return decodeWait(cmd, waitErr)
}

// decodeWait turns the result of cmd.Wait into an ExitStatus. A signal
// death surfaces as Signal non-nil with the 128+signum fallback code;
// anything that is not an exit status at all is a wait-stage failure.
func decodeWait(cmd *exec.Cmd, waitErr error) (ExitStatus, error) {
	if waitErr == nil {
		return ExitStatus{Code: 0}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(waitErr, &exitErr) {
		return ExitStatus{}, &LaunchError{Stage: StageWait, Path: cmd.Path, Err: waitErr}
	}

	if sig, ok := fatalSignal(exitErr.ProcessState); ok {
		return ExitStatus{Code: 128 + int(sig), Signal: sig}, nil
	}
	return ExitStatus{Code: exitErr.ExitCode()}, nil
}
