package launcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"
)

// watchPollInterval backs up the fsnotify events: when the watched
// directory is an ancestor of the expected path, creation of deeper
// directories is not always observable, so the path is re-stat'd on a
// timer as well.
const watchPollInterval = 250 * time.Millisecond

// ensureBinary verifies the vendored binary exists at path. When a
// wait-for-binary grace period is configured, a missing binary is given
// that long to appear (package extraction can race the first
// invocation) before the missing-binary error is returned.
func (l *Launcher) ensureBinary(ctx context.Context, path string) error {
	if fileExists(path) {
		return nil
	}

	if l.WaitForBinary > 0 {
		l.log.Debug().Str("path", path).Dur("grace", l.WaitForBinary).Msg("binary missing, waiting")
		if err := l.awaitBinary(ctx, path); err != nil {
			return &LaunchError{Stage: StageLocate, Path: path, Err: err}
		}
		return nil
	}

	return &LaunchError{Stage: StageLocate, Path: path, Err: ErrMissingBinary}
}

// awaitBinary watches the nearest existing ancestor of path until the
// file appears, the grace period elapses, or ctx is done.
func (l *Launcher) awaitBinary(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(nearestExistingDir(filepath.Dir(path))); err != nil {
		_ = watcher.Close()
		return err
	}

	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		_ = watcher.Close()
	})

	found := make(chan struct{}, 1)
	sctx.Go(func(sctx *stopper.Context) error {
		ticker := time.NewTicker(watchPollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-sctx.Stopping():
				return nil
			case <-ticker.C:
			case _, ok := <-watcher.Events:
				if !ok {
					return nil
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
			}

			if fileExists(path) {
				select {
				case found <- struct{}{}:
				default:
				}
				return nil
			}
		}
	})

	deadline := time.NewTimer(l.WaitForBinary)
	defer deadline.Stop()

	var result error
	select {
	case <-found:
	case <-deadline.C:
		result = ErrMissingBinary
	case <-ctx.Done():
		result = ctx.Err()
	}

	sctx.Stop(signalStopGrace)
	_ = sctx.Wait()
	return result
}

// nearestExistingDir walks up from dir to the first directory that
// exists. It terminates at the filesystem root, which always exists.
func nearestExistingDir(dir string) string {
	for {
		if dirExists(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
