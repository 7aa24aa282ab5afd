package launcher

import (
	"bytes"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2"
)

// reportFileMode is the mode for written launch reports
const reportFileMode = 0o644

// LaunchReport is the record written after the child exits when a
// report destination is configured.
type LaunchReport struct {
	// Triple is the resolved target triple
	Triple string `toml:"triple"`
	// Binary is the vendored binary that ran
	Binary string `toml:"binary"`
	// StartedAt is when the child was spawned
	StartedAt time.Time `toml:"started_at"`
	// FinishedAt is when the child's exit was observed
	FinishedAt time.Time `toml:"finished_at"`
	// ExitCode is the propagated exit code
	ExitCode int `toml:"exit_code"`
	// Signal names the fatal signal, empty for a normal exit
	Signal string `toml:"signal,omitempty"`
}

// reportPath resolves the configured report destination against Root.
func (l *Launcher) reportPath() string {
	if filepath.IsAbs(l.ReportFile) {
		return l.ReportFile
	}
	return filepath.Join(l.Root, l.ReportFile)
}

// writeReport records the run outcome. The write is atomic so a crash
// mid-write never leaves a torn report, and it is best-effort: a report
// failure must not alter the exit status the caller propagates.
func (l *Launcher) writeReport(t Triple, binary string, started time.Time, status ExitStatus) {
	if l.ReportFile == "" {
		return
	}

	report := LaunchReport{
		Triple:     string(t),
		Binary:     binary,
		StartedAt:  started,
		FinishedAt: time.Now(),
		ExitCode:   status.Code,
	}
	if status.Signal != nil {
		report.Signal = status.Signal.String()
	}

	path := l.reportPath()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(report); err != nil {
		l.log.Debug().Err(err).Str("path", path).Msg("encoding launch report failed")
		return
	}
	if err := renameio.WriteFile(path, buf.Bytes(), reportFileMode); err != nil {
		l.log.Debug().Err(err).Str("path", path).Msg("writing launch report failed")
		return
	}
	l.log.Debug().Str("path", path).Msg("wrote launch report")
}
