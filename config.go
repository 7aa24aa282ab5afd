package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// launcher.toml key mapping. Only keys present in the file override the
// compiled-in defaults.
type fileConfig struct {
	VendorDir     string            `toml:"vendor_dir"`
	BinaryDir     string            `toml:"binary_dir"`
	BinaryName    string            `toml:"binary_name"`
	PathDir       string            `toml:"path_dir"`
	WaitForBinary string            `toml:"wait_for_binary"`
	ReportFile    string            `toml:"report_file"`
	Debug         bool              `toml:"debug"`
	Env           map[string]string `toml:"env"`
}

// configPath returns the launcher config location and whether it was
// explicitly requested through the environment.
func (l *Launcher) configPath() (string, bool) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, true
	}
	return filepath.Join(l.Root, ConfigFileName), false
}

// loadConfig overlays an optional TOML config onto the launcher's
// defaults. A missing default-location file is a no-op; a missing
// explicitly-requested file, or a malformed file, means the shipped
// package is broken and is fatal.
func (l *Launcher) loadConfig() error {
	path, explicit := l.configPath()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return &LaunchError{Stage: StageConfig, Path: path, Err: err}
	}

	if meta.IsDefined("vendor_dir") {
		l.VendorDir = strings.TrimSpace(raw.VendorDir)
	}
	if meta.IsDefined("binary_dir") {
		l.BinaryDir = strings.TrimSpace(raw.BinaryDir)
	}
	if meta.IsDefined("binary_name") {
		l.BinaryName = strings.TrimSpace(raw.BinaryName)
	}
	if meta.IsDefined("path_dir") {
		l.PathDir = strings.TrimSpace(raw.PathDir)
	}
	if meta.IsDefined("wait_for_binary") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.WaitForBinary))
		if err != nil {
			return &LaunchError{
				Stage: StageConfig,
				Path:  path,
				Err:   fmt.Errorf("wait_for_binary: %w", err),
			}
		}
		l.WaitForBinary = d
	}
	if meta.IsDefined("report_file") {
		l.ReportFile = strings.TrimSpace(raw.ReportFile)
	}
	// Enable-only: the config can turn debug on but cannot silence an
	// operator's VIBERUN_LAUNCHER_DEBUG.
	if meta.IsDefined("debug") && raw.Debug {
		l.Debug = true
	}
	if len(raw.Env) > 0 {
		if l.ExtraEnv == nil {
			l.ExtraEnv = make(map[string]string, len(raw.Env))
		}
		for k, v := range raw.Env {
			l.ExtraEnv[k] = v
		}
	}

	return nil
}
