package launcher

import (
	"os"
	"sort"
	"strings"
)

// prepareEnv builds the child environment: a copy of the base environ
// with the triple's auxiliary-tools directory prepended to PATH (when
// the directory exists), the managed-launch marker, and any extra
// entries from the launcher config. The base slice is never modified.
func (l *Launcher) prepareEnv(t Triple) []string {
	env := make([]string, len(l.Environ))
	copy(env, l.Environ)

	if toolsDir := l.toolsDir(t); dirExists(toolsDir) {
		env = prependPath(env, toolsDir)
		l.log.Debug().Str("dir", toolsDir).Msg("prepended auxiliary tools dir to PATH")
	}

	env = setEnv(env, MarkerEnv, markerValue)

	for _, key := range sortedKeys(l.ExtraEnv) {
		// PATH is owned by the launcher: a config entry must not clobber
		// the tools-dir prefix or the parent's value.
		if strings.EqualFold(key, "PATH") {
			l.log.Debug().Msg("ignoring PATH entry in config env")
			continue
		}
		env = setEnv(env, key, l.ExtraEnv[key])
	}

	return env
}

// prependPath prefixes dir onto the PATH entry using the platform
// path-list separator, preserving any existing value. A missing PATH
// entry is created.
func prependPath(env []string, dir string) []string {
	sep := string(os.PathListSeparator)
	for i, entry := range env {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.EqualFold(key, "PATH") {
			continue
		}
		if value == "" {
			env[i] = key + "=" + dir
		} else {
			env[i] = key + "=" + dir + sep + value
		}
		return env
	}
	return append(env, "PATH="+dir)
}

// setEnv replaces the first entry for key or appends a new one. Key
// comparison is exact; the launcher only sets canonical upper-case
// names.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, entry := range env {
		if strings.HasPrefix(entry, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
