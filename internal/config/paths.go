package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// expandPath expands environment variables and a leading ~ in p.
// On Windows %VAR% references and ~\ prefixes are also understood.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		expanded = expandWindowsEnv(expanded)
	}

	rest, ok := cutHome(expanded)
	if !ok {
		return expanded
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return expanded
	}
	if rest == "" {
		return home
	}
	return filepath.Join(home, rest)
}

// cutHome reports whether p starts with ~ and returns the remainder.
func cutHome(p string) (string, bool) {
	if p == "~" {
		return "", true
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		return rest, true
	}
	if runtime.GOOS == "windows" {
		return strings.CutPrefix(p, `~\`)
	}
	return "", false
}

// expandWindowsEnv replaces %VAR% references. Unknown variables are kept.
func expandWindowsEnv(p string) string {
	if !strings.Contains(p, "%") {
		return p
	}
	var b strings.Builder
	for {
		start := strings.IndexByte(p, '%')
		if start < 0 {
			break
		}
		end := strings.IndexByte(p[start+1:], '%')
		if end < 0 {
			break
		}
		key := p[start+1 : start+1+end]
		b.WriteString(p[:start])
		switch val, ok := os.LookupEnv(key); {
		case key == "":
			b.WriteByte('%')
			p = p[start+1:]
			continue
		case ok:
			b.WriteString(val)
		default:
			b.WriteString("%" + key + "%")
		}
		p = p[start+end+2:]
	}
	b.WriteString(p)
	return b.String()
}
