package utils

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrIsDirectory is returned when a command path names a directory.
	ErrIsDirectory = errors.New("path is a directory")
	// ErrNotExecutable is returned when a command path lacks execute permission.
	ErrNotExecutable = errors.New("not executable")
)

// windowsExecutableExtensions returns the lowercase executable extensions
// (with leading dot) listed in PATHEXT, or a default set if it is unset.
func windowsExecutableExtensions() map[string]bool {
	exts := map[string]bool{}
	pathext := os.Getenv("PATHEXT")
	if pathext == "" {
		pathext = ".COM;.EXE;.BAT;.CMD"
	}
	for _, ext := range strings.Split(pathext, ";") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[strings.ToLower(ext)] = true
	}
	return exts
}

// IsExecutable reports whether the file at path can be run. On Windows the
// extension decides; elsewhere any execute bit does.
func IsExecutable(path string, info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		ext := strings.ToLower(filepath.Ext(path))
		return ext != "" && windowsExecutableExtensions()[ext]
	}
	return info.Mode().Perm()&0111 != 0
}

// FindExecutable resolves command to an executable file. Commands that
// contain a path separator are checked in place; bare names are looked up
// in PATH.
func FindExecutable(command string) (string, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return "", errors.New("empty command")
	}

	path := command
	if !strings.ContainsRune(command, '/') && !strings.ContainsRune(command, filepath.Separator) {
		resolved, err := exec.LookPath(command)
		if err != nil {
			return "", err
		}
		path = resolved
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	if !IsExecutable(path, info) {
		return "", fmt.Errorf("%s: %w", path, ErrNotExecutable)
	}
	return path, nil
}
