package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound is returned when an executable is not on any search path.
var ErrNotFound = errors.New("pipeline: executable not found")

// LookPath searches PATH, then the platform's install locations, then
// extra for program. program may contain a directory part such as
// "Inkscape/inkscape.exe".
func LookPath(program string, extra ...string) (string, error) {
	if filepath.IsAbs(program) {
		if isExecutable(program) {
			return program, nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, program)
	}

	dirs := filepath.SplitList(os.Getenv("PATH"))
	dirs = append(dirs, platformPaths()...)
	dirs = append(dirs, extra...)

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, program)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, program)
}

// platformPaths lists install directories that are usually not on PATH.
func platformPaths() []string {
	if runtime.GOOS != "windows" {
		return nil
	}
	paths := []string{
		envOr("ProgramFiles", `C:\Program Files\`),
		envOr("ProgramFiles(x86)", `C:\Program Files (x86)\`),
	}
	// 64-bit Inkscape on 64-bit Windows 7
	return append(paths, `C:\Program Files\`)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0111 != 0 || strings.EqualFold(filepath.Ext(path), ".exe")
}
