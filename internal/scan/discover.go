package scan

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"qbdrift/internal/model"
)

// Discover resolves the given arguments to the ordered, deduplicated set of
// config files to scan. Arguments may be files or directories; directories
// are walked recursively for *.py files, explicit files must themselves end
// in .py. With no arguments the well-known default config location is used;
// if that does not exist either, a NotFoundError aborts the run before any
// file is read.
func Discover(args []string) ([]string, error) {
	if len(args) == 0 {
		def, err := DefaultConfigPath()
		if err != nil {
			return nil, &NotFoundError{}
		}
		if !isRegularFile(def) {
			return nil, &NotFoundError{Searched: []string{def}}
		}
		return []string{def}, nil
	}

	var (
		paths []string
		seen  = make(map[string]bool)
	)
	add := func(p string) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	searched := make([]string, 0, len(args))
	for _, arg := range args {
		arg = model.ExpandTilde(arg)
		searched = append(searched, arg)

		info, err := os.Stat(arg)
		if err != nil {
			continue // resolved later as "nothing found" if all args miss
		}
		if info.IsDir() {
			// Walk order is lexical per directory, which keeps discovery
			// deterministic across runs.
			_ = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return nil
				}
				if !d.IsDir() && strings.HasSuffix(p, ".py") {
					add(p)
				}
				return nil
			})
			continue
		}
		if strings.HasSuffix(arg, ".py") {
			add(arg)
		}
	}

	if len(paths) == 0 {
		return nil, &NotFoundError{Searched: searched}
	}

	slog.Debug("discovered config files", "count", len(paths))
	return paths, nil
}

// DefaultConfigPath returns the well-known config.py location,
// e.g. ~/.config/qutebrowser/config.py on Linux.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "qutebrowser", "config.py"), nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
