// Package schema supplies the authoritative settings schema: every known
// setting name and its current default value.
package schema

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"qbdrift/internal/model"
)

// Provider supplies the authoritative set of setting names and their current
// default values. Callers construct one per run and inject it; tests swap in
// a StaticProvider.
type Provider interface {
	// Init prepares the provider. Idempotent; must be called before Snapshot.
	Init() error
	// Snapshot returns the full name -> default mapping, captured once per
	// run and treated as immutable ground truth.
	Snapshot() (model.SchemaSnapshot, error)
}

// UnavailableError reports that the schema could not be loaded. Fatal; there
// is no fallback schema and no retry.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("schema unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// HelpURL returns the settings documentation anchor for a setting name.
func HelpURL(name string) string {
	return "https://qutebrowser.org/doc/help/settings.html#" + name
}

// FileProvider loads the schema from qutebrowser's configdata.yml, the same
// file qutebrowser itself builds its settings registry from. Each top-level
// entry maps a setting name to a body carrying its "default" value; entries
// with a "renamed" key are aliases, not settings.
type FileProvider struct {
	Path string // explicit file path; empty means search SearchPaths

	loaded bool
	snap   model.SchemaSnapshot
}

// NewFileProvider creates a FileProvider. path may be empty to use the
// default search locations.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// Init locates and parses the schema file. Safe to call more than once; the
// file is read at most one time.
func (p *FileProvider) Init() error {
	if p.loaded {
		return nil
	}

	path := p.Path
	if path == "" {
		found, err := locate()
		if err != nil {
			return &UnavailableError{Err: err}
		}
		path = found
	}

	content, err := os.ReadFile(model.ExpandTilde(path))
	if err != nil {
		return &UnavailableError{Err: err}
	}

	var raw map[string]map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return &UnavailableError{Err: fmt.Errorf("parse %s: %w", path, err)}
	}

	snap := make(model.SchemaSnapshot, len(raw))
	for name, body := range raw {
		if _, renamed := body["renamed"]; renamed {
			continue
		}
		snap[name] = body["default"]
	}
	p.snap = snap
	p.loaded = true

	slog.Debug("loaded schema", "path", path, "settings", len(snap))
	return nil
}

// Snapshot returns the parsed schema. Init must have succeeded first.
func (p *FileProvider) Snapshot() (model.SchemaSnapshot, error) {
	if !p.loaded {
		return nil, &UnavailableError{Err: fmt.Errorf("provider not initialized")}
	}
	return p.snap, nil
}

// locate searches the usual install locations for configdata.yml.
func locate() (string, error) {
	var candidates []string
	candidates = append(candidates,
		"/usr/share/qutebrowser/config/configdata.yml",
		"/usr/local/share/qutebrowser/config/configdata.yml",
	)
	globs := []string{
		"/usr/lib/python3*/site-packages/qutebrowser/config/configdata.yml",
		"/usr/lib/python3*/dist-packages/qutebrowser/config/configdata.yml",
		"/usr/local/lib/python3*/dist-packages/qutebrowser/config/configdata.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		globs = append(globs,
			filepath.Join(home, ".local/lib/python3*/site-packages/qutebrowser/config/configdata.yml"))
	}
	for _, g := range globs {
		if matches, err := filepath.Glob(g); err == nil {
			candidates = append(candidates, matches...)
		}
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
			return c, nil
		}
	}
	return "", fmt.Errorf("configdata.yml not found; pass --schema to point at a qutebrowser install")
}

// StaticProvider serves a fixed snapshot, for tests and embedding callers.
type StaticProvider struct {
	Settings model.SchemaSnapshot
}

func (p *StaticProvider) Init() error { return nil }

func (p *StaticProvider) Snapshot() (model.SchemaSnapshot, error) {
	return p.Settings, nil
}
