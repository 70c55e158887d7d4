package model

import "fmt"

// Location identifies a single source line inside a config file.
type Location struct {
	File string // absolute path of the config file
	Line int    // 1-based line number
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Before reports whether l sorts before other, by file path then line number.
func (l Location) Before(other Location) bool {
	if l.File != other.File {
		return l.File < other.File
	}
	return l.Line < other.Line
}

// Occurrence is one textual sighting of a setting assignment in a config
// file, active or commented out.
type Occurrence struct {
	Location Location
	RawValue string // literal text right of " = ", unparsed
	Active   bool   // false when the line carried a leading comment marker
}

// SchemaSnapshot maps setting name to its current default value, captured
// once per run from the schema provider. Defaults are decoded YAML values:
// nil, bool, int64, float64, string, []any or map[string]any.
type SchemaSnapshot map[string]any

// LocalSettings maps setting name to every occurrence found in the user's
// config files, in file-discovery order then line order. Duplicates are
// retained, never collapsed.
type LocalSettings map[string][]Occurrence

// StaleDefault records one commented-out occurrence whose echoed value no
// longer matches the schema's current default.
type StaleDefault struct {
	Name          string
	Occurrence    Occurrence
	LocalValue    any // decoded from the occurrence's raw value
	SchemaDefault any
}

// DriftReport is the terminal artifact of a run: the three drift classes.
type DriftReport struct {
	Missing []string       // in schema, absent from local config (sorted by name)
	Dropped []DroppedEntry // in local config, unknown to the schema
	Stale   []StaleDefault // default echoes that disagree with the schema
}

// Category names for result groups, stable across report/JSON/TUI/web.
const (
	CategoryMissing = "missing"
	CategoryDropped = "dropped"
	CategoryStale   = "stale"
)

// MissingEntry is the result record for an unconfigured setting.
type MissingEntry struct {
	Name    string
	HelpURL string
}

// DroppedEntry is the result record for a setting the schema no longer
// knows. Location points at its first sighting.
type DroppedEntry struct {
	Name     string
	Location Location
}

// StaleEntry is the result record for one stale default echo.
type StaleEntry struct {
	Name          string
	Location      Location
	LocalValue    any
	SchemaDefault any
}

// ResultGroup is one named, ordered group of classified results. Exactly one
// of the entry slices is populated, matching Category.
type ResultGroup struct {
	Category string
	Title    string
	Missing  []MissingEntry `json:",omitempty"`
	Dropped  []DroppedEntry `json:",omitempty"`
	Stale    []StaleEntry   `json:",omitempty"`
}

// Len returns the number of entries in the group.
func (g ResultGroup) Len() int {
	return len(g.Missing) + len(g.Dropped) + len(g.Stale)
}

// Options selects which drift categories the assembler emits.
type Options struct {
	Missing bool
	Dropped bool
	Stale   bool
}

// AllCategories selects every category, the default when no flag is given.
func AllCategories() Options {
	return Options{Missing: true, Dropped: true, Stale: true}
}
