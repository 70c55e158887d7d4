package drift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qbdrift/internal/model"
)

func occ(file string, line int, raw string, active bool) model.Occurrence {
	return model.Occurrence{
		Location: model.Location{File: file, Line: line},
		RawValue: raw,
		Active:   active,
	}
}

func TestClassifySetDifferences(t *testing.T) {
	schema := model.SchemaSnapshot{
		"tabs.show":        "always",
		"scrolling.smooth": false,
	}
	local := model.LocalSettings{
		"tabs.show":   {occ("/c.py", 1, "'never'", true)},
		"old.setting": {occ("/c.py", 2, "1", true)},
	}

	report := Classify(schema, local)

	assert.Equal(t, []string{"scrolling.smooth"}, report.Missing)
	require.Len(t, report.Dropped, 1)
	assert.Equal(t, "old.setting", report.Dropped[0].Name)
	assert.Equal(t, model.Location{File: "/c.py", Line: 2}, report.Dropped[0].Location)

	// Settings present in both never land in either set.
	for _, name := range report.Missing {
		assert.NotContains(t, local, name)
	}
	for _, e := range report.Dropped {
		assert.NotContains(t, schema, e.Name)
	}
}

func TestClassifyEverySchemaKeyAccounted(t *testing.T) {
	schema := model.SchemaSnapshot{"a.b": 1, "c.d": 2, "e.f": 3}
	local := model.LocalSettings{
		"c.d": {occ("/c.py", 1, "2", true)},
		"x.y": {occ("/c.py", 2, "0", false)},
	}

	report := Classify(schema, local)

	// Every schema key is either missing or matched.
	accounted := make(map[string]bool)
	for _, name := range report.Missing {
		accounted[name] = true
	}
	for name := range local {
		if _, ok := schema[name]; ok {
			accounted[name] = true
		}
	}
	assert.Len(t, accounted, len(schema))
}

func TestClassifyActiveLinesNeverStale(t *testing.T) {
	schema := model.SchemaSnapshot{"example.setting": 2}
	local := model.LocalSettings{
		"example.setting": {occ("/c.py", 1, "1", true)},
	}

	report := Classify(schema, local)

	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Dropped)
	assert.Empty(t, report.Stale, "active lines are overrides, never default echoes")
}

func TestClassifyStaleDefault(t *testing.T) {
	schema := model.SchemaSnapshot{"example.setting": 2}
	local := model.LocalSettings{
		"example.setting": {occ("/c.py", 1, "1", false)},
	}

	report := Classify(schema, local)

	require.Len(t, report.Stale, 1)
	s := report.Stale[0]
	assert.Equal(t, "example.setting", s.Name)
	assert.Equal(t, int64(1), s.LocalValue)
	assert.Equal(t, 2, s.SchemaDefault)
}

func TestClassifyEqualDefaultNotStale(t *testing.T) {
	schema := model.SchemaSnapshot{"example.setting": 2}
	local := model.LocalSettings{
		"example.setting": {occ("/c.py", 1, "2", false)},
	}

	assert.Empty(t, Classify(schema, local).Stale)
}

func TestClassifyStructuralEquality(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		def     any
		isStale bool
	}{
		{"bool literal vs bool default", "True", true, false},
		{"int vs float default", "4", 4.0, false},
		{"string vs bool default", "'true'", true, true},
		{"list elementwise", "['a', 'b']", []any{"a", "b"}, false},
		{"list order matters", "['b', 'a']", []any{"a", "b"}, true},
		{"dict vs dict", "{'w': 'save'}", map[string]any{"w": "save"}, false},
		{"dict value differs", "{'w': 'save'}", map[string]any{"w": "quit"}, true},
		{"none vs null default", "None", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := model.SchemaSnapshot{"x.y": tt.def}
			local := model.LocalSettings{"x.y": {occ("/c.py", 1, tt.raw, false)}}
			stale := Classify(schema, local).Stale
			if tt.isStale {
				assert.Len(t, stale, 1)
			} else {
				assert.Empty(t, stale)
			}
		})
	}
}

func TestClassifyUndecodableEchoSkipped(t *testing.T) {
	schema := model.SchemaSnapshot{"x.y": 2}
	local := model.LocalSettings{
		"x.y": {occ("/c.py", 1, "some_function()", false)},
	}

	report := Classify(schema, local)

	// Decode failure excludes the occurrence from staleness but the key still
	// counts as configured.
	assert.Empty(t, report.Stale)
	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Dropped)
}

func TestClassifyEveryInactiveOccurrenceChecked(t *testing.T) {
	schema := model.SchemaSnapshot{"x.y": 2}
	local := model.LocalSettings{
		"x.y": {
			occ("/b.py", 8, "1", false),
			occ("/a.py", 3, "0", false),
		},
	}

	report := Classify(schema, local)

	require.Len(t, report.Stale, 2, "each inactive occurrence is checked independently")
	assert.Equal(t, model.Location{File: "/a.py", Line: 3}, report.Stale[0].Occurrence.Location)
	assert.Equal(t, model.Location{File: "/b.py", Line: 8}, report.Stale[1].Occurrence.Location)
}

func TestClassifyIdempotent(t *testing.T) {
	schema := model.SchemaSnapshot{"a.b": "x", "c.d": 1}
	local := model.LocalSettings{
		"a.b": {occ("/c.py", 1, "'y'", false)},
		"e.f": {occ("/c.py", 2, "1", true)},
	}

	first := Classify(schema, local)
	second := Classify(schema, local)
	assert.Equal(t, first, second)
}
