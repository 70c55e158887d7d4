package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cls := NewClassifier()

	tests := []struct {
		name string
		line string
		want LineSetting
		ok   bool
	}{
		{
			name: "active assignment",
			line: "c.tabs.show = 'always'",
			want: LineSetting{Name: "tabs.show", RawValue: "'always'", Active: true},
			ok:   true,
		},
		{
			name: "commented assignment",
			line: "# c.tabs.show = 'always'",
			want: LineSetting{Name: "tabs.show", RawValue: "'always'", Active: false},
			ok:   true,
		},
		{
			name: "comment marker without space",
			line: "#c.tabs.show = 'always'",
			want: LineSetting{Name: "tabs.show", RawValue: "'always'", Active: false},
			ok:   true,
		},
		{
			name: "value keeps further equals signs",
			line: "c.content.headers.custom = {'x-greeting': 'a=b'}",
			want: LineSetting{Name: "content.headers.custom", RawValue: "{'x-greeting': 'a=b'}", Active: true},
			ok:   true,
		},
		{
			name: "name split at first assignment operator",
			line: "c.a = b = c",
			want: LineSetting{Name: "a", RawValue: "b = c", Active: true},
			ok:   true,
		},
		{
			name: "dict value",
			line: "c.aliases = {'w': 'session-save', 'q': 'close'}",
			want: LineSetting{Name: "aliases", RawValue: "{'w': 'session-save', 'q': 'close'}", Active: true},
			ok:   true,
		},
		{name: "section header", line: "## Tabs", ok: false},
		{name: "section header with setting shape", line: "## c.tabs.show = 'always'", ok: false},
		{name: "blank line", line: "", ok: false},
		{name: "plain comment", line: "# Autogenerated config.py", ok: false},
		{name: "python statement", line: "config.load_autoconfig()", ok: false},
		{name: "missing prefix", line: "tabs.show = 'always'", ok: false},
		{name: "missing assignment operator", line: "c.tabs.show", ok: false},
		{name: "assignment without spaces", line: "c.tabs.show='always'", ok: false},
		{name: "prefix mid-line", line: "x = c.tabs.show = 1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cls.Classify(tt.line)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	cls := NewClassifier()
	first, ok1 := cls.Classify("# c.fonts.default_size = '10pt'")
	second, ok2 := cls.Classify("# c.fonts.default_size = '10pt'")
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}
