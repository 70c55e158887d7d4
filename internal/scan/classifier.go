// Package scan reads config.py files and aggregates every setting sighting
// with file and line provenance. It never writes to the files it reads.
package scan

import (
	"regexp"
	"strings"
)

// LineSetting is the classifier's verdict for a single config line.
type LineSetting struct {
	Name     string // dot-delimited setting path, e.g. "tabs.show"
	RawValue string // text right of " = ", unparsed
	Active   bool   // false when the line was commented out
}

// Classifier recognizes setting assignments in qutebrowser config.py lines.
type Classifier struct {
	re *regexp.Regexp
}

// NewClassifier creates a Classifier with the compiled line pattern.
func NewClassifier() *Classifier {
	// Pattern: (# )?c.<name> = <value>
	// Matches:
	//   c.tabs.show = 'always'
	//   # c.tabs.show = 'always'
	//   #c.tabs.show = 'always'
	// The name group is non-greedy so the split happens at the first " = ";
	// the value keeps any further "=" characters.
	return &Classifier{
		re: regexp.MustCompile(`^(# ?)?c\.(.+?) = (.*)$`),
	}
}

// Classify decides whether one whitespace-trimmed line encodes a setting
// assignment. Blank lines, section headers ("## ..."), and lines without the
// "c." prefix or the " = " operator are not settings. Pure function of the
// line text.
func (c *Classifier) Classify(line string) (LineSetting, bool) {
	if line == "" || strings.HasPrefix(line, "## ") {
		// Generated configs use "## Section" comment headers.
		return LineSetting{}, false
	}
	m := c.re.FindStringSubmatch(line)
	if m == nil {
		return LineSetting{}, false
	}
	return LineSetting{
		Name:     m[2],
		RawValue: m[3],
		Active:   m[1] == "",
	}, true
}
