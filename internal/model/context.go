package model

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LineContext is a config line with up to two lines of surrounding context,
// used by the TUI detail pane and the web API.
type LineContext struct {
	Before  []string // up to two lines preceding the target, in file order
	Target  string   // the occurrence's own line
	After   []string // up to two lines following the target, in file order
	Line    int      // 1-based line number of Target
	ErrMsg  string   // non-empty if the file could not be read
	FromTop int      // line number of the first context line
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// GetLineContext reads a file and returns the target line with up to two
// lines of context on each side. Errors are reported in-band via ErrMsg so
// callers can render them instead of failing the whole view.
func GetLineContext(path string, line int) LineContext {
	ctx := LineContext{Line: line}

	f, err := os.Open(ExpandTilde(path))
	if err != nil {
		ctx.ErrMsg = fmt.Sprintf("could not read file: %v", err)
		return ctx
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		ctx.ErrMsg = fmt.Sprintf("error reading file: %v", err)
		return ctx
	}

	if line < 1 || line > len(lines) {
		ctx.ErrMsg = fmt.Sprintf("line %d out of range (file has %d lines)", line, len(lines))
		return ctx
	}

	ctx.Target = lines[line-1]

	start := line - 3 // 0-indexed, two lines before the target
	if start < 0 {
		start = 0
	}
	ctx.Before = lines[start : line-1]
	ctx.FromTop = start + 1

	end := line + 2
	if end > len(lines) {
		end = len(lines)
	}
	ctx.After = lines[line:end]

	return ctx
}
