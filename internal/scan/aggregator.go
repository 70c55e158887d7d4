package scan

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"qbdrift/internal/model"
)

// AggregateFile scans one config file and collects every setting occurrence
// with its 1-based line number. A setting may appear several times in one
// file (toggled between commented and uncommented at different points); all
// occurrences are kept in line order.
func AggregateFile(path string, cls *Classifier) (map[string][]model.Occurrence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	out := make(map[string][]model.Occurrence)

	scanner := bufio.NewScanner(f)
	// Generated configs can carry long list/dict literals on one line.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		ls, ok := cls.Classify(strings.TrimSpace(scanner.Text()))
		if !ok {
			continue
		}
		out[ls.Name] = append(out[ls.Name], model.Occurrence{
			Location: model.Location{File: path, Line: lineNo},
			RawValue: ls.RawValue,
			Active:   ls.Active,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return out, nil
}

// Merge folds per-file aggregation results into one LocalSettings mapping.
// Occurrence lists for the same setting are concatenated in file-discovery
// order; nothing is deduplicated, so the same setting defined identically in
// two files keeps both sightings with their distinct locations.
func Merge(perFile []map[string][]model.Occurrence) model.LocalSettings {
	merged := make(model.LocalSettings)
	for _, fileResult := range perFile {
		for name, occs := range fileResult {
			merged[name] = append(merged[name], occs...)
		}
	}
	return merged
}

// ScanAll aggregates every file in order and merges the results. Files are
// read sequentially, one fully read before the next; any read failure aborts
// the whole scan.
func ScanAll(paths []string) (model.LocalSettings, error) {
	cls := NewClassifier()
	perFile := make([]map[string][]model.Occurrence, 0, len(paths))
	for _, path := range paths {
		fileResult, err := AggregateFile(path, cls)
		if err != nil {
			return nil, err
		}
		slog.Debug("scanned config file", "path", path, "settings", len(fileResult))
		perFile = append(perFile, fileResult)
	}
	return Merge(perFile), nil
}
