package drift

import (
	"qbdrift/internal/model"
	"qbdrift/internal/schema"
)

// Group titles, shared by the report, TUI and web views.
const (
	TitleMissing = "Not in local config"
	TitleDropped = "Not available in qutebrowser anymore"
	TitleStale   = "Commented-out defaults that changed"
)

// Assemble orders and groups a DriftReport for presentation. Each selected,
// non-empty category yields one group: missing settings sorted by name,
// dropped and stale entries sorted by (file, line) so a reviewer meets them
// in the order of their own files. Emits structured records only; rendering
// is someone else's job.
func Assemble(report model.DriftReport, opts model.Options) []model.ResultGroup {
	var groups []model.ResultGroup

	if opts.Missing && len(report.Missing) > 0 {
		entries := make([]model.MissingEntry, len(report.Missing))
		for i, name := range report.Missing {
			entries[i] = model.MissingEntry{Name: name, HelpURL: schema.HelpURL(name)}
		}
		groups = append(groups, model.ResultGroup{
			Category: model.CategoryMissing,
			Title:    TitleMissing,
			Missing:  entries,
		})
	}

	if opts.Dropped && len(report.Dropped) > 0 {
		// Already location-sorted by Classify.
		groups = append(groups, model.ResultGroup{
			Category: model.CategoryDropped,
			Title:    TitleDropped,
			Dropped:  report.Dropped,
		})
	}

	if opts.Stale && len(report.Stale) > 0 {
		entries := make([]model.StaleEntry, len(report.Stale))
		for i, s := range report.Stale {
			entries[i] = model.StaleEntry{
				Name:          s.Name,
				Location:      s.Occurrence.Location,
				LocalValue:    s.LocalValue,
				SchemaDefault: s.SchemaDefault,
			}
		}
		groups = append(groups, model.ResultGroup{
			Category: model.CategoryStale,
			Title:    TitleStale,
			Stale:    entries,
		})
	}

	return groups
}
