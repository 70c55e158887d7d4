// Package drift compares the schema snapshot against the aggregated local
// settings and produces the three drift categories: missing, dropped and
// stale defaults.
package drift

import (
	"sort"

	"qbdrift/internal/model"
)

// Classify computes the three drift classes from an immutable schema
// snapshot and the aggregated local settings. Deterministic: same inputs,
// same report.
func Classify(schema model.SchemaSnapshot, local model.LocalSettings) model.DriftReport {
	var report model.DriftReport

	for name := range schema {
		if _, ok := local[name]; !ok {
			report.Missing = append(report.Missing, name)
		}
	}
	sort.Strings(report.Missing)

	for name, occs := range local {
		if _, ok := schema[name]; !ok {
			report.Dropped = append(report.Dropped, model.DroppedEntry{
				Name:     name,
				Location: occs[0].Location,
			})
		}
	}
	sort.Slice(report.Dropped, func(i, j int) bool {
		return report.Dropped[i].Location.Before(report.Dropped[j].Location)
	})

	for name, occs := range local {
		def, ok := schema[name]
		if !ok {
			continue
		}
		for _, occ := range occs {
			if occ.Active {
				// Active lines are user overrides, never default echoes.
				continue
			}
			val, err := DecodeLiteral(occ.RawValue)
			if err != nil {
				// Undecodable echo: skip this occurrence, keep the run going.
				continue
			}
			if !equalValue(val, def) {
				report.Stale = append(report.Stale, model.StaleDefault{
					Name:          name,
					Occurrence:    occ,
					LocalValue:    val,
					SchemaDefault: def,
				})
			}
		}
	}
	sort.Slice(report.Stale, func(i, j int) bool {
		return report.Stale[i].Occurrence.Location.Before(report.Stale[j].Occurrence.Location)
	})

	return report
}

// equalValue compares a decoded local literal against a schema default by
// structure and value, not by string form. Numbers compare numerically
// across int/float; every other kind must match exactly.
func equalValue(a, b any) bool {
	if af, aok := asFloat(a); aok {
		bf, bok := asFloat(b)
		return bok && af == bf
	}

	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equalValue(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bval, present := bv[k]
			if !present || !equalValue(v, bval) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// asFloat widens any numeric representation (ours and yaml's) to float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}
