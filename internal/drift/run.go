package drift

import (
	"qbdrift/internal/model"
	"qbdrift/internal/scan"
	"qbdrift/internal/schema"
)

// Run executes one full reconciliation: discover config files, aggregate
// local settings, snapshot the schema, classify and assemble. Discovery runs
// first, so "no config found" fails before the schema provider is touched.
// Any error aborts the run with no partial result.
func Run(configArgs []string, provider schema.Provider, opts model.Options) ([]model.ResultGroup, error) {
	paths, err := scan.Discover(configArgs)
	if err != nil {
		return nil, err
	}

	local, err := scan.ScanAll(paths)
	if err != nil {
		return nil, err
	}

	if err := provider.Init(); err != nil {
		return nil, err
	}
	snap, err := provider.Snapshot()
	if err != nil {
		return nil, err
	}

	report := Classify(snap, local)
	return Assemble(report, opts), nil
}
