package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconMissing  = "∅" // setting never configured locally
	IconDropped  = "✗" // setting unknown to the schema
	IconStale    = "≈" // commented default disagrees with the schema
	IconActive   = "●" // active (uncommented) occurrence
	IconInactive = "○" // commented-out occurrence
	IconOK       = " " // no drift (no icon to reduce noise)
)
