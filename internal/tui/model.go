package tui

import (
	"qbdrift/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Groups  []model.ResultGroup
	Loading bool
	Err     error

	// Scan inputs, fixed at startup
	ConfigArgs []string
	SchemaPath string
	Opts       model.Options

	// UI State
	GroupIdx    int // selected category tab
	SelectedIdx int // selected entry within the filtered list
	WindowSize  tea.WindowSizeMsg

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // indices into the current group's entries
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state.
func InitialModel(configArgs []string, schemaPath string, opts model.Options) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Setting name..."
	ti.CharLimit = 60
	ti.Width = 24

	return AppModel{
		Loading:     true,
		ConfigArgs:  configArgs,
		SchemaPath:  schemaPath,
		Opts:        opts,
		InputBuffer: ti,
		SelectedIdx: 0,
	}
}

// Init starts the scan in the background.
func (m *AppModel) Init() tea.Cmd {
	return InitScanCmd(m.ConfigArgs, m.SchemaPath, m.Opts)
}

// currentGroup returns the selected category group, or nil while empty.
func (m *AppModel) currentGroup() *model.ResultGroup {
	if len(m.Groups) == 0 || m.GroupIdx >= len(m.Groups) {
		return nil
	}
	return &m.Groups[m.GroupIdx]
}

// entryName returns the setting name of entry i in group g.
func entryName(g *model.ResultGroup, i int) string {
	switch g.Category {
	case model.CategoryMissing:
		return g.Missing[i].Name
	case model.CategoryDropped:
		return g.Dropped[i].Name
	default:
		return g.Stale[i].Name
	}
}

// entryLocation returns the source location of entry i in group g, if it
// has one (missing settings have no local sighting).
func entryLocation(g *model.ResultGroup, i int) (model.Location, bool) {
	switch g.Category {
	case model.CategoryDropped:
		return g.Dropped[i].Location, true
	case model.CategoryStale:
		return g.Stale[i].Location, true
	default:
		return model.Location{}, false
	}
}
