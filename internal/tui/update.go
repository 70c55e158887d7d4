package tui

import (
	"strings"

	"qbdrift/internal/drift"
	"qbdrift/internal/model"
	"qbdrift/internal/schema"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgDriftReady indicates that the scan has completed.
type MsgDriftReady []model.ResultGroup

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		return m, nil

	case MsgDriftReady:
		m.Loading = false
		m.Groups = []model.ResultGroup(msg)
		m.GroupIdx = 0
		m.SelectedIdx = 0
		m.refreshFilter()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.refreshFilter()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.refreshFilter()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			m.SearchActive = true
			m.refreshFilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.refreshFilter()
				return m, nil
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "tab", "l", "right":
			if len(m.Groups) > 0 {
				m.GroupIdx = (m.GroupIdx + 1) % len(m.Groups)
				m.SelectedIdx = 0
				m.refreshFilter()
			}
		case "shift+tab", "h", "left":
			if len(m.Groups) > 0 {
				m.GroupIdx = (m.GroupIdx + len(m.Groups) - 1) % len(m.Groups)
				m.SelectedIdx = 0
				m.refreshFilter()
			}
		case "g":
			m.SelectedIdx = 0
		case "G":
			if n := len(m.FilteredIndices); n > 0 {
				m.SelectedIdx = n - 1
			}
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

// refreshFilter rebuilds FilteredIndices for the current group from the
// search term (substring match on the setting name).
func (m *AppModel) refreshFilter() {
	g := m.currentGroup()
	if g == nil {
		m.FilteredIndices = nil
		return
	}

	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		m.SearchActive = false
		m.FilteredIndices = make([]int, g.Len())
		for i := range m.FilteredIndices {
			m.FilteredIndices[i] = i
		}
	} else {
		m.SearchActive = true
		var result []int
		for i := 0; i < g.Len(); i++ {
			if strings.Contains(strings.ToLower(entryName(g, i)), term) {
				result = append(result, i)
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}

// InitScanCmd runs the full reconciliation in background.
func InitScanCmd(configArgs []string, schemaPath string, opts model.Options) tea.Cmd {
	return func() tea.Msg {
		provider := schema.NewFileProvider(schemaPath)
		groups, err := drift.Run(configArgs, provider, opts)
		if err != nil {
			return MsgError(err)
		}
		return MsgDriftReady(groups)
	}
}
