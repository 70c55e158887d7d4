package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qbdrift/internal/drift"
	"qbdrift/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	detailBorderStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("63"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	contextTargetStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("81")).
				Bold(true)
)

func (m *AppModel) View() string {
	if m.Loading {
		return "\n  Scanning config files... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press q to quit.\n", m.Err)
	}
	if len(m.Groups) == 0 {
		return "\n  " + titleStyle.Render("qbdrift") +
			"\n\n  No drift found. Local config matches the schema.\n\n  Press q to quit.\n"
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	// Header: category tabs with counts
	var tabs []string
	for i, g := range m.Groups {
		label := fmt.Sprintf("%s (%d)", g.Title, g.Len())
		if i == m.GroupIdx {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	g := m.currentGroup()

	// LEFT PANEL: entry list with windowing around the selection
	var leftView strings.Builder
	visibleItems := interiorHeight
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.FilteredIndices)
	if len(m.FilteredIndices) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx+visibleItems > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visibleItems
		}
		if startIdx < 0 {
			startIdx = 0
		}
		endIdx = startIdx + visibleItems
	}

	for i := startIdx; i < endIdx; i++ {
		idx := m.FilteredIndices[i]
		line := fmt.Sprintf("%3d. %s %s", idx+1, categoryIcon(g.Category), entryName(g, idx))
		if len(line) > leftWidth-2 {
			line = line[:leftWidth-5] + "..."
		}
		if i == m.SelectedIdx {
			leftView.WriteString(selectedStyle.Render(line))
		} else {
			leftView.WriteString(normalStyle.Render(line))
		}
		leftView.WriteString("\n")
	}
	if len(m.FilteredIndices) == 0 {
		leftView.WriteString(dimStyle.Render("  (no matches)"))
	}

	// RIGHT PANEL: detail for the selected entry
	rightView := m.detailView(g, rightWidth-4)

	leftBox := detailBorderStyle.Width(leftWidth).Height(boxHeight).Render(leftView.String())
	rightBox := detailBorderStyle.Width(rightWidth).Height(boxHeight).Render(rightView)
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)

	// Footer
	footer := dimStyle.Render("  j/k: move   tab: category   /: search   q: quit")
	if m.InputMode {
		footer = "  Search: " + m.InputBuffer.View()
	} else if m.SearchActive {
		footer = dimStyle.Render(fmt.Sprintf("  filter: %q (esc to clear)   j/k: move   tab: category   q: quit",
			m.InputBuffer.Value()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"  "+titleStyle.Render("qbdrift")+"  "+header,
		body,
		footer,
	)
}

// detailView renders the right-hand pane for the current selection.
func (m *AppModel) detailView(g *model.ResultGroup, width int) string {
	if len(m.FilteredIndices) == 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return dimStyle.Render("Nothing selected.")
	}
	idx := m.FilteredIndices[m.SelectedIdx]

	var b strings.Builder
	name := entryName(g, idx)
	b.WriteString(contextTargetStyle.Render(name))
	b.WriteString("\n\n")

	switch g.Category {
	case model.CategoryMissing:
		b.WriteString("Declared by qutebrowser but never\nconfigured locally.\n\n")
		b.WriteString(dimStyle.Render(g.Missing[idx].HelpURL))
		b.WriteString("\n")
	case model.CategoryDropped:
		e := g.Dropped[idx]
		b.WriteString("Present in your config but unknown to\nthe current schema.\n\n")
		b.WriteString(dimStyle.Render(e.Location.String()))
		b.WriteString("\n\n")
		b.WriteString(renderContext(e.Location, width))
	case model.CategoryStale:
		e := g.Stale[idx]
		b.WriteString("Commented-out default echo that no\nlonger matches the schema.\n\n")
		b.WriteString("file has:   " + valueStyle.Render(drift.FormatValue(e.LocalValue)) + "\n")
		b.WriteString("default is: " + valueStyle.Render(drift.FormatValue(e.SchemaDefault)) + "\n\n")
		b.WriteString(dimStyle.Render(e.Location.String()))
		b.WriteString("\n\n")
		b.WriteString(renderContext(e.Location, width))
	}

	return b.String()
}

// renderContext shows the source line with two lines of context either side.
func renderContext(loc model.Location, width int) string {
	ctx := model.GetLineContext(loc.File, loc.Line)
	if ctx.ErrMsg != "" {
		return dimStyle.Render(ctx.ErrMsg)
	}

	var b strings.Builder
	lineNo := ctx.FromTop
	for _, l := range ctx.Before {
		b.WriteString(dimStyle.Render(truncate(fmt.Sprintf("%4d  %s", lineNo, l), width)))
		b.WriteString("\n")
		lineNo++
	}
	b.WriteString(contextTargetStyle.Render(truncate(fmt.Sprintf("%4d  %s", ctx.Line, ctx.Target), width)))
	b.WriteString("\n")
	lineNo = ctx.Line + 1
	for _, l := range ctx.After {
		b.WriteString(dimStyle.Render(truncate(fmt.Sprintf("%4d  %s", lineNo, l), width)))
		b.WriteString("\n")
		lineNo++
	}
	return b.String()
}

func truncate(s string, width int) string {
	if width > 3 && len(s) > width {
		return s[:width-3] + "..."
	}
	return s
}

func categoryIcon(category string) string {
	switch category {
	case model.CategoryMissing:
		return model.IconMissing
	case model.CategoryDropped:
		return model.IconDropped
	case model.CategoryStale:
		return model.IconStale
	default:
		return model.IconOK
	}
}

var _ tea.Model = (*AppModel)(nil)
