package drift

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qbdrift/internal/model"
)

var (
	reportHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	reportNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	reportDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	reportValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("208")) // Orange
)

// GenerateReport renders assembled result groups as a plain-text report.
// plain suppresses the location and help-URL annotations, leaving bare
// setting names the way the original script printed them.
func GenerateReport(groups []model.ResultGroup, plain bool) string {
	var b strings.Builder

	if len(groups) == 0 {
		b.WriteString("No drift found. Local config matches the schema.\n")
		return b.String()
	}

	for gi, g := range groups {
		if gi > 0 {
			b.WriteString("\n")
		}
		b.WriteString(reportHeaderStyle.Render(fmt.Sprintf("%s (%d)", g.Title, g.Len())))
		b.WriteString("\n")

		switch g.Category {
		case model.CategoryMissing:
			for _, e := range g.Missing {
				b.WriteString("  " + reportNameStyle.Render(e.Name))
				if !plain {
					b.WriteString("  " + reportDimStyle.Render(e.HelpURL))
				}
				b.WriteString("\n")
			}
		case model.CategoryDropped:
			for _, e := range g.Dropped {
				b.WriteString("  " + reportNameStyle.Render(e.Name))
				if !plain {
					b.WriteString("  " + reportDimStyle.Render(e.Location.String()))
				}
				b.WriteString("\n")
			}
		case model.CategoryStale:
			for _, e := range g.Stale {
				b.WriteString("  " + reportNameStyle.Render(e.Name))
				if !plain {
					b.WriteString("  " + reportDimStyle.Render(e.Location.String()))
				}
				b.WriteString("\n")
				b.WriteString(fmt.Sprintf("    file has %s, default is %s\n",
					reportValueStyle.Render(FormatValue(e.LocalValue)),
					reportValueStyle.Render(FormatValue(e.SchemaDefault))))
			}
		}
	}

	return b.String()
}
