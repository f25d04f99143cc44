package presentation

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f5f0e6"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	headStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e879f9")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	amountStyle = cellStyle.Align(lipgloss.Right)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fde68a"))

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52525b"))
)

// RenderTerminal draws the document as a bordered table for the CLI.
func RenderTerminal(d Document) string {
	rows := make([][]string, 0, len(d.Lines))
	for _, l := range d.Lines {
		rows = append(rows, []string{l.Description, l.QuantityText, l.RateText, l.TotalText})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(d.Labels.Description, d.Labels.Quantity, d.Labels.Rate, d.Labels.Total).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headStyle
			case col >= 1:
				return amountStyle
			default:
				return cellStyle
			}
		})

	client := d.Client.Name
	if d.Client.Company != "" {
		client += ", " + d.Client.Company
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Labels.Title + "  " + d.QuoteNumber))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(d.Labels.Date + ": " + d.Date + "   " + d.Labels.ValidUntil + ": " + d.ValidUntil))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(d.Labels.PreparedFor + ": " + client + " <" + d.Client.Email + ">"))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(d.Labels.Project + ": " + d.ProjectName))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(totalStyle.Render(d.Labels.GrandTotal + ": " + d.GrandTotalText))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(d.Notes))
	b.WriteString("\n")
	return b.String()
}
