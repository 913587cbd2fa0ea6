package benchmark

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	nameStyle      = lipgloss.NewStyle().Width(20)
	valueStyle     = lipgloss.NewStyle().Width(14).Align(lipgloss.Right)
	fasterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	slowerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	reportBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Render formats the comparison as a small table followed by the
// difference of the average rounds.
func (c *Comparison) Render() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("%d rounds x %d iterations", len(c.First.Rounds), c.First.Iterations)))
	sb.WriteString("\n")
	sb.WriteString(row("case", "total", "avg round", "per call"))
	for _, r := range []*Result{c.First, c.Second} {
		sb.WriteString("\n")
		sb.WriteString(row(r.Name, formatSeconds(r.Total), formatSeconds(r.Average()), r.PerCall().String()))
	}
	sb.WriteString("\n\n")

	diff := c.Difference()
	style := fasterStyle
	if diff > 0 {
		style = slowerStyle
	}
	sb.WriteString(style.Render(fmt.Sprintf("Total difference %.3f", diff.Seconds())))

	return reportBoxStyle.Render(sb.String())
}

func row(name, total, average, perCall string) string {
	return nameStyle.Render(name) + valueStyle.Render(total) + valueStyle.Render(average) + valueStyle.Render(perCall)
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}
