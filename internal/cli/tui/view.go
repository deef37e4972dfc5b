package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxVisibleCalls = 10

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	// Title bar
	sections = append(sections, m.renderTitleBar())

	// Error display
	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	// Main content
	if m.run != nil {
		sections = append(sections, m.renderRunInfo())
		if len(m.run.Calls) > 0 {
			sections = append(sections, m.renderCalls())
		}
	}

	// Footer
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("HDSBENCH RUN MONITOR")

	refreshInfo := fmt.Sprintf("↻ %s", m.config.RefreshInterval)
	if m.loading {
		refreshInfo = "↻ loading..."
	}

	help := helpStyle.Render("q:quit r:refresh")

	// Calculate spacing
	rightPart := fmt.Sprintf("%s | %s", refreshInfo, help)
	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(rightPart) - 2
	if spacing < 1 {
		spacing = 1
	}

	return fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", spacing), helpStyle.Render(rightPart))
}

func (m Model) renderRunInfo() string {
	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("  Run"))

	lines = append(lines, fmt.Sprintf("  %s %s    %s %s",
		labelStyle.Render("Method:"), valueStyle.Render(m.run.MethodName),
		labelStyle.Render("Function:"), valueStyle.Render(m.run.FunctionName),
	))
	lines = append(lines, fmt.Sprintf("  %s %s    %s %s",
		labelStyle.Render("User:"), valueStyle.Render(m.run.User),
		labelStyle.Render("Started:"), valueStyle.Render(m.run.StartedAt),
	))

	return strings.Join(lines, "\n")
}

func (m Model) renderCalls() string {
	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("  Method Calls"))

	header := fmt.Sprintf("  %6s │ %10s │ %10s │ %8s",
		"Call", "dt (s)", "Total", "New")
	lines = append(lines, tableHeaderStyle.Render(header))

	calls := m.run.Calls
	start := 0
	if len(calls) > maxVisibleCalls {
		start = len(calls) - maxVisibleCalls
	}

	for _, c := range calls[start:] {
		row := fmt.Sprintf("  %6d │ %10.4f │ %10d │ %8d",
			c.ID, c.Elapsed, c.TotalSize, c.NewPoints)
		lines = append(lines, tableCellStyle.Render(row))
	}

	if start > 0 {
		scrollInfo := fmt.Sprintf("  [last %d of %d calls]", maxVisibleCalls, len(calls))
		lines = append(lines, helpStyle.Render(scrollInfo))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	if m.run == nil {
		return ""
	}

	updated := m.lastUpdated.Format("15:04:05")

	return helpStyle.Render(fmt.Sprintf(
		"  Iterations: %d │ Sampled points: %d │ Updated: %s",
		m.run.Iterations(),
		m.run.TotalSize(),
		updated,
	))
}
