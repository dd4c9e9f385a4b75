package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	missStyle    = lipgloss.NewStyle().Faint(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	langStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(4)
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	helpStyle    = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("dateparser"))
	b.WriteString(missStyle.Render(fmt.Sprintf("  base: %s", m.base.Format(m.format))))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.result != nil:
		line := m.result.Time.Format(m.format)
		tag := m.result.Resolver
		if m.result.Language != "" {
			tag += "/" + m.result.Language
		}
		b.WriteString(resultStyle.Render("→ " + line))
		b.WriteString(missStyle.Render("  (" + tag + ")"))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if len(m.probes) > 0 {
		b.WriteString(sectionStyle.Render("per language"))
		b.WriteString("\n")
		for _, p := range m.probes {
			b.WriteString(langStyle.Render(p.lang))
			if p.ok {
				b.WriteString(resultStyle.Render(p.result))
			} else {
				b.WriteString(missStyle.Render("—"))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("esc to quit"))
	b.WriteString("\n")

	return b.String()
}
