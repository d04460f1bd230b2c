package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Background(lipgloss.Color("230")).
			Padding(0, 1).
			MarginLeft(1)

	overlayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Italic(true)

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	stackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("109"))
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.finished {
		return fmt.Sprintf("flow finished: %s\n", m.result)
	}

	var b strings.Builder

	top := m.top()
	if top == nil {
		b.WriteString("waiting for first screen...\n")
	} else {
		b.WriteString(m.renderBar(top))
		b.WriteString("\n")
		if top.overlay {
			b.WriteString(overlayStyle.Render("presented as overlay"))
			b.WriteString("\n")
		}
		b.WriteString(m.renderStack())
		b.WriteString("\n")
	}

	for _, line := range m.tailLog(m.logLimit()) {
		b.WriteString(logStyle.Render(line))
		b.WriteString("\n")
	}

	if m.typing {
		b.WriteString("\nnavigate to: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		"1-9 press button · l left button · esc back · b host back · n navigate · f finish · q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderBar draws the top screen's navigation bar: left slot, title,
// numbered right buttons.
func (m *Model) renderBar(e *entry) string {
	var parts []string

	if e.bar.LeftButton != nil {
		label := e.bar.LeftButton.Title
		if label == "" {
			label = e.bar.LeftButton.Icon
		}
		if label == "" {
			label = "<"
		}
		parts = append(parts, buttonStyle.Render("[l] "+label))
	}

	parts = append(parts, titleStyle.Render(e.bar.Title))

	for i, btn := range e.bar.Buttons {
		label := btn.Title
		if label == "" {
			label = btn.Icon
		}
		if label == "" {
			label = btn.ID
		}
		parts = append(parts, buttonStyle.Render(fmt.Sprintf("[%d] %s", i+1, label)))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	if m.width > 0 {
		return barStyle.Width(m.width).Render(row)
	}
	return barStyle.Render(row)
}

// renderStack shows the simulated host stack, root first.
func (m *Model) renderStack() string {
	names := make([]string, len(m.stack))
	for i, e := range m.stack {
		names[i] = e.name
	}
	return stackStyle.Render("stack: " + strings.Join(names, " > "))
}

// logLimit bounds the visible log so the bar, stack line, input and
// help line still fit in the window.
func (m *Model) logLimit() int {
	limit := 8
	if m.height > 0 && m.height-7 < limit {
		limit = m.height - 7
		if limit < 1 {
			limit = 1
		}
	}
	return limit
}

func (m *Model) tailLog(n int) []string {
	if len(m.log) <= n {
		return m.log
	}
	return m.log[len(m.log)-n:]
}
