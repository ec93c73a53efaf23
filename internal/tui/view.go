package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/quark/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("Quark • playground"),
		m.input.View(),
	}

	sections = append(sections, sectionStyle.Render("Output"))
	sections = append(sections, renderPreview(m.preview, m.showHTML))

	if m.preview.Err == nil {
		sections = append(sections, sectionStyle.Render("Slots"), components.NewSlotUsage(totalSlots()).View(m.preview.Used))
	}

	if swatches := renderSwatches(m.preview); swatches != "" {
		sections = append(sections, sectionStyle.Render("Colors"), swatches)
	}

	if m.history.Len() > 0 {
		sections = append(sections, sectionStyle.Render("History"), renderHistory(m.history.Entries()))
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderPreview(p Preview, showHTML bool) string {
	if p.Err != nil {
		return errorStyle.Render(p.Err.Error())
	}
	if showHTML {
		return summaryStyle.Render(p.HTML)
	}
	if p.Attrs == nil || p.Attrs.Len() == 0 {
		return mutedStyle.Render("  (nothing rendered)")
	}
	lines := []string{
		fmt.Sprintf("class: %s", classStyle.Render(p.Class)),
		fmt.Sprintf("style: %s", styleStyle.Render(p.Style)),
	}
	return summaryStyle.Render(strings.Join(lines, "\n"))
}

func renderHistory(entries []components.HistoryEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		icon := classStyle.Render("✓")
		if !e.OK() {
			icon = errorStyle.Render("✗")
		}
		lines = append(lines, fmt.Sprintf(" %s %s", icon, e.Input))
	}
	return strings.Join(lines, "\n")
}

func renderSwatches(p Preview) string {
	if p.Err != nil {
		return ""
	}
	var lines []string
	if v := components.NewSwatch("text", p.TextColor).View(); v != "" {
		lines = append(lines, "  "+v)
	}
	if v := components.NewSwatch("background", p.BackgroundColor).View(); v != "" {
		lines = append(lines, "  "+v)
	}
	return strings.Join(lines, "\n")
}
