package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rileylov/sortable/internal/config"
)

// toggle is a header button flipping one setting.
type toggle struct {
	id    string
	label string
	flag  func(*config.Config) *bool
}

func newToggles(prefix string) []toggle {
	return []toggle{
		{prefix + "bounds", "bounds", func(c *config.Config) *bool { return &c.List.HasBoundaries }},
		{prefix + "axis", "axis", func(c *config.Config) *bool { return &c.List.HasLockedAxis }},
		{prefix + "remove", "remove", func(c *config.Config) *bool { return &c.List.CanRemoveOnDropOut }},
		{prefix + "clear", "clear", func(c *config.Config) *bool { return &c.List.CanClearTargetOnDragOut }},
		{prefix + "handle", "handle", func(c *config.Config) *bool { return &c.UI.Handle }},
		{prefix + "rtl", "rtl", func(c *config.Config) *bool { return &c.List.RTL }},
		{prefix + "disabled", "disabled", func(c *config.Config) *bool { return &c.List.IsDisabled }},
		{prefix + "log", "log", func(c *config.Config) *bool { return &c.UI.ShowLog }},
	}
}

// toggleAt returns the header button under the cell x, y.
func (m *Model) toggleAt(x, y int) (toggle, bool) {
	for _, t := range m.toggles {
		if inZone(m.zones.Get(t.id), x, y) {
			return t, true
		}
	}
	return toggle{}, false
}

func (m *Model) headerView() string {
	buttons := make([]string, 0, len(m.toggles))
	for _, t := range m.toggles {
		style := toggleStyle
		if *t.flag(m.cfg) {
			style = toggleActiveStyle
		}
		buttons = append(buttons, m.zones.Mark(t.id, style.Render(t.label)))
	}
	right := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	title := "sortable · " + m.sourceName + " · " + modeOf(m.cfg.List).String()
	room := max(m.width-lipgloss.Width(right)-2, 0)
	if ansi.StringWidth(title) > room {
		title = ansi.Truncate(title, room, "…")
	}
	left := titleStyle.Render(title)
	spacing := headerStyle.Render(fit("", max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)))
	return ansi.Truncate(lipgloss.JoinHorizontal(lipgloss.Top, left, spacing, right), m.width, "")
}
