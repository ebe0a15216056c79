package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rileylov/sortable/geom"
	"github.com/rileylov/sortable/internal/source"
	"github.com/rileylov/sortable/sortable"
)

// overlay paints seg over line starting at cell x. Cells of seg outside
// the line are dropped.
func overlay(line string, x int, seg string) string {
	lw, sw := ansi.StringWidth(line), ansi.StringWidth(seg)
	if sw == 0 || x >= lw || x+sw <= 0 {
		return line
	}
	if x < 0 {
		seg = ansi.TruncateLeft(seg, -x, "")
		sw += x
		x = 0
	}
	if x+sw > lw {
		seg = ansi.Truncate(seg, lw-x, "")
		sw = lw - x
	}
	return ansi.Truncate(line, x, "") + seg + ansi.TruncateLeft(line, x+sw, "")
}

func cell(v float64) int { return int(math.Round(v)) }

// renderList draws the list pane: every item where it is painted now,
// clipped to the pane.
func (m *Model) renderList(pane geom.Rect) string {
	w, h := cell(pane.Width), cell(pane.Height)
	if w <= 0 || h <= 0 {
		return ""
	}
	blank := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = blank
	}

	phase := m.engine.Phase()
	dragged, dragging := m.engine.DraggedItem()
	focused := m.engine.FocusedItem()
	handle := m.cfg.UI.Handle

	for _, it := range m.items {
		nodes := m.tree.items[it.ID]
		if nodes == nil {
			continue
		}
		r, err := nodes.node.BoundingRect()
		if err != nil {
			continue
		}
		row := cell(r.Y - pane.Y)
		if row < 0 || row >= h {
			continue
		}
		text := itemText(it, cell(r.Width), handle)
		style := itemStyle
		switch {
		case dragging && it.ID == dragged.ID && phase.Device() == sortable.DevicePointer:
			style = slotStyle
			text = fit(strings.Repeat("┄", cell(r.Width)), cell(r.Width))
		case dragging && it.ID == dragged.ID:
			style = liftedStyle
		case it.Locked:
			style = lockedStyle
		case it.ID == focused && !dragging:
			style = focusedStyle
		case it.Done:
			style = doneStyle
		}
		lines[row] = overlay(lines[row], cell(r.X-pane.X), style.Render(text))
	}
	return strings.Join(lines, "\n")
}

// drawGhost paints the ghost over the whole screen. The engine positions
// the ghost node and flags its state; nothing is drawn while it is idle.
func (m *Model) drawGhost(view string) string {
	state, _ := m.tree.ghost.Attr(sortable.AttrGhostState)
	if state == "" || state == sortable.PhaseIdle.String() {
		return view
	}
	ref, ok := m.engine.DraggedItem()
	if !ok {
		return view
	}
	it, ok := m.itemByID(ref.ID)
	if !ok {
		return view
	}
	r := m.tree.ghost.Layout()
	style := ghostStyle
	if !m.engine.IsBetweenBounds() && m.engine.Config().CanRemoveOnDropOut {
		style = removeStyle
	}
	return overlayBlock(view, cell(r.X), cell(r.Y), style.Render(itemText(it, cell(r.Width), m.cfg.UI.Handle)))
}

func overlayBlock(view string, x, y int, block string) string {
	lines := strings.Split(view, "\n")
	for i, seg := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		lines[row] = overlay(lines[row], x, seg)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) itemByID(id string) (source.Item, bool) {
	for _, it := range m.items {
		if it.ID == id {
			return it, true
		}
	}
	return source.Item{}, false
}

func (m *Model) renderLog(pane geom.Rect) string {
	title := logTitleStyle.Render(fit("events", cell(pane.Width)))
	return lipgloss.JoinVertical(lipgloss.Left, title, m.log.View())
}
