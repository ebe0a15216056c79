package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	handleWidth   = 1
	minWidthChars = 20
	maxProportion = 0.8
)

// splitter is the draggable bar between the list and the event log.
type splitter struct {
	id         string
	proportion float64
	dragging   bool
	lastX      int
}

func newSplitter(id string, proportion float64) *splitter {
	return &splitter{id: id, proportion: proportion}
}

// listWidth returns the width of the left pane for a total width.
func (s *splitter) listWidth(total int) int {
	avail := total - handleWidth
	if avail <= 0 {
		return 0
	}
	return int(float64(avail) * s.proportion)
}

// handleMouse processes mouse events for resizing. It returns true when
// the event was consumed.
func (s *splitter) handleMouse(msg tea.MouseMsg, zones Zones, total int) bool {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inZone(zones.Get(s.id), msg.X, msg.Y) {
			s.dragging = true
			s.lastX = msg.X
			return true
		}
	case tea.MouseActionMotion:
		if s.dragging {
			s.resize(msg.X-s.lastX, total)
			s.lastX = msg.X
			return true
		}
	case tea.MouseActionRelease:
		if s.dragging {
			s.dragging = false
			s.lastX = 0
			return true
		}
	}
	return false
}

// resize moves the bar by deltaX cells, keeping both panes at least
// minWidthChars wide and neither above maxProportion.
func (s *splitter) resize(deltaX, total int) {
	avail := total - handleWidth
	if avail <= 0 || deltaX == 0 {
		return
	}
	p := s.proportion + float64(deltaX)/float64(avail)
	lo := float64(minWidthChars) / float64(avail)
	hi := maxProportion
	if 1-lo < hi {
		hi = 1 - lo
	}
	if lo > hi {
		return
	}
	s.proportion = min(max(p, lo), hi)
}

func (s *splitter) view(height int, zones Zones) string {
	style := splitStyle
	if s.dragging {
		style = splitActiveStyle
	}
	bar := strings.TrimSuffix(strings.Repeat("│\n", max(height, 0)), "\n")
	return zones.Mark(s.id, style.Render(bar))
}
