package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/sortable/internal/config"
	"github.com/rileylov/sortable/internal/source"
	"github.com/rileylov/sortable/sortable"
)

type fakeZones struct {
	zones map[string]*zone.ZoneInfo
}

func (f *fakeZones) Mark(_, v string) string      { return v }
func (f *fakeZones) Scan(v string) string         { return v }
func (f *fakeZones) Get(id string) *zone.ZoneInfo { return f.zones[id] }
func (f *fakeZones) set(id string, x0, y0, x1, y1 int) {
	f.zones[id] = &zone.ZoneInfo{StartX: x0, StartY: y0, EndX: x1, EndY: y1}
}

// newTestModel builds a 60x20 model without the event log. The list pane
// starts on row 1 and the first item sits at x=1, y=2, one row per item.
func newTestModel(t *testing.T, mutate func(*config.Config), labels ...string) (*Model, *fakeZones) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.UI.ShowLog = false
	cfg.List.TransitionDuration = 0
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())

	items := make([]source.Item, len(labels))
	for i, l := range labels {
		items[i] = source.Item{ID: l, Label: l}
	}
	z := &fakeZones{zones: make(map[string]*zone.ZoneInfo)}
	m := New(cfg, items, z, WithClipboard(func(string) error { return nil }))
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return m, z
}

func order(m *Model) []string {
	var out []string
	for _, it := range m.Items() {
		out = append(out, it.Label)
	}
	return out
}

func press(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func move(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

func release(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func keys(m *Model, msgs ...tea.KeyMsg) {
	for _, k := range msgs {
		m.Update(k)
	}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestLayoutRows(t *testing.T) {
	m, _ := newTestModel(t, nil, "a", "b", "c")

	for i, id := range []string{"a", "b", "c"} {
		r, err := m.tree.items[id].node.BoundingRect()
		require.NoError(t, err)
		assert.Equal(t, 1.0, r.X, id)
		assert.Equal(t, float64(2+i), r.Y, id)
		assert.Equal(t, 58.0, r.Width, id)
	}
	idx, _ := m.tree.items["c"].node.Data("item-index")
	assert.Equal(t, "2", idx)
}

func TestKeyboardReorder(t *testing.T) {
	m, _ := newTestModel(t, nil, "a", "b", "c", "d")
	require.Equal(t, "a", m.Engine().FocusedItem())

	keys(m, space)
	assert.Equal(t, sortable.PhaseKeyboardDragStart, m.Engine().Phase())
	keys(m, down, down)
	assert.Equal(t, sortable.PhaseKeyboardDrag, m.Engine().Phase())
	assert.Contains(t, m.status, "position 3")
	keys(m, space)

	assert.Equal(t, sortable.PhaseIdle, m.Engine().Phase())
	assert.Empty(t, cmp.Diff([]string{"b", "c", "a", "d"}, order(m)))
	assert.Equal(t, "a", m.Engine().FocusedItem())
}

func TestKeyboardCancel(t *testing.T) {
	m, _ := newTestModel(t, nil, "a", "b", "c")

	keys(m, space, down, esc)
	assert.Equal(t, sortable.PhaseIdle, m.Engine().Phase())
	assert.Equal(t, []string{"a", "b", "c"}, order(m))
}

func TestTransitionTimer(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.Config) { c.List.TransitionDuration = 150e6 }, "a", "b", "c")

	keys(m, space, down)
	_, cmd := m.Update(space)
	assert.NotNil(t, cmd)
	assert.Equal(t, sortable.PhaseKeyboardDrop, m.Engine().Phase())
	assert.Equal(t, []string{"a", "b", "c"}, order(m))

	m.Update(timerMsg{fired: sortable.TimerFired{Timer: sortable.TimerTransition, Token: 1}})
	assert.Equal(t, sortable.PhaseIdle, m.Engine().Phase())
	assert.Equal(t, []string{"b", "a", "c"}, order(m))
}

func TestPointerReorder(t *testing.T) {
	m, _ := newTestModel(t, nil, "a", "b", "c", "d")

	press(m, 10, 2)
	assert.Equal(t, sortable.PhasePointerDragStart, m.Engine().Phase())
	move(m, 10, 4)
	assert.Equal(t, sortable.PhasePointerDrag, m.Engine().Phase())
	target, ok := m.Engine().TargetItem()
	require.True(t, ok)
	assert.Equal(t, "c", target.ID)

	// b slid up into a's slot.
	r, err := m.tree.items["b"].node.BoundingRect()
	require.NoError(t, err)
	assert.Equal(t, 2.0, r.Y)

	// The slot placeholder stays visible beside the ghost.
	move(m, 30, 4)
	target, ok = m.Engine().TargetItem()
	require.True(t, ok)
	assert.Equal(t, "c", target.ID)
	list, _ := m.panes()
	assert.Contains(t, m.renderList(list), "┄")
	assert.Contains(t, m.View(), "┄")

	release(m, 30, 4)
	assert.Equal(t, sortable.PhaseIdle, m.Engine().Phase())
	assert.Equal(t, []string{"b", "c", "a", "d"}, order(m))
	assert.Contains(t, m.logLines, "dragend [pointer] a → c")
}

func TestPointerEscapeCancels(t *testing.T) {
	m, _ := newTestModel(t, nil, "a", "b", "c")

	press(m, 10, 2)
	move(m, 10, 4)
	keys(m, esc)
	assert.Equal(t, sortable.PhaseIdle, m.Engine().Phase())
	release(m, 10, 4)
	assert.Equal(t, []string{"a", "b", "c"}, order(m))
}

func TestDropOutsideRemoves(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.Config) { c.List.CanRemoveOnDropOut = true }, "a", "b", "c", "d")

	press(m, 10, 2)
	move(m, 10, 15)
	assert.False(t, m.Engine().IsBetweenBounds())
	release(m, 10, 15)

	assert.Equal(t, []string{"b", "c", "d"}, order(m))
	assert.NotContains(t, m.tree.items, "a")
}

func TestCheckboxDoesNotDrag(t *testing.T) {
	m, _ := newTestModel(t, nil, "a", "b")

	press(m, 2, 3)
	assert.Equal(t, sortable.PhaseIdle, m.Engine().Phase())
	assert.True(t, m.Items()[1].Done)
	release(m, 2, 3)
	assert.Equal(t, []string{"a", "b"}, order(m))
}

func TestHandleMode(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.Config) { c.UI.Handle = true }, "a", "b")

	press(m, 20, 2)
	assert.Equal(t, sortable.PhaseIdle, m.Engine().Phase(), "label is not a handle")
	release(m, 20, 2)

	press(m, 1, 2)
	assert.Equal(t, sortable.PhasePointerDragStart, m.Engine().Phase())
}

func TestHeaderToggle(t *testing.T) {
	m, z := newTestModel(t, nil, "a", "b")
	z.set("sortable.toggle.bounds", 40, 0, 47, 0)

	press(m, 41, 0)
	assert.True(t, m.cfg.List.HasBoundaries)
	assert.True(t, m.Engine().Config().HasBoundaries)
	assert.Equal(t, sortable.PhaseIdle, m.Engine().Phase())
}

func TestAddDeleteAndCopy(t *testing.T) {
	var copied string
	m, _ := newTestModel(t, nil, "a", "b")
	m.clipboard = func(s string) error { copied = s; return nil }

	keys(m, runes("a"), runes("zest"), enter)
	assert.Equal(t, []string{"a", "zest", "b"}, order(m))
	assert.Equal(t, m.Items()[1].ID, m.Engine().FocusedItem())

	keys(m, runes("d"))
	assert.Equal(t, []string{"a", "b"}, order(m))
	assert.Equal(t, "b", m.Engine().FocusedItem())

	keys(m, runes("c"))
	assert.Equal(t, "a\nb", copied)

	m.clipboard = func(string) error { return errors.New("no clipboard") }
	keys(m, runes("c"))
	assert.True(t, m.statusErr)
}

func TestLockedItemIsSkipped(t *testing.T) {
	m, _ := newTestModel(t, nil, "a", "b", "c")

	keys(m, down, runes("L"))
	assert.True(t, m.Items()[1].Locked)

	keys(m, up, space, down)
	target, ok := m.Engine().TargetItem()
	require.True(t, ok)
	assert.Equal(t, "c", target.ID)
	assert.Equal(t, 2, target.Index)

	keys(m, esc)
	assert.Equal(t, sortable.PhaseIdle, m.Engine().Phase())
	assert.Equal(t, []string{"a", "b", "c"}, order(m))
}

func TestCycleLayout(t *testing.T) {
	m, _ := newTestModel(t, nil, "one", "two")

	keys(m, runes("o"))
	assert.Equal(t, modeChips, modeOf(m.cfg.List))
	a, _ := m.tree.items["one"].node.BoundingRect()
	b, _ := m.tree.items["two"].node.BoundingRect()
	assert.Equal(t, a.Y, b.Y)
	assert.Greater(t, b.X, a.X)

	keys(m, runes("o"))
	assert.Equal(t, modeGrid, modeOf(m.cfg.List))
	keys(m, runes("o"))
	assert.Equal(t, modeRows, modeOf(m.cfg.List))
}

func TestChipsFollowLabelDirection(t *testing.T) {
	horizontal := func(c *config.Config) { c.List.Direction = "horizontal" }
	m, _ := newTestModel(t, horizontal, "אלף", "בית", "גימל")

	dir, _ := m.tree.list.Attr("dir")
	assert.Equal(t, "auto", dir)
	label, _ := m.tree.items["בית"].node.Data("label")
	assert.Equal(t, "בית", label)

	a, _ := m.tree.items["אלף"].node.BoundingRect()
	b, _ := m.tree.items["בית"].node.BoundingRect()
	assert.Less(t, b.X, a.X)

	// Left moves towards the end of a right-to-left list.
	left := tea.KeyMsg{Type: tea.KeyLeft}
	keys(m, space, left, space)
	assert.Equal(t, []string{"בית", "אלף", "גימל"}, order(m))

	m, _ = newTestModel(t, horizontal, "one", "two")
	a, _ = m.tree.items["one"].node.BoundingRect()
	b, _ = m.tree.items["two"].node.BoundingRect()
	assert.Greater(t, b.X, a.X)
}

func TestQuitDestroys(t *testing.T) {
	m, _ := newTestModel(t, nil, "a")

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, m.logLines, "destroyed")
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name string
		line string
		x    int
		seg  string
		want string
	}{
		{"inside", "abcdef", 2, "XY", "abXYef"},
		{"clipped left", "abcdef", -1, "XYZ", "YZcdef"},
		{"clipped right", "abc", 2, "XYZ", "abX"},
		{"outside", "abc", 5, "XYZ", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overlay(tt.line, tt.x, tt.seg))
		})
	}
}

func TestSplitter(t *testing.T) {
	s := newSplitter("split", 0.5)
	assert.Equal(t, 50, s.listWidth(101))

	s.resize(40, 101)
	assert.InDelta(t, 0.8, s.proportion, 1e-9)
	s.resize(-100, 101)
	assert.InDelta(t, 0.2, s.proportion, 1e-9)

	z := &fakeZones{zones: map[string]*zone.ZoneInfo{}}
	z.set("split", 20, 1, 20, 10)
	assert.True(t, s.handleMouse(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, z, 101))
	assert.True(t, s.handleMouse(tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, z, 101))
	assert.InDelta(t, 0.3, s.proportion, 1e-9)
	assert.True(t, s.handleMouse(tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionRelease}, z, 101))
	assert.False(t, s.handleMouse(tea.MouseMsg{X: 31, Y: 5, Action: tea.MouseActionMotion}, z, 101))
}
