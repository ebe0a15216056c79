// Package tui hosts a sortable list in the terminal. It lays the items out
// in cells, feeds mouse and keyboard input to the drag engine and carries
// out the effects the engine returns.
package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rileylov/sortable/geom"
	"github.com/rileylov/sortable/internal/config"
	"github.com/rileylov/sortable/internal/source"
	"github.com/rileylov/sortable/measure"
	"github.com/rileylov/sortable/sortable"
)

const (
	headerHeight = 1
	maxLogLines  = 500
	splitZoneID  = "sortable.split"
)

// timerMsg delivers an engine timer through the bubbletea loop.
type timerMsg struct{ fired sortable.TimerFired }

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger of the model and its engine.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.clipboard = write }
}

// WithSourceName sets the label shown in the header.
func WithSourceName(name string) Option {
	return func(m *Model) { m.sourceName = name }
}

// Model is the bubbletea model of the sortable list.
type Model struct {
	cfg    *config.Config
	engine *sortable.Engine
	tree   *tree
	items  []source.Item

	zones   Zones
	keys    keyMap
	help    help.Model
	input   textinput.Model
	log     viewport.Model
	split   *splitter
	toggles []toggle

	logLines   []string
	status     string
	statusErr  bool
	adding     bool
	sourceName string

	width, height int

	logger    *zap.Logger
	clipboard func(string) error
}

// New creates the model for items. zones records where the header buttons
// and the split bar are drawn; it is usually a *zone.Manager.
func New(cfg *config.Config, items []source.Item, zones Zones, opts ...Option) *Model {
	m := &Model{
		cfg:        cfg,
		items:      slices.Clone(items),
		zones:      zones,
		keys:       newKeyMap(),
		help:       help.New(),
		log:        viewport.New(0, 0),
		split:      newSplitter(splitZoneID, cfg.UI.Split),
		toggles:    newToggles("sortable.toggle."),
		sourceName: "items",
		logger:     zap.NewNop(),
		clipboard:  clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log.MouseWheelEnabled = true
	m.input = textinput.New()
	m.input.Prompt = "add: "
	m.input.Placeholder = "new item"
	m.input.CharLimit = 120

	m.tree = newTree()
	m.engine = sortable.New(m.tree.list, cfg.ToEngine(),
		sortable.WithLogger(m.logger.Named("engine")),
		sortable.WithGhost(m.tree.ghost),
	)
	m.relayout()
	return m
}

// Items returns the items in their current order.
func (m *Model) Items() []source.Item { return slices.Clone(m.items) }

// Engine returns the drag engine of the list.
func (m *Model) Engine() *sortable.Engine { return m.engine }

func (m *Model) Init() tea.Cmd {
	cmd := m.apply(m.engine.Mount())
	for _, it := range m.items {
		if !it.Locked {
			m.apply(m.engine.Handle(sortable.Focus{ID: it.ID}))
			break
		}
	}
	return cmd
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, m.apply(m.engine.Handle(sortable.LayoutChanged{}))
	case timerMsg:
		return m, m.apply(m.engine.Handle(msg.fired))
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m, m.updateMouse(msg)
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}
	if m.adding {
		return m, m.updateInput(msg)
	}
	if m.engine.Phase() == sortable.PhaseIdle {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.quit()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.relayout()
			return m, nil
		case key.Matches(msg, m.keys.Add):
			m.adding = true
			return m, m.input.Focus()
		case key.Matches(msg, m.keys.Delete):
			return m, m.deleteFocused()
		case key.Matches(msg, m.keys.Done):
			m.toggleDone(m.engine.FocusedItem())
			return m, nil
		case key.Matches(msg, m.keys.Lock):
			return m, m.toggleLock()
		case key.Matches(msg, m.keys.Layout):
			return m, m.cycleLayout()
		case key.Matches(msg, m.keys.Copy):
			m.copyOrder()
			return m, nil
		}
	}
	if k, ok := m.keys.engineKey(msg); ok {
		return m, m.apply(m.engine.Handle(sortable.KeyPress{Key: k}))
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		label := strings.TrimSpace(m.input.Value())
		m.closeInput()
		if label == "" {
			return nil
		}
		return m.addItem(label)
	case tea.KeyEsc:
		m.closeInput()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) closeInput() {
	m.adding = false
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) updateMouse(msg tea.MouseMsg) tea.Cmd {
	idle := m.engine.Phase() == sortable.PhaseIdle
	if m.cfg.UI.ShowLog && idle && m.split.handleMouse(msg, m.zones, m.width) {
		m.relayout()
		return nil
	}
	p := geom.Point{X: float64(msg.X), Y: float64(msg.Y)}
	list, logPane := m.panes()

	switch msg.Action {
	case tea.MouseActionPress:
		if tea.MouseEvent(msg).IsWheel() {
			return m.wheel(msg, p, list, logPane)
		}
		if t, ok := m.toggleAt(msg.X, msg.Y); ok && msg.Button == tea.MouseButtonLeft {
			if !idle {
				return nil
			}
			*t.flag(m.cfg) = !*t.flag(m.cfg)
			return m.applyConfig()
		}
		if !list.Contains(p) {
			return nil
		}
		target := m.tree.hit(p)
		button := 0
		if msg.Button != tea.MouseButtonLeft {
			button = int(msg.Button)
		}
		cmd := m.apply(m.engine.Handle(sortable.PointerDown{Point: p, Target: target, Button: button}))
		if button == 0 && target != nil && target.AttrOr("role", "") == "checkbox" {
			m.toggleDone(measure.ItemID(target.Parent()))
		}
		return cmd
	case tea.MouseActionMotion:
		return m.apply(m.engine.Handle(sortable.PointerMove{Point: p}))
	case tea.MouseActionRelease:
		return m.apply(m.engine.Handle(sortable.PointerUp{Point: p}))
	}
	return nil
}

// wheel scrolls the pane under the pointer.
func (m *Model) wheel(msg tea.MouseMsg, p geom.Point, list, logPane geom.Rect) tea.Cmd {
	if logPane.Contains(p) {
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return cmd
	}
	if !list.Contains(p) {
		return nil
	}
	d := 0.0
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		d = -1
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		d = 1
	}
	if modeOf(m.cfg.List) == modeChips {
		m.tree.container.ScrollBy(d, 0)
	} else {
		m.tree.container.ScrollBy(0, d)
	}
	return m.apply(m.engine.Handle(sortable.LayoutChanged{}))
}

// apply carries out engine effects in order.
func (m *Model) apply(effects []sortable.Effect) tea.Cmd {
	var cmds []tea.Cmd
	changed := false
	for _, fx := range effects {
		switch fx := fx.(type) {
		case sortable.Emit:
			m.logEvent(fx.Event)
		case sortable.Announce:
			m.setStatus(fx.Message, false)
			m.appendLog("» " + fx.Message)
		case sortable.Reorder:
			m.items = sortable.SortItems(m.items, fx.From, fx.To)
			changed = true
		case sortable.Remove:
			m.items = sortable.RemoveItem(m.items, fx.Index)
			changed = true
		case sortable.Schedule:
			fired := sortable.TimerFired{Timer: fx.Timer, Token: fx.Token}
			cmds = append(cmds, tea.Tick(fx.After, func(time.Time) tea.Msg { return timerMsg{fired: fired} }))
		case sortable.SetFocus:
			m.logger.Debug("Focus moved.", zap.String("item", fx.ID))
		case sortable.Scrolled:
		}
	}
	if changed {
		m.relayout()
		cmds = append(cmds, m.apply(m.engine.Handle(sortable.LayoutChanged{})))
	}
	return tea.Batch(cmds...)
}

func (m *Model) logEvent(ev sortable.Event) {
	line := string(ev.Type)
	if ev.Type != sortable.EventMounted && ev.Type != sortable.EventDestroyed {
		line += fmt.Sprintf(" [%s] %s", ev.Device, m.labelOf(ev.Dragged.ID))
		if ev.Target != nil {
			line += " → " + m.labelOf(ev.Target.ID)
		}
		if !ev.IsBetweenBounds {
			line += " (outside)"
		}
		if ev.IsCanceled {
			line += " (canceled)"
		}
	}
	m.appendLog(line)
	m.logger.Debug("List event.",
		zap.String("type", string(ev.Type)),
		zap.String("item", ev.Dragged.ID),
		zap.Int("index", ev.Dragged.Index),
	)
}

func (m *Model) labelOf(id string) string {
	if it, ok := m.itemByID(id); ok {
		return it.Label
	}
	return id
}

func (m *Model) appendLog(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
	m.refreshLog()
}

func (m *Model) refreshLog() {
	lines := make([]string, len(m.logLines))
	for i, l := range m.logLines {
		lines[i] = fit(l, m.log.Width)
	}
	m.log.SetContent(strings.Join(lines, "\n"))
	m.log.GotoBottom()
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status, m.statusErr = msg, isErr
}

func (m *Model) layoutOptions() layoutOptions {
	return layoutOptions{
		mode:      modeOf(m.cfg.List),
		gap:       m.cfg.List.Gap,
		cellWidth: m.cfg.List.CellWidth,
		handle:    m.cfg.UI.Handle,
		rtl:       m.cfg.List.RTL,
	}
}

func (m *Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// panes returns the screen boxes of the list and of the event log.
func (m *Model) panes() (list, log geom.Rect) {
	bodyH := float64(max(m.height-headerHeight-m.footerHeight(), 0))
	if !m.cfg.UI.ShowLog {
		return geom.Rect{Y: headerHeight, Width: float64(m.width), Height: bodyH}, geom.Rect{}
	}
	lw := m.split.listWidth(m.width)
	list = geom.Rect{Y: headerHeight, Width: float64(lw), Height: bodyH}
	log = geom.Rect{X: float64(lw + handleWidth), Y: headerHeight, Width: float64(max(m.width-lw-handleWidth, 0)), Height: bodyH}
	return list, log
}

func (m *Model) relayout() {
	m.help.Width = m.width
	m.tree.resize(m.width, m.height)
	list, logPane := m.panes()
	m.tree.sync(m.items, list, m.layoutOptions())
	m.log.Width = cell(logPane.Width)
	m.log.Height = max(cell(logPane.Height)-1, 0)
	m.refreshLog()
}

// applyConfig hands the edited configuration to the engine and lays the
// list out again.
func (m *Model) applyConfig() tea.Cmd {
	m.engine.SetConfig(m.cfg.ToEngine())
	m.relayout()
	return m.apply(m.engine.Handle(sortable.LayoutChanged{}))
}

func (m *Model) cycleLayout() tea.Cmd {
	switch modeOf(m.cfg.List) {
	case modeRows:
		m.cfg.List.Direction, m.cfg.List.HasWrapping = geom.Horizontal.String(), false
	case modeChips:
		m.cfg.List.Direction, m.cfg.List.HasWrapping = geom.Vertical.String(), true
	default:
		m.cfg.List.Direction, m.cfg.List.HasWrapping = geom.Vertical.String(), false
	}
	m.tree.container.ScrollTo(0, 0)
	m.setStatus("layout: "+modeOf(m.cfg.List).String(), false)
	return m.applyConfig()
}

func (m *Model) indexOf(id string) int {
	return slices.IndexFunc(m.items, func(it source.Item) bool { return it.ID == id })
}

func (m *Model) addItem(label string) tea.Cmd {
	item := source.NewItem(label)
	at := len(m.items)
	if i := m.indexOf(m.engine.FocusedItem()); i >= 0 {
		at = i + 1
	}
	m.items = slices.Insert(m.items, at, item)
	m.relayout()
	cmd := m.apply(m.engine.Handle(sortable.LayoutChanged{}))
	m.apply(m.engine.Handle(sortable.Focus{ID: item.ID}))
	m.setStatus(fmt.Sprintf("added %s at position %d", label, at+1), false)
	return cmd
}

func (m *Model) deleteFocused() tea.Cmd {
	i := m.indexOf(m.engine.FocusedItem())
	if i < 0 {
		return nil
	}
	label := m.items[i].Label
	m.items = sortable.RemoveItem(m.items, i)
	m.relayout()
	cmd := m.apply(m.engine.Handle(sortable.LayoutChanged{}))
	next := ""
	if len(m.items) > 0 {
		next = m.items[min(i, len(m.items)-1)].ID
	}
	m.apply(m.engine.Handle(sortable.Focus{ID: next}))
	m.setStatus("deleted "+label, false)
	return cmd
}

func (m *Model) toggleDone(id string) {
	if i := m.indexOf(id); i >= 0 {
		m.items[i].Done = !m.items[i].Done
	}
}

func (m *Model) toggleLock() tea.Cmd {
	i := m.indexOf(m.engine.FocusedItem())
	if i < 0 {
		return nil
	}
	m.items[i].Locked = !m.items[i].Locked
	m.relayout()
	return m.apply(m.engine.Handle(sortable.LayoutChanged{}))
}

func (m *Model) copyOrder() {
	labels := make([]string, len(m.items))
	for i, it := range m.items {
		labels[i] = it.Label
	}
	if err := m.clipboard(strings.Join(labels, "\n")); err != nil {
		m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("copied %d items", len(labels)), false)
}

func (m *Model) quit() tea.Cmd {
	m.apply(m.engine.Destroy())
	return tea.Quit
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	list, logPane := m.panes()
	body := m.renderList(list)
	if m.cfg.UI.ShowLog && logPane.Width > 0 {
		logView := lipgloss.NewStyle().
			Width(cell(logPane.Width)).
			Height(cell(logPane.Height)).
			MaxHeight(cell(logPane.Height)).
			Render(m.renderLog(logPane))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.split.view(cell(list.Height), m.zones), logView)
	}
	view := lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.statusView(), m.help.View(m.keys))
	return m.zones.Scan(m.drawGhost(view))
}

func (m *Model) statusView() string {
	if m.adding {
		return m.input.View()
	}
	if m.statusErr {
		return errorStyle.Render(fit(m.status, m.width))
	}
	return statusStyle.Render(fit(m.status, m.width))
}
