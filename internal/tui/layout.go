package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/rileylov/sortable/dom"
	"github.com/rileylov/sortable/geom"
	"github.com/rileylov/sortable/internal/config"
	"github.com/rileylov/sortable/internal/source"
	"github.com/rileylov/sortable/measure"
)

type layoutMode int

const (
	modeRows layoutMode = iota
	modeChips
	modeGrid
)

func (m layoutMode) String() string {
	switch m {
	case modeChips:
		return "chips"
	case modeGrid:
		return "grid"
	}
	return "rows"
}

func modeOf(l config.ListConfig) layoutMode {
	if l.HasWrapping {
		return modeGrid
	}
	if axis, _ := geom.ParseAxis(l.Direction); axis == geom.Horizontal {
		return modeChips
	}
	return modeRows
}

type layoutOptions struct {
	mode      layoutMode
	gap       int
	cellWidth int
	handle    bool
	rtl       bool
}

type itemNodes struct {
	node   *dom.Node
	handle *dom.Node
	check  *dom.Node
	label  *dom.Node
}

func newItemNodes(id string) *itemNodes {
	return &itemNodes{
		node: dom.NewNode("li",
			dom.WithClass(measure.ClassItem),
			dom.WithAttr("data-"+measure.AttrItemID, id),
			dom.WithAttr("role", "option"),
		),
		handle: dom.NewNode("span", dom.WithAttr("data-"+measure.AttrRole, "handle")),
		check:  dom.NewNode("span", dom.WithAttr("role", "checkbox")),
		label:  dom.NewNode("span"),
	}
}

// tree is the layout of the list in screen cells. Nodes are kept per item
// id across updates so the engine's references stay valid while items are
// added, removed and moved.
type tree struct {
	doc       *dom.Node
	container *dom.Node
	list      *dom.Node
	ghost     *dom.Node
	items     map[string]*itemNodes
}

func newTree() *tree {
	doc := dom.NewDocument(0, 0)
	container := dom.NewNode("div", dom.WithStyle(dom.Style{Overflow: dom.OverflowAuto}))
	list := dom.NewNode("ul", dom.WithClass(measure.ClassList), dom.WithAttr("role", "listbox"))
	ghost := dom.NewNode("div")
	container.AppendChild(list)
	doc.AppendChild(container)
	doc.AppendChild(ghost)
	return &tree{
		doc:       doc,
		container: container,
		list:      list,
		ghost:     ghost,
		items:     make(map[string]*itemNodes),
	}
}

func (t *tree) resize(width, height int) {
	w, h := float64(width), float64(height)
	t.doc.SetLayout(geom.Rect{Width: w, Height: h})
	t.doc.SetClientSize(w, h)
	t.doc.SetScrollSize(w, h)
}

// hit returns the deepest node of the scroll container under p.
func (t *tree) hit(p geom.Point) *dom.Node {
	return t.container.HitTest(p)
}

// sync brings the tree in line with items and lays them out in pane.
func (t *tree) sync(items []source.Item, pane geom.Rect, opt layoutOptions) {
	seen := make(map[string]bool, len(items))
	children := make([]*dom.Node, 0, len(items))
	for i, it := range items {
		n := t.items[it.ID]
		if n == nil {
			n = newItemNodes(it.ID)
			t.items[it.ID] = n
		}
		seen[it.ID] = true
		n.node.SetAttr("data-"+measure.AttrItemIndex, strconv.Itoa(i))
		n.node.SetAttr("data-"+measure.AttrLabel, it.Label)
		if it.Locked {
			n.node.SetAttr("data-"+measure.AttrIsLocked, "true")
		} else {
			n.node.RemoveAttr("data-" + measure.AttrIsLocked)
		}
		if opt.handle {
			n.node.SetChildren([]*dom.Node{n.handle, n.check, n.label})
		} else {
			n.node.SetChildren([]*dom.Node{n.check, n.label})
		}
		children = append(children, n.node)
	}
	for id := range t.items {
		if !seen[id] {
			delete(t.items, id)
		}
	}
	t.list.SetChildren(children)
	if opt.rtl {
		t.list.SetAttr("dir", string(measure.RTL))
	} else {
		t.list.SetAttr("dir", string(measure.Auto))
	}
	opt.rtl = measure.Direction(t.list) == measure.RTL
	t.place(items, pane, opt)
}

func (t *tree) place(items []source.Item, pane geom.Rect, opt layoutOptions) {
	inner := geom.Rect{X: pane.X + 1, Y: pane.Y + 1, Width: max(pane.Width-2, 1)}
	n := len(items)
	gap := opt.gap
	rects := make([]geom.Rect, n)
	contentW, contentH := inner.Width, 0

	switch opt.mode {
	case modeChips:
		gap = max(gap, 2)
		widths := make([]int, n)
		total := 0
		for i, it := range items {
			widths[i] = chipWidth(it, opt.handle)
			total += widths[i]
		}
		if n > 0 {
			total += gap * (n - 1)
			contentH = 1
		}
		contentW = max(inner.Width, float64(total))
		x := 0
		for i, w := range widths {
			r := geom.Rect{X: inner.X + float64(x), Y: inner.Y, Width: float64(w), Height: 1}
			if opt.rtl {
				r.X = inner.X + contentW - float64(x+w)
			}
			rects[i] = r
			x += w + gap
		}
	case modeGrid:
		cw := max(opt.cellWidth, 4)
		gapX := max(gap, 1)
		cols := max(1, (int(inner.Width)+gapX)/(cw+gapX))
		for i := range items {
			rects[i] = geom.Rect{
				X:      inner.X + float64((i%cols)*(cw+gapX)),
				Y:      inner.Y + float64((i/cols)*(1+gap)),
				Width:  float64(cw),
				Height: 1,
			}
		}
		if n > 0 {
			rows := (n + cols - 1) / cols
			contentH = rows*(1+gap) - gap
		}
	default:
		for i := range items {
			rects[i] = geom.Rect{X: inner.X, Y: inner.Y + float64(i*(1+gap)), Width: inner.Width, Height: 1}
		}
		if n > 0 {
			contentH = n*(1+gap) - gap
		}
	}

	for i, it := range items {
		nodes := t.items[it.ID]
		r := rects[i]
		nodes.node.SetLayout(r)
		x := r.X
		if opt.handle {
			nodes.handle.SetLayout(geom.Rect{X: x, Y: r.Y, Width: 1, Height: 1})
			x += 2
		}
		nodes.check.SetLayout(geom.Rect{X: x, Y: r.Y, Width: 3, Height: 1})
		x += 4
		nodes.label.SetLayout(geom.Rect{X: x, Y: r.Y, Width: max(r.Right()-x, 0), Height: 1})
	}

	t.list.SetLayout(geom.Rect{X: inner.X, Y: inner.Y, Width: contentW, Height: float64(contentH)})
	t.container.SetLayout(pane)
	t.container.SetClientSize(pane.Width, pane.Height)
	t.container.SetScrollSize(contentW+2, float64(contentH+2))
}

func itemPrefix(it source.Item, handle bool) string {
	var b strings.Builder
	if handle {
		b.WriteString("⠿ ")
	}
	if it.Done {
		b.WriteString("[x] ")
	} else {
		b.WriteString("[ ] ")
	}
	return b.String()
}

func itemLabel(it source.Item) string {
	if it.Locked {
		return it.Label + " (locked)"
	}
	return it.Label
}

func chipWidth(it source.Item, handle bool) int {
	return ansi.StringWidth(itemPrefix(it, handle)+itemLabel(it)) + 1
}

// itemText is the item's content padded or cut to width cells.
func itemText(it source.Item, width int, handle bool) string {
	text := itemPrefix(it, handle) + itemLabel(it)
	if it.Detail != "" {
		if pad := width - ansi.StringWidth(text) - ansi.StringWidth(it.Detail); pad >= 1 {
			text += strings.Repeat(" ", pad) + it.Detail
		}
	}
	return fit(text, width)
}

func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}
