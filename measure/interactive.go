package measure

import (
	"strings"

	"github.com/rileylov/sortable/dom"
)

var interactiveTags = map[string]bool{
	"a":        true,
	"audio":    true,
	"button":   true,
	"input":    true,
	"optgroup": true,
	"option":   true,
	"select":   true,
	"textarea": true,
	"video":    true,
}

var interactiveRoles = map[string]bool{
	"button":   true,
	"checkbox": true,
	"link":     true,
	"tab":      true,
}

// IsHandle reports whether n is marked as a drag handle.
func IsHandle(n *dom.Node) bool {
	v, ok := n.Data(AttrRole)
	return ok && v == "handle"
}

// IsInteractive reports whether target is, or sits inside, a control that
// must keep pointer input for itself. The walk stops at root. A drag handle
// on the way wins over any interactive ancestor.
func IsInteractive(target, root *dom.Node) bool {
	for n := target; n != nil && n != root; n = n.Parent() {
		if IsHandle(n) {
			return false
		}
		if interactiveTags[n.Tag()] {
			return true
		}
		if role, ok := n.Attr("role"); ok && interactiveRoles[strings.ToLower(role)] {
			return true
		}
		if n.Tag() == "label" && n.HasAttr("for") {
			return true
		}
	}
	return false
}

// Handle returns the drag handle inside item, or nil.
func Handle(item *dom.Node) *dom.Node {
	if item == nil {
		return nil
	}
	return item.Query(IsHandle)
}
