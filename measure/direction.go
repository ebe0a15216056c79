package measure

import (
	"github.com/rileylov/sortable/dom"
	"golang.org/x/text/unicode/bidi"
)

// TextDirection is the inline direction of a subtree.
type TextDirection string

const (
	LTR  TextDirection = "ltr"
	RTL  TextDirection = "rtl"
	Auto TextDirection = "auto"
)

// ResolveTextDirection walks n and its ancestors for an explicit dir
// attribute. Auto is returned when none is set.
func ResolveTextDirection(n *dom.Node) TextDirection {
	if n == nil {
		return Auto
	}
	for p := n; p != nil; p = p.Parent() {
		switch v, _ := p.Attr("dir"); TextDirection(v) {
		case LTR, RTL, Auto:
			return TextDirection(v)
		}
	}
	return Auto
}

// DetectDirection resolves Auto from content: the first strong character
// decides, LTR when there is none.
func DetectDirection(text string) TextDirection {
	if d, ok := firstStrong(text); ok {
		return d
	}
	return LTR
}

// Direction is the used inline direction of n. An explicit ltr or rtl on n
// or an ancestor wins. Otherwise the labels of the dir="auto" element, or of
// n itself when no dir is set, are scanned in document order for the first
// strong character.
func Direction(n *dom.Node) TextDirection {
	if n == nil {
		return LTR
	}
	scope := n
ancestors:
	for p := n; p != nil; p = p.Parent() {
		switch v, _ := p.Attr("dir"); TextDirection(v) {
		case LTR, RTL:
			return TextDirection(v)
		case Auto:
			scope = p
			break ancestors
		}
	}

	dir := LTR
	found := false
	scope.Walk(func(c *dom.Node) bool {
		if found {
			return false
		}
		if label, ok := c.Data(AttrLabel); ok {
			dir, found = firstStrong(label)
		}
		return !found
	})
	return dir
}

func firstStrong(text string) (TextDirection, bool) {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return LTR, true
		case bidi.R, bidi.AL:
			return RTL, true
		}
	}
	return LTR, false
}
