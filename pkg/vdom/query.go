package vdom

import (
	"reflect"
	"strings"
)

// Walk visits node and its descendants depth-first in document order.
// Component nodes are expanded before their output is visited. Returning
// false from fn skips the children of the current node.
func Walk(node *VNode, fn func(n *VNode, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node *VNode, depth int, fn func(n *VNode, depth int) bool) {
	node = node.Expand()
	if node == nil {
		return
	}
	if !fn(node, depth) {
		return
	}
	for _, child := range node.Children {
		walk(child, depth+1, fn)
	}
}

// FindAll returns every element with the given tag, in document order.
func FindAll(node *VNode, tag string) []*VNode {
	var found []*VNode
	Walk(node, func(n *VNode, _ int) bool {
		if n.Kind == KindElement && n.Tag == tag {
			found = append(found, n)
		}
		return true
	})
	return found
}

// Elements returns the element children of node, skipping text and
// expanding fragments and components.
func (v *VNode) Elements() []*VNode {
	if v == nil {
		return nil
	}
	var out []*VNode
	for _, child := range v.Children {
		child = child.Expand()
		if child == nil {
			continue
		}
		switch child.Kind {
		case KindElement:
			out = append(out, child)
		case KindFragment:
			out = append(out, child.Elements()...)
		}
	}
	return out
}

// TextContent concatenates the text of all descendant text nodes.
func (v *VNode) TextContent() string {
	var b strings.Builder
	Walk(v, func(n *VNode, _ int) bool {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// ClassName returns the class attribute of an element, or "" when unset.
func (v *VNode) ClassName() string {
	if v == nil || v.Props == nil {
		return ""
	}
	s, _ := v.Props["class"].(string)
	return s
}

// Equal reports whether two trees have the same structure, attributes and
// text. Components are compared by the trees they render.
func Equal(a, b *VNode) bool {
	a, b = a.Expand(), b.Expand()
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Text != b.Text {
		return false
	}
	if len(a.Props) != len(b.Props) {
		return false
	}
	for k, av := range a.Props {
		bv, ok := b.Props[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
