package render

import "github.com/vango-dev/tips/pkg/vdom"

// inlineElements are elements that are typically rendered inline
// and don't need newlines in pretty-printed output.
var inlineElements = map[string]bool{
	"a":      true,
	"abbr":   true,
	"b":      true,
	"br":     true,
	"cite":   true,
	"code":   true,
	"em":     true,
	"i":      true,
	"kbd":    true,
	"mark":   true,
	"q":      true,
	"s":      true,
	"small":  true,
	"span":   true,
	"strong": true,
	"sub":    true,
	"sup":    true,
	"time":   true,
	"u":      true,
	"wbr":    true,
}

// isInlineElement returns true if the tag is an inline element.
func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

// booleanAttrs are attributes that don't need a value.
// When true, they're rendered as just the attribute name.
var booleanAttrs = map[string]bool{
	"async":    true,
	"checked":  true,
	"defer":    true,
	"disabled": true,
	"hidden":   true,
	"multiple": true,
	"open":     true,
	"readonly": true,
	"required": true,
	"reversed": true,
	"selected": true,
}

// isBooleanAttr returns true if the attribute is a boolean attribute.
func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

// hasBlockChild reports whether pretty output should break lines inside
// node. Elements holding only text and inline children stay on one line.
func hasBlockChild(node *vdom.VNode) bool {
	if isInlineElement(node.Tag) {
		return false
	}
	for _, child := range node.Children {
		child = child.Expand()
		if child == nil {
			continue
		}
		switch child.Kind {
		case vdom.KindElement:
			if !isInlineElement(child.Tag) {
				return true
			}
		case vdom.KindFragment:
			if hasBlockChild(&vdom.VNode{Children: child.Children}) {
				return true
			}
		}
	}
	return false
}
