// Package tips renders the usage tips shown next to the course assistant.
package tips

import (
	_ "embed"

	"github.com/vango-dev/tips/pkg/styles"
	. "github.com/vango-dev/tips/pkg/vdom"
)

//go:embed tips.module.css
var stylesheet []byte

// Styles is the compiled style module for this component.
var Styles = styles.MustCompile("tips.module.css", stylesheet)

var texts = [...]string{
	"The assistant prefers when you use department abreviations. eg: CSE for computer science",
	"Start with low complexity questions and get more specific as the conversation continues",
	"The assistant excels at finding courses that meet your interests",
}

// Texts returns the tips in display order.
func Texts() []string {
	out := make([]string, len(texts))
	copy(out, texts[:])
	return out
}

// Tips returns the tips container: one list per tip, each holding a single item.
func Tips() *VNode {
	return build(Styles)
}

// build builds the tree against an explicit style module.
func build(mod *styles.Module) *VNode {
	return Div(mod.Class("tipsContainer"),
		Range(texts[:], func(text string, _ int) *VNode {
			return Ul(mod.Class("tipsText"),
				Li(Text(text)),
			)
		}),
	)
}
