// Package styles compiles CSS module sources into scoped class names.
//
// A style module is a stylesheet whose class selectors are local to the
// component that imports it. Compiling one rewrites every class selector
// to a generated name and records the mapping from the logical name:
//
//	.tipsContainer { display: flex; }
//
// becomes
//
//	._tipsContainer_3k9z1 { display: flex; }
//
// and Resolve("tipsContainer") returns "_tipsContainer_3k9z1". Generated
// names depend only on the module file name and the logical name, so they
// are stable across builds and processes.
//
// Components read classes through Class, which returns an empty attribute
// for names the module does not define. The element then renders without a
// class instead of failing:
//
//	vdom.Div(mod.Class("tipsContainer"), ...)
//
// Selectors wrapped in :global(...) are left untouched. Classes inside
// declaration blocks, string literals, comments and at-rule preludes are
// never treated as selectors.
//
// The class map can be saved to and loaded from JSON:
//
//	{"tipsContainer": "_tipsContainer_3k9z1", "tipsText": "_tipsText_0p2vd"}
package styles
