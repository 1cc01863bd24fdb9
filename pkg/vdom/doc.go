// Package vdom provides the in-memory node tree that components render to.
//
// A component is any value with a Render() *VNode method, or a plain
// function wrapped with Func. The tree it returns is handed to the render
// package to produce HTML, or inspected directly in tests.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"),
//	    Ul(Li(Text("first"))),
//	    Ul(Li("shorthand text child")),
//	)
//
// Arguments may be nil, Attr, []Attr, *VNode, []*VNode, Component or string.
// nil values and empty Attr values are skipped, which keeps conditional
// attributes readable:
//
//	Head(If(title != "", Title(title)), Attr_("data-theme", theme))
//
// # Queries
//
// Walk, FindAll, TextContent and Equal give read-only access to a rendered
// tree. Equal compares structure, not identity, and is what idempotence
// checks are built on.
package vdom
