// Package render provides server-side rendering (SSR) of vdom trees.
//
// The render package converts VNode trees into HTML, handling:
//
//   - HTML5 compliant element rendering
//   - Text and attribute escaping
//   - Void element handling (br, img, link, etc.)
//   - Boolean attribute handling (hidden, disabled, etc.)
//   - Deterministic attribute order, so repeated renders are byte-identical
//   - Full page rendering with DOCTYPE, head and body, built as a tree
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title:       "Course assistant",
//	    StyleSheets: []string{"/static/tips.1a2b3c4d.css"},
//	    Body:        bodyNode,
//	})
//
// A Renderer holds only its configuration and is safe for concurrent use.
//
// # Security
//
// All text content is escaped. Raw HTML can be inserted using KindRaw
// nodes, which must only carry trusted content.
package render
