package render

import (
	"io"

	"github.com/vango-dev/tips/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS styles
	Styles []string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Content  string // content attribute
	Property string // property attribute (for OpenGraph)
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if err := r.RenderToWriter(w, Document(page)); err != nil {
		return err
	}
	if r.config.Pretty {
		return nil
	}
	return write(w, "\n")
}

// Document builds the page as a tree: a doctype followed by the html
// element holding head and body.
func Document(page PageData) *vdom.VNode {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	return vdom.Fragment(
		vdom.Raw("<!DOCTYPE html>\n"),
		vdom.Html(vdom.Lang(lang),
			head(page),
			vdom.Body(page.Body),
		),
	)
}

func head(page PageData) *vdom.VNode {
	return vdom.Head(
		vdom.Meta(vdom.Attr_("charset", "utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
		vdom.If(page.Title != "", vdom.Title(page.Title)),
		vdom.Range(page.Meta, func(m MetaTag, _ int) *vdom.VNode {
			return vdom.Meta(vdom.Name(m.Name), vdom.Attr_("property", m.Property), vdom.Content(m.Content))
		}),
		vdom.Range(page.StyleSheets, func(href string, _ int) *vdom.VNode {
			return vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href))
		}),
		vdom.Range(page.Styles, func(css string, _ int) *vdom.VNode {
			return vdom.Style(vdom.Raw(css))
		}),
	)
}
