package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Class sets the class attribute, joining non-empty classes with spaces.
// It returns an empty Attr when no class remains, so the element is
// rendered without a class attribute at all.
func Class(classes ...string) Attr {
	kept := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return Attr{}
	}
	return attr("class", strings.Join(kept, " "))
}

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// Attr_ creates an arbitrary attribute.
func Attr_(key string, value any) Attr { return attr(key, value) }
