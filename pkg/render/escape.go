package render

import "strings"

// textReplacer escapes text for safe inclusion in HTML content.
var textReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// attrReplacer additionally escapes whitespace that could break
// attribute parsing.
var attrReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

func escapeHTML(s string) string {
	return textReplacer.Replace(s)
}

func escapeAttr(s string) string {
	return attrReplacer.Replace(s)
}
