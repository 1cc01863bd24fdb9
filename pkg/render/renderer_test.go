package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/tips/pkg/vdom"
)

var errTestWrite = errors.New("test write error")

type countingWriter struct {
	Writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.Writes++
	return len(p), nil
}

type failingWriter struct {
	FailAt int
	Writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.Writes++
	if w.Writes == w.FailAt {
		return 0, errTestWrite
	}
	return len(p), nil
}

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("container"),
		vdom.Ul(vdom.Class("list"), vdom.Li(vdom.Text("one"))),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<div class="container"><ul class="list"><li>one</li></ul></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "sorted keys",
			node: vdom.Div(vdom.Attr_("role", "note"), vdom.Attr_("id", "x"), vdom.Class("c")),
			want: `<div class="c" id="x" role="note"></div>`,
		},
		{
			name: "no class attribute when empty",
			node: vdom.Ul(vdom.Class("")),
			want: `<ul></ul>`,
		},
		{
			name: "boolean true",
			node: vdom.Div(vdom.Attr_("hidden", true)),
			want: `<div hidden></div>`,
		},
		{
			name: "boolean false",
			node: vdom.Div(vdom.Attr_("hidden", false)),
			want: `<div></div>`,
		},
		{
			name: "className alias",
			node: vdom.Li(vdom.Attr_("className", "x")),
			want: `<li class="x"></li>`,
		},
		{
			name: "internal props skipped",
			node: vdom.Li(vdom.Attr_("_internal", "y")),
			want: `<li></li>`,
		},
		{
			name: "attribute escaping",
			node: vdom.Div(vdom.Attr_("data-q", `a"b<c`)),
			want: `<div data-q="a&quot;b&lt;c"></div>`,
		},
		{
			name: "numeric value",
			node: vdom.Div(vdom.Attr_("tabindex", 0), vdom.Attr_("data-ratio", 1.5)),
			want: `<div data-ratio="1.5" tabindex="0"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{"link", vdom.Link(vdom.Rel("stylesheet"), vdom.Href("/a.css")), `<link href="/a.css" rel="stylesheet">`},
		{"meta", vdom.Meta(vdom.Name("x"), vdom.Content("y")), `<meta content="y" name="x">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderFragmentAndComponent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	comp := vdom.Func(func() *vdom.VNode { return vdom.Li("c") })
	node := vdom.Ul(vdom.Fragment(vdom.Li("a"), "b"), comp)

	got, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `<ul><li>a</li>b<li>c</li></ul>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	got, err := renderer.RenderToString(vdom.Div(vdom.Raw("<b>trusted</b>")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<div><b>trusted</b></div>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderNil(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	got, err := renderer.RenderToString(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	_, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.VKind(42)})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestRenderElementWithoutTag(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	_, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.KindElement})
	if err == nil {
		t.Fatal("expected error for element without tag")
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Div(vdom.Class("box"),
		vdom.Ul(vdom.Li(vdom.Text("one"))),
	)
	got, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<div class=\"box\">\n" +
		"  <ul>\n" +
		"    <li>one</li>\n" +
		"  </ul>\n" +
		"</div>\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderCustomIndent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true, Indent: "\t"})

	got, err := renderer.RenderToString(vdom.Ul(vdom.Li("x")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "<ul>\n\t<li>x</li>\n</ul>\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	build := func() *vdom.VNode {
		return vdom.Div(vdom.Attr_("id", "a"), vdom.Class("b"), vdom.Attr_("role", "c"), vdom.Attr_("data-d", "e"),
			vdom.Ul(vdom.Li("x")))
	}

	first, err := renderer.RenderToString(build())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		got, err := renderer.RenderToString(build())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != first {
			t.Fatalf("render %d differs:\n%s\n%s", i, got, first)
		}
	}
}

func TestRenderToWriterErrorPaths(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})
	node := vdom.Div(vdom.Class("c"), vdom.Ul(vdom.Li("x")), vdom.Link(vdom.Href("/a.css")))

	cw := &countingWriter{}
	if err := renderer.RenderToWriter(cw, node); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i <= cw.Writes; i++ {
		fw := &failingWriter{FailAt: i}
		if err := renderer.RenderToWriter(fw, node); !errors.Is(err, errTestWrite) {
			t.Fatalf("failAt=%d: err=%v, want %v", i, err, errTestWrite)
		}
	}
}

func TestRenderToWriterMatchesString(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	node := vdom.Ul(vdom.Li("a"), vdom.Li("b"))

	var buf bytes.Buffer
	if err := renderer.RenderToWriter(&buf, node); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := renderer.RenderToString(node)
	if buf.String() != s {
		t.Errorf("writer %q != string %q", buf.String(), s)
	}
}
