// Package site assembles the artifacts served and exported for the tips
// fragment: the standalone page, the bare fragment, the fingerprinted
// stylesheet and the class map.
package site

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/vango-dev/tips/internal/errors"
	"github.com/vango-dev/tips/pkg/render"
	"github.com/vango-dev/tips/pkg/styles"
	"github.com/vango-dev/tips/pkg/vdom"
)

// Well-known artifact names.
const (
	PageName     = "index.html"
	FragmentName = "fragment.html"
	ClassMapName = "styles.json"
)

// Options configures how the artifacts are rendered.
type Options struct {
	Title  string
	Lang   string
	Pretty bool

	// StaticPrefix is the URL prefix the stylesheet is served under.
	StaticPrefix string
}

// Site holds the rendered artifacts. It is immutable after Build.
type Site struct {
	opts     Options
	styles   *styles.Module
	fragment []byte
	page     []byte
	classMap []byte
}

// Build renders root once against mod and keeps the results.
func Build(mod *styles.Module, root func() *vdom.VNode, opts Options) (*Site, error) {
	if opts.StaticPrefix == "" {
		opts.StaticPrefix = "/"
	}
	if !strings.HasSuffix(opts.StaticPrefix, "/") {
		opts.StaticPrefix += "/"
	}

	s := &Site{opts: opts, styles: mod}
	r := render.NewRenderer(render.RendererConfig{Pretty: opts.Pretty})

	fragment, err := r.RenderToString(root())
	if err != nil {
		return nil, errors.New("E131").WithDetail("fragment").Wrap(err)
	}
	s.fragment = []byte(fragment)

	var page bytes.Buffer
	err = r.RenderPage(&page, render.PageData{
		Title:       opts.Title,
		Lang:        opts.Lang,
		StyleSheets: []string{s.StylesheetPath()},
		Meta: []render.MetaTag{
			{Name: "description", Content: "Tips for getting the most out of the course assistant"},
		},
		Body: vdom.Main(vdom.Func(root)),
	})
	if err != nil {
		return nil, errors.New("E131").WithDetail("page").Wrap(err)
	}
	s.page = page.Bytes()

	classMap, err := json.MarshalIndent(mod, "", "  ")
	if err != nil {
		return nil, errors.New("E131").WithDetail("class map").Wrap(err)
	}
	s.classMap = append(classMap, '\n')

	return s, nil
}

// Fragment returns the bare fragment HTML.
func (s *Site) Fragment() []byte { return s.fragment }

// Page returns the standalone HTML document.
func (s *Site) Page() []byte { return s.page }

// ClassMap returns the logical to generated class map as indented JSON.
func (s *Site) ClassMap() []byte { return s.classMap }

// CSS returns the compiled stylesheet.
func (s *Site) CSS() []byte { return []byte(s.styles.CSS()) }

// Styles returns the style module the site was built with.
func (s *Site) Styles() *styles.Module { return s.styles }

// StylesheetName returns the fingerprinted stylesheet file name.
func (s *Site) StylesheetName() string { return s.styles.FileName() }

// StylesheetURL returns the URL path the stylesheet is served under.
func (s *Site) StylesheetURL() string { return s.opts.StaticPrefix + s.StylesheetName() }

// StylesheetPath returns the stylesheet location relative to the page. The
// page links it this way so a copy published under any key prefix still
// resolves it.
func (s *Site) StylesheetPath() string { return strings.TrimPrefix(s.StylesheetURL(), "/") }

// StaticPrefix returns the normalized static URL prefix.
func (s *Site) StaticPrefix() string { return s.opts.StaticPrefix }

// Artifact is one exported file.
type Artifact struct {
	Name        string
	ContentType string
	Body        []byte
}

// Artifacts returns every artifact in a stable order. The stylesheet is
// named by StylesheetPath, next to the page.
func (s *Site) Artifacts() []Artifact {
	return []Artifact{
		{Name: PageName, ContentType: "text/html; charset=utf-8", Body: s.page},
		{Name: FragmentName, ContentType: "text/html; charset=utf-8", Body: s.fragment},
		{Name: s.StylesheetPath(), ContentType: "text/css; charset=utf-8", Body: s.CSS()},
		{Name: ClassMapName, ContentType: "application/json", Body: s.classMap},
	}
}
