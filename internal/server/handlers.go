package server

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/tips/internal/site"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.writeBody(w, r, site.PageName, "text/html; charset=utf-8", s.site.Page())
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	s.writeBody(w, r, site.FragmentName, "text/html; charset=utf-8", s.site.Fragment())
}

func (s *Server) handleClassMap(w http.ResponseWriter, r *http.Request) {
	s.writeBody(w, r, site.ClassMapName, "application/json", s.site.ClassMap())
}

// handleStylesheet serves only the current fingerprinted name, so stale
// hashes 404 instead of serving mismatched class names.
func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "file")
	if name != s.site.StylesheetName() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("ETag", `"`+s.site.Styles().Hash()+`"`)
	s.writeBody(w, r, name, "text/css; charset=utf-8", s.site.CSS())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", site.CacheNone)
	w.Write([]byte("ok"))
}

func (s *Server) writeBody(w http.ResponseWriter, r *http.Request, name, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", site.CacheControl(name, s.opts.Dev))
	http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(body))
}
