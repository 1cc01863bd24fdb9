package styles

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/vango-dev/tips/internal/errors"
	"github.com/vango-dev/tips/pkg/vdom"
)

func TestModuleClass(t *testing.T) {
	m := MustCompile("tips.module.css", []byte(".tipsContainer{} .tipsText{}"))
	container, _ := m.Resolve("tipsContainer")
	text, _ := m.Resolve("tipsText")

	tests := []struct {
		name  string
		names []string
		want  vdom.Attr
	}{
		{"single", []string{"tipsContainer"}, vdom.Attr{Key: "class", Value: container}},
		{"multiple", []string{"tipsContainer", "tipsText"}, vdom.Attr{Key: "class", Value: container + " " + text}},
		{"missing dropped", []string{"nope", "tipsText"}, vdom.Attr{Key: "class", Value: text}},
		{"all missing", []string{"nope"}, vdom.Attr{}},
		{"none", nil, vdom.Attr{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Class(tt.names...); got != tt.want {
				t.Errorf("Class(%q) = %+v, want %+v", tt.names, got, tt.want)
			}
		})
	}
}

func TestModuleMissingNameRendersWithoutClass(t *testing.T) {
	m := New("empty.module.css")
	node := vdom.Div(m.Class("tipsContainer"))
	if _, ok := node.Props["class"]; ok {
		t.Errorf("class should be absent, Props = %v", node.Props)
	}
}

func TestModuleResolveHas(t *testing.T) {
	m := New("x.css")
	m.Set("a", "_a_00001")

	if got, ok := m.Resolve("a"); !ok || got != "_a_00001" {
		t.Errorf("Resolve(a) = %q, %v", got, ok)
	}
	if _, ok := m.Resolve("b"); ok {
		t.Error("Resolve(b) should report missing")
	}
	if !m.Has("a") || m.Has("b") {
		t.Error("Has() mismatch")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestModuleAllIsCopy(t *testing.T) {
	m := New("x.css")
	m.Set("a", "_a_1")

	all := m.All()
	all["b"] = "_b_2"
	if m.Has("b") {
		t.Error("All() should return a copy, but modification affected original")
	}
}

var fingerprint = regexp.MustCompile(`^[0-9a-f]{8}$`)

func TestModuleHashAndFileName(t *testing.T) {
	a := MustCompile("tips.module.css", []byte(".a{color:red}"))
	b := MustCompile("tips.module.css", []byte(".a{color:red}"))
	c := MustCompile("tips.module.css", []byte(".a{color:blue}"))

	if !fingerprint.MatchString(a.Hash()) {
		t.Errorf("Hash() = %q, want 8 hex digits", a.Hash())
	}
	if a.Hash() != b.Hash() {
		t.Error("Hash() should be stable for the same source")
	}
	if a.Hash() == c.Hash() {
		t.Error("Hash() should change with the stylesheet")
	}

	tests := []struct {
		file string
		stem string
	}{
		{"tips.module.css", "tips"},
		{"web/theme.css", "theme"},
		{"raw", "raw"},
		{".module.css", "styles"},
	}
	for _, tt := range tests {
		m := MustCompile(tt.file, []byte(".a{color:red}"))
		want := tt.stem + "." + m.Hash() + ".css"
		if got := m.FileName(); got != want {
			t.Errorf("FileName(%q) = %q, want %q", tt.file, got, want)
		}
	}
}

func TestModuleDiff(t *testing.T) {
	a := New("x")
	a.Set("same", "_same_1")
	a.Set("changed", "_changed_1")
	a.Set("onlyA", "_onlyA_1")

	b := New("x")
	b.Set("same", "_same_1")
	b.Set("changed", "_changed_2")
	b.Set("onlyB", "_onlyB_1")

	got := strings.Join(a.Diff(b), ",")
	if got != "changed,onlyA,onlyB" {
		t.Errorf("Diff() = %q, want changed,onlyA,onlyB", got)
	}
	if d := a.Diff(a); len(d) != 0 {
		t.Errorf("Diff(self) = %v, want empty", d)
	}
}

func TestModuleMarshalJSON(t *testing.T) {
	m := New("x")
	m.Set("tipsText", "_tipsText_abcde")

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"tipsText":"_tipsText_abcde"}` {
		t.Errorf("Marshal = %s", data)
	}
}

func TestSaveAndLoadMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.json")

	m := MustCompile("tips.module.css", []byte(".tipsContainer{} .tipsText{}"))
	if err := m.SaveMap(path); err != nil {
		t.Fatalf("SaveMap error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.HasSuffix(string(data), "}\n") {
		t.Errorf("class map should end with a newline: %q", data)
	}

	loaded, err := LoadMap(path)
	if err != nil {
		t.Fatalf("LoadMap error: %v", err)
	}
	if d := m.Diff(loaded); len(d) != 0 {
		t.Errorf("loaded map differs: %v", d)
	}
	if loaded.CSS() != "" {
		t.Errorf("loaded module should have no stylesheet, got %q", loaded.CSS())
	}
}

func TestLoadMapErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadMap(filepath.Join(dir, "missing.json"))
	if errors.Code(err) != "E111" {
		t.Errorf("missing file: code = %q, want E111 (err %v)", errors.Code(err), err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadMap(bad)
	if errors.Code(err) != "E111" {
		t.Errorf("bad json: code = %q, want E111 (err %v)", errors.Code(err), err)
	}
}

func TestSaveMapError(t *testing.T) {
	m := New("x")
	err := m.SaveMap(filepath.Join(t.TempDir(), "no", "such", "dir", "styles.json"))
	if errors.Code(err) != "E112" {
		t.Errorf("code = %q, want E112 (err %v)", errors.Code(err), err)
	}
}

func TestModuleConcurrentAccess(t *testing.T) {
	m := MustCompile("tips.module.css", []byte(".a{} .b{}"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Class("a", "b")
				m.Names()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Set("extra", ScopedName("x", "extra"))
			}
		}()
	}
	wg.Wait()

	if !m.Has("extra") {
		t.Error("Set from goroutines should be visible")
	}
}
