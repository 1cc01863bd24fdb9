package styles

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vango-dev/tips/internal/errors"
	"github.com/vango-dev/tips/pkg/vdom"
)

// Module holds the compiled stylesheet of one CSS module and the mapping
// from logical class names to generated ones.
// It is safe for concurrent use.
type Module struct {
	file    string
	css     string
	hash    string
	classes map[string]string
	mu      sync.RWMutex
}

// New creates an empty module for the given file name.
func New(file string) *Module {
	return &Module{
		file:    filepath.Base(file),
		classes: make(map[string]string),
		hash:    contentHash(""),
	}
}

// Compile scopes every class selector in source and returns the module.
// file names the module; only its base name feeds the generated names.
func Compile(file string, source []byte) (*Module, error) {
	m := New(file)
	css, err := compile(m.file, source, m.classes)
	if err != nil {
		return nil, err
	}
	m.css = css
	m.hash = contentHash(css)
	return m, nil
}

// MustCompile is like Compile but panics on error. It is meant for
// stylesheets embedded in the binary.
func MustCompile(file string, source []byte) *Module {
	m, err := Compile(file, source)
	if err != nil {
		panic(err)
	}
	return m
}

// Resolve returns the generated class for a logical name.
func (m *Module) Resolve(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	scoped, ok := m.classes[name]
	return scoped, ok
}

// Class returns a class attribute holding the generated classes for the
// given logical names. Names the module does not define are dropped; when
// none resolve the attribute is empty and the element renders unstyled.
func (m *Module) Class(names ...string) vdom.Attr {
	resolved := make([]string, 0, len(names))
	for _, name := range names {
		if scoped, ok := m.Resolve(name); ok {
			resolved = append(resolved, scoped)
		}
	}
	return vdom.Class(resolved...)
}

// Has returns true if the module defines the logical name.
func (m *Module) Has(name string) bool {
	_, ok := m.Resolve(name)
	return ok
}

// Set adds or replaces a mapping.
// This is primarily useful for tests and hand-built class maps.
func (m *Module) Set(name, scoped string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.classes[name] = scoped
}

// Len returns the number of logical names.
func (m *Module) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.classes)
}

// Names returns the logical names in sorted order.
func (m *Module) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.classes))
	for name := range m.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of the class map.
func (m *Module) All() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]string, len(m.classes))
	for k, v := range m.classes {
		result[k] = v
	}
	return result
}

// File returns the module's base file name.
func (m *Module) File() string { return m.file }

// CSS returns the rewritten stylesheet.
func (m *Module) CSS() string { return m.css }

// Hash returns the 8 hex digit fingerprint of the rewritten stylesheet.
func (m *Module) Hash() string { return m.hash }

// FileName returns the fingerprinted stylesheet name, e.g.
// "tips.module.css" → "tips.1a2b3c4d.css".
func (m *Module) FileName() string {
	stem := m.file
	for _, suffix := range []string{".module.css", ".css"} {
		if strings.HasSuffix(stem, suffix) {
			stem = strings.TrimSuffix(stem, suffix)
			break
		}
	}
	if stem == "" {
		stem = "styles"
	}
	return stem + "." + m.hash + ".css"
}

// Diff returns the logical names whose mapping differs between m and
// other, including names present in only one of them, sorted.
func (m *Module) Diff(other *Module) []string {
	a, b := m.All(), other.All()
	var names []string
	for name, scoped := range a {
		if b[name] != scoped {
			names = append(names, name)
		}
	}
	for name := range b {
		if _, ok := a[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// MarshalJSON encodes the class map.
func (m *Module) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.All())
}

// LoadMap reads a class map written by SaveMap. The returned module has
// mappings but no stylesheet.
func LoadMap(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E111").WithDetail(path).Wrap(err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.New("E111").
			WithDetail(path).
			WithSuggestion("Regenerate it with 'tips styles --write " + path + "'").
			Wrap(err)
	}

	m := New(path)
	for name, scoped := range entries {
		m.classes[name] = scoped
	}
	return m, nil
}

// SaveMap writes the class map as indented JSON.
func (m *Module) SaveMap(path string) error {
	data, err := json.MarshalIndent(m.All(), "", "  ")
	if err != nil {
		return errors.New("E112").Wrap(err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E112").WithDetail(path).Wrap(err)
	}
	return nil
}

func contentHash(css string) string {
	sum := sha256.Sum256([]byte(css))
	return hex.EncodeToString(sum[:4])
}
