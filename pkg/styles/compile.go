package styles

import (
	"bytes"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/vango-dev/tips/internal/errors"
)

type blockKind uint8

const (
	blockRules blockKind = iota // contains selectors
	blockDecls                  // contains declarations
)

// nestingAtRules hold rule blocks rather than declarations.
var nestingAtRules = map[string]bool{
	"media":     true,
	"supports":  true,
	"layer":     true,
	"container": true,
	"document":  true,
	"scope":     true,
	"keyframes": true,
}

const globalPrefix = ":global("

type scanner struct {
	file    string
	src     []byte
	pos     int
	out     strings.Builder
	classes map[string]string
	stack   []int // byte offsets of open braces
	kinds   []blockKind

	// prelude state of the current rule in a rules context
	started bool
	atRule  string
	inAt    bool
}

// compile rewrites class selectors in src and records them in classes.
func compile(file string, src []byte, classes map[string]string) (string, error) {
	s := &scanner{file: file, src: src, classes: classes}
	s.out.Grow(len(src) + len(src)/4)
	if err := s.run(); err != nil {
		return "", err
	}
	return s.out.String(), nil
}

func (s *scanner) run() error {
	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case c == '/' && s.peek(1) == '*':
			if err := s.comment(); err != nil {
				return err
			}
			continue
		case c == '"' || c == '\'':
			if err := s.quoted(c); err != nil {
				return err
			}
			s.started = true
			continue
		case c == '\\':
			s.copy(2)
			s.started = true
			continue
		}

		if s.inDecls() {
			switch c {
			case '{':
				s.open(blockDecls)
			case '}':
				if err := s.close(); err != nil {
					return err
				}
			default:
				s.copy(1)
			}
			continue
		}

		switch {
		case c == '{':
			kind := blockDecls
			if s.inAt && nestingAtRules[s.atRule] {
				kind = blockRules
			}
			s.open(kind)
		case c == '}':
			if err := s.close(); err != nil {
				return err
			}
		case c == ';':
			s.copy(1)
			s.resetPrelude()
		case c == '@' && !s.started:
			s.copy(1)
			name := s.ident()
			s.out.WriteString(name)
			s.atRule = strings.ToLower(strings.TrimPrefix(name, "-webkit-"))
			s.inAt = true
			s.started = true
		case c == '.' && !s.inAt && isIdentStart(s.peek(1), s.peek(2)):
			s.pos++
			name := s.ident()
			s.out.WriteByte('.')
			s.out.WriteString(s.scope(name))
			s.started = true
		case c == ':' && !s.inAt && bytes.HasPrefix(s.src[s.pos:], []byte(globalPrefix)):
			if err := s.global(); err != nil {
				return err
			}
			s.started = true
		default:
			if !isSpace(c) {
				s.started = true
			}
			s.copy(1)
		}
	}

	if n := len(s.stack); n > 0 {
		return s.errAt(s.stack[n-1], "unclosed block", "Add the missing '}'")
	}
	return nil
}

func (s *scanner) inDecls() bool {
	n := len(s.kinds)
	return n > 0 && s.kinds[n-1] == blockDecls
}

func (s *scanner) open(kind blockKind) {
	s.stack = append(s.stack, s.pos)
	s.kinds = append(s.kinds, kind)
	s.copy(1)
	s.resetPrelude()
}

func (s *scanner) close() error {
	n := len(s.stack)
	if n == 0 {
		return s.errAt(s.pos, "unexpected '}'", "Remove the extra '}'")
	}
	s.stack = s.stack[:n-1]
	s.kinds = s.kinds[:n-1]
	s.copy(1)
	s.resetPrelude()
	return nil
}

func (s *scanner) resetPrelude() {
	s.started = false
	s.inAt = false
	s.atRule = ""
}

func (s *scanner) comment() error {
	start := s.pos
	end := bytes.Index(s.src[s.pos+2:], []byte("*/"))
	if end < 0 {
		return s.errAt(start, "unterminated comment", "Close the comment with */")
	}
	s.copy(end + 4)
	return nil
}

func (s *scanner) quoted(quote byte) error {
	start := s.pos
	i := s.pos + 1
	for i < len(s.src) {
		switch s.src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			s.copy(i + 1 - s.pos)
			return nil
		case '\n':
			return s.errAt(start, "unterminated string", "Close the string on the same line")
		}
		i++
	}
	return s.errAt(start, "unterminated string", "Close the string on the same line")
}

// global copies the selector inside :global(...) without scoping it.
func (s *scanner) global() error {
	start := s.pos
	i := s.pos + len(globalPrefix)
	depth := 1
	for ; i < len(s.src); i++ {
		switch s.src[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			break
		}
	}
	if depth != 0 {
		return s.errAt(start, "unterminated :global(", "Close :global( with ')'")
	}
	s.out.Write(s.src[start+len(globalPrefix) : i])
	s.pos = i + 1
	return nil
}

// ident consumes an identifier at pos and returns it.
func (s *scanner) ident() string {
	start := s.pos
	for s.pos < len(s.src) && isIdentChar(s.src[s.pos]) {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

func (s *scanner) scope(name string) string {
	if scoped, ok := s.classes[name]; ok {
		return scoped
	}
	scoped := ScopedName(s.file, name)
	s.classes[name] = scoped
	return scoped
}

func (s *scanner) copy(n int) {
	end := s.pos + n
	if end > len(s.src) {
		end = len(s.src)
	}
	s.out.Write(s.src[s.pos:end])
	s.pos = end
}

func (s *scanner) peek(offset int) byte {
	if i := s.pos + offset; i < len(s.src) {
		return s.src[i]
	}
	return 0
}

func (s *scanner) errAt(offset int, detail, suggestion string) error {
	line, col := 1, 1
	for _, b := range s.src[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}

	lines := strings.Split(string(s.src), "\n")
	first := line - 3
	if first < 0 {
		first = 0
	}
	last := line + 2
	if last > len(lines) {
		last = len(lines)
	}
	// keep the error line centred for Format
	if before, after := line-1-first, last-line; before > after {
		first += before - after
	} else {
		last -= after - before
	}

	return errors.New("E110").
		WithLocation(s.file, line, col).
		WithContext(lines[first:last]).
		WithDetail(detail).
		WithSuggestion(suggestion)
}

// ScopedName returns the generated class for a logical name in file.
// The suffix is five base-36 digits of an FNV-1a hash of file and name.
func ScopedName(file, name string) string {
	h := fnv.New32a()
	h.Write([]byte(file))
	h.Write([]byte{':'})
	h.Write([]byte(name))
	digits := strconv.FormatUint(uint64(h.Sum32()), 36)
	for len(digits) < 5 {
		digits = "0" + digits
	}
	return "_" + name + "_" + digits[len(digits)-5:]
}

func isIdentStart(c, next byte) bool {
	switch {
	case c == '-':
		return next == '-' || next == '_' || isLetter(next) || next >= 0x80
	case c == '_', c >= 0x80:
		return true
	default:
		return isLetter(c)
	}
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_' || c >= 0x80
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
