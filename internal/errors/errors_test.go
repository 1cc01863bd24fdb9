package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"config not found", "E100", "Configuration file not found", CategoryConfig},
		{"style compile", "E110", "Stylesheet could not be compiled", CategoryStyle},
		{"export key", "E121", "Invalid export key", CategoryExport},
		{"render", "E131", "Render failed", CategoryServer},
		{"unknown error code", "E999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := New("E101").WithDetail("tips.json").Wrap(fs.ErrPermission)
	want := "E101: Configuration file could not be read: tips.json: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestUnwrapAndIs(t *testing.T) {
	err := New("E101").Wrap(fs.ErrNotExist)

	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see the wrapped error")
	}
	if !stderrors.Is(err, New("E101")) {
		t.Error("errors.Is should match by code")
	}
	if stderrors.Is(err, New("E102")) {
		t.Error("errors.Is should not match a different code")
	}

	outer := fmt.Errorf("loading: %w", err)
	if Code(outer) != "E101" {
		t.Errorf("Code() = %q, want E101", Code(outer))
	}
	if Code(fs.ErrClosed) != "" {
		t.Errorf("Code() of plain error = %q, want empty", Code(fs.ErrClosed))
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E120") != nil {
		t.Error("FromError(nil) should be nil")
	}

	plain := stderrors.New("disk full")
	got := FromError(plain, "E120")
	if got.Code != "E120" || got.Wrapped != plain {
		t.Errorf("FromError(plain) = %+v", got)
	}

	coded := New("E121")
	wrapped := fmt.Errorf("put: %w", coded)
	if FromError(wrapped, "E120") != coded {
		t.Error("FromError should return the existing TipsError")
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		loc  *Location
		want string
	}{
		{nil, ""},
		{&Location{File: "a.css", Line: 3}, "a.css:3"},
		{&Location{File: "a.css", Line: 3, Column: 7}, "a.css:3:7"},
	}
	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E110").
		WithLocation("tips.module.css", 2, 3).
		WithContext([]string{".a {", "  /* open", "}"}).
		WithDetail("unterminated comment").
		WithSuggestion("Close the comment with */")

	out := err.Format()
	wants := []string{
		"ERROR E110: Stylesheet could not be compiled",
		"tips.module.css:2:3",
		"→    2 │   /* open",
		"│   ^",
		"unterminated comment",
		"Hint: Close the comment with */",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() should not contain ANSI codes when colors are disabled")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E110").WithLocation("x.css", 1, 2)
	if got := err.FormatCompact(); got != "x.css:1:2: E110: Stylesheet could not be compiled" {
		t.Errorf("FormatCompact() = %q", got)
	}

	wrapped := FromError(stderrors.New(`unknown flag: --bogus`), "E140")
	if got := wrapped.FormatCompact(); got != "E140: Invalid command usage: unknown flag: --bogus" {
		t.Errorf("FormatCompact() = %q", got)
	}
	if strings.Contains(wrapped.FormatCompact(), "\n") {
		t.Error("FormatCompact should be a single line")
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText() = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText of empty text should be nil")
	}
}

func TestGetAllCodesSorted(t *testing.T) {
	codes := GetAllCodes()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
	for _, code := range codes {
		if _, ok := GetTemplate(code); !ok {
			t.Errorf("GetTemplate(%q) missing", code)
		}
	}
}
