package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"plain text", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"less than", "a < b", "a &lt; b"},
		{"greater than", "a > b", "a &gt; b"},
		{"double quote", `say "hello"`, "say &quot;hello&quot;"},
		{"single quote", "it's fine", "it&#39;s fine"},
		{"script tag", "<script>alert('xss')</script>", "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;"},
		{"period and colon untouched", "eg: CSE for computer science", "eg: CSE for computer science"},
		{"unicode preserved", "Hello 世界 🌍", "Hello 世界 🌍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := escapeHTML(tt.input); result != tt.expected {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"class names", "_tipsText_k2f0a", "_tipsText_k2f0a"},
		{"quotes", `"x"`, "&quot;x&quot;"},
		{"newline", "a\nb", "a&#10;b"},
		{"carriage return", "a\rb", "a&#13;b"},
		{"tab", "a\tb", "a&#9;b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := escapeAttr(tt.input); result != tt.expected {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
