package translatablecache

import "testing"

func TestToSnake(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ArticleTranslation", "article_translation"},
		{"Translation", "translation"},
		{"HTTPEntry", "http_entry"},
		{"cachedRow", "cached_row"},
		{"*main.ArticleTranslation", "mainarticle_translation"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := toSnake(tt.input); got != tt.want {
			t.Errorf("toSnake(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNamespaceFor(t *testing.T) {
	if got := namespaceFor[*cachedRow](); got != "cached_row" {
		t.Errorf("namespaceFor[*cachedRow]() = %q, want cached_row", got)
	}
	if got := namespaceFor[cachedRow](); got != "cached_row" {
		t.Errorf("namespaceFor[cachedRow]() = %q, want cached_row", got)
	}
}
