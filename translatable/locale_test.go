package translatable

import (
	"reflect"
	"testing"
)

// localeRow is a minimal Localized implementation for collection helper tests.
type localeRow struct {
	locale string
	title  string
}

func (r localeRow) GetLocale() string { return r.locale }

func TestNormalizeLocale(t *testing.T) {
	got, err := NormalizeLocale("EN_us")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "en-US" {
		t.Errorf("NormalizeLocale(EN_us) = %q, want en-US", got)
	}

	if _, err := NormalizeLocale("not a locale"); err == nil {
		t.Error("expected error for malformed tag")
	}
}

func TestSortTranslations(t *testing.T) {
	rows := []localeRow{
		{locale: "fr", title: "Bonjour"},
		{locale: "de-DE", title: "Hallo"},
		{locale: "en", title: "Hello"},
	}

	SortTranslations(rows)

	want := []string{"de-DE", "en", "fr"}
	if got := Locales(rows); !reflect.DeepEqual(got, want) {
		t.Errorf("sorted locales = %v, want %v", got, want)
	}
}

func TestSortTranslations_StableForEqualLocales(t *testing.T) {
	// Duplicate locales are an application bug, but sorting must not reorder
	// them unpredictably.
	rows := []localeRow{
		{locale: "en", title: "first"},
		{locale: "de", title: "german"},
		{locale: "EN", title: "second"},
	}

	SortTranslations(rows)

	if rows[0].locale != "de" {
		t.Fatalf("expected de first, got %q", rows[0].locale)
	}
	if rows[1].title != "first" || rows[2].title != "second" {
		t.Errorf("equal locales were reordered: %+v", rows)
	}
}

func TestFindByLocale(t *testing.T) {
	rows := []localeRow{
		{locale: "en-US", title: "Hello"},
		{locale: "de-DE", title: "Hallo"},
	}

	got, ok := FindByLocale(rows, "en_us")
	if !ok {
		t.Fatal("expected to find en_us after canonicalization")
	}
	if got.title != "Hello" {
		t.Errorf("found wrong row: %+v", got)
	}

	if _, ok := FindByLocale(rows, "fr"); ok {
		t.Error("did not expect to find fr")
	}
}
