package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCategories_missingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	m, err := LoadCategories(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadCategories: %v", err)
	}
	if tok, ok := m.Token("Electronics"); !ok || tok == "" {
		t.Errorf("defaults missing Electronics: %q %v", tok, ok)
	}
	if !m.IsWildcard("All") || !m.IsWildcard("Blended") {
		t.Errorf("default wildcards wrong: %v", m.Wildcard)
	}
	if m.IsWildcard("Electronics") {
		t.Errorf("Electronics must not be wildcard")
	}
}

func TestLoadCategories_fromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "categories.yaml")
	data := `
indices:
  "Toys & Games": ToysAndGames
  Everything: Everything
wildcard:
  - Everything
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := LoadCategories(path)
	if err != nil {
		t.Fatalf("LoadCategories: %v", err)
	}
	if tok, ok := m.Token("Toys & Games"); !ok || tok != "ToysAndGames" {
		t.Errorf("Token = %q %v", tok, ok)
	}
	if !m.IsWildcard("Everything") {
		t.Errorf("wildcard list not loaded: %v", m.Wildcard)
	}
	if m.IsWildcard("ToysAndGames") {
		t.Errorf("ToysAndGames must not be wildcard")
	}
}

func TestLoadCategories_wildcardDefaultWhenOmitted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "categories.yaml")
	if err := os.WriteFile(path, []byte("indices:\n  Baby: Baby\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := LoadCategories(path)
	if err != nil {
		t.Fatalf("LoadCategories: %v", err)
	}
	if !m.IsWildcard("All") {
		t.Errorf("omitted wildcard list should fall back to defaults: %v", m.Wildcard)
	}
}

func TestLoadCategories_malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "categories.yaml")
	if err := os.WriteFile(path, []byte("indices: [not, a, map"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCategories(path); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Toys & Games":          "ToysAndGames",
		"Movies & TV":           "MoviesAndTV",
		"Patio, Lawn & Garden":  "PatioLawnAndGarden",
		"All":                   "All",
		"Arts, Crafts & Sewing": "ArtsCraftsAndSewing",
	}
	for in, want := range cases {
		if got := tokenize(in); got != want {
			t.Errorf("tokenize(%q) = %q, want %q", in, got, want)
		}
	}
}
