package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// CategoryMap maps display category names to the API's search-index tokens
// and records which indices are wildcards. Wildcard indices search the
// whole catalog; the API does not accept price filters for them and they
// get a lower page cap. The mapping is an external-API detail, so it lives
// in a config file rather than a compiled-in table.
type CategoryMap struct {
	Indices  map[string]string `yaml:"indices"`
	Wildcard []string          `yaml:"wildcard"`
}

// LoadCategories reads a category map from path. A missing file falls back
// to the built-in defaults; a malformed one is an error.
func LoadCategories(path string) (*CategoryMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCategories(), nil
		}
		return nil, fmt.Errorf("read category map: %w", err)
	}

	var m CategoryMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse category map %s: %w", path, err)
	}
	if len(m.Indices) == 0 {
		return nil, fmt.Errorf("category map %s: no indices defined", path)
	}
	if len(m.Wildcard) == 0 {
		m.Wildcard = DefaultCategories().Wildcard
	}
	return &m, nil
}

// DefaultCategories returns the built-in category map.
func DefaultCategories() *CategoryMap {
	names := []string{
		"All", "Appliances", "Arts, Crafts & Sewing", "Automotive", "Baby",
		"Beauty", "Blended", "Cell Phones & Accessories", "Clothing",
		"Computers & Accessories", "Electronics", "Grocery & Gourmet Food",
		"Health & Personal Care", "Home & Garden", "Home & Kitchen",
		"Home Improvement", "Industrial & Scientific", "Jewelry",
		"Kitchen & Dining", "Movies & TV", "Music", "Musical Instruments",
		"Office Products", "Patio, Lawn & Garden", "Pet Supplies",
		"Software", "Sports & Outdoors", "Toys & Games", "Video Games",
		"Watches",
	}
	indices := make(map[string]string, len(names))
	for _, n := range names {
		indices[n] = tokenize(n)
	}
	return &CategoryMap{
		Indices:  indices,
		Wildcard: []string{"All", "Blended"},
	}
}

// Token resolves a display name to its search-index token.
func (m *CategoryMap) Token(name string) (string, bool) {
	tok, ok := m.Indices[name]
	return tok, ok
}

// IsWildcard reports whether token is a wildcard search index.
func (m *CategoryMap) IsWildcard(token string) bool {
	for _, w := range m.Wildcard {
		if w == token {
			return true
		}
	}
	return false
}

// Names returns the display names in sorted order.
func (m *CategoryMap) Names() []string {
	names := make([]string, 0, len(m.Indices))
	for n := range m.Indices {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// tokenize strips the punctuation the API's index tokens leave out, e.g.
// "Toys & Games" -> "ToysAndGames", "Movies & TV" -> "MoviesAndTV".
func tokenize(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch r {
		case '&':
			out = append(out, 'A', 'n', 'd')
		case ' ', ',', '-':
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
