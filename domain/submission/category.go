package submission

import (
	"fmt"
	"strings"
)

// Categories is the fixed set of submission categories, in form display order
var Categories = []string{
	"Urban daily life",
	"Rural daily life",
	"Marketplaces",
	"Food",
	"Clothing & textiles",
	"Landscapes & nature",
	"Transportation",
	"Public spaces & infrastructure",
	"Agriculture & livestock",
	"Local objects & cultural items",
}

// ParseCategory validates a category against the fixed set (case-insensitive)
// and returns its canonical form
func ParseCategory(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(c, trimmed) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category %q: expected one of %s", s, strings.Join(Categories, ", "))
}
