package compute

import (
	"strings"

	"github.com/budget-foyer/backend/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UsedCategories returns the distinct category names appearing on items
// and recurring templates. Names are trimmed, deduplicated
// case-insensitively (first spelling wins) and sorted with French
// collation, which orders accented categories the way the UI language
// expects.
func UsedCategories(s models.State) []string {
	seen := map[string]bool{}
	categories := []string{}

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		categories = append(categories, name)
	}

	for _, item := range s.Items {
		add(item.Category)
	}
	for _, recurring := range s.RecurringItems {
		add(recurring.Category)
	}

	collate.New(language.French).SortStrings(categories)
	return categories
}
