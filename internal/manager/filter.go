package manager

import "strings"

// AllCategories is the sentinel filter value meaning no restriction.
const AllCategories = "All"

// Categories derives the filter options for a list: the sentinel first,
// then each distinct category in first-seen order. Spellings that differ
// only in case collapse into the first-seen spelling, so "Focus" and
// "focus" never appear as two options that select the same rows.
func Categories[E Entity](list []E) []string {
	categories := []string{AllCategories}
	seen := make(map[string]struct{}, len(list))
	for _, e := range list {
		key := strings.ToLower(e.EntityCategory())
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		categories = append(categories, e.EntityCategory())
	}
	return categories
}

// Visible maps the full list and a selected category to the filtered view.
// The sentinel returns the list as-is; otherwise entities whose category
// matches case-insensitively are kept in their original order. No matches
// yields an empty view, not an error.
func Visible[E Entity](list []E, selected string) []E {
	if selected == AllCategories || selected == "" {
		return list
	}
	visible := make([]E, 0, len(list))
	for _, e := range list {
		if strings.EqualFold(e.EntityCategory(), selected) {
			visible = append(visible, e)
		}
	}
	return visible
}
