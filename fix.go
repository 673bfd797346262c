package revodoc

import "strings"

// Category classifies a troubleshooting fix by the platform or product line
// it applies to.
type Category string

// Fix categories. CategoryAll is a filter-only pseudo-category that matches
// every fix; it is never assigned to a record.
const (
	CategoryWindows Category = "windows"
	CategoryMacOS   Category = "macos"
	CategoryMacro   Category = "macro"
	CategoryPro     Category = "pro"
	CategoryAll     Category = "all"
)

// Valid reports whether c is a known filter category.
func (c Category) Valid() bool {
	switch c {
	case CategoryWindows, CategoryMacOS, CategoryMacro, CategoryPro, CategoryAll:
		return true
	}
	return false
}

// Fix represents a normalized troubleshooting entry derived from an issue.
// Fixes are ephemeral: they are recomputed from the issue list on every fetch
// and never persisted.
type Fix struct {
	ID       int64    `json:"id"`
	Number   int      `json:"number"`
	Title    string   `json:"title"`
	Body     string   `json:"body"` // Markdown
	HTMLURL  string   `json:"htmlUrl"`
	Labels   []string `json:"labels"` // lowercased, original order
	Category Category `json:"category"`
}

// CategoryFromLabels derives a fix category from lowercased labels.
// First match wins, evaluated in fixed priority order:
// windows > macos > pro > macro. Unlabeled fixes default to macro.
//
// The priority order is deliberate: an issue carrying both "windows" and
// "pro" labels is classified as windows.
func CategoryFromLabels(labels []string) Category {
	for _, priority := range []struct {
		label    string
		category Category
	}{
		{"windows", CategoryWindows},
		{"macos", CategoryMacOS},
		{"mac", CategoryMacOS},
		{"pro", CategoryPro},
		{"macro", CategoryMacro},
	} {
		for _, label := range labels {
			if label == priority.label {
				return priority.category
			}
		}
	}
	return CategoryMacro
}

// NormalizeIssues converts issues into fixes. Pull requests are excluded
// before categorization; labels are lowercased preserving order. The result
// preserves the input order.
func NormalizeIssues(issues []*Issue) []*Fix {
	fixes := make([]*Fix, 0, len(issues))
	for _, issue := range issues {
		if issue.IsPullRequest() {
			continue
		}

		labels := make([]string, 0, len(issue.Labels))
		for _, label := range issue.Labels {
			labels = append(labels, strings.ToLower(label.Name))
		}

		fixes = append(fixes, &Fix{
			ID:       issue.ID,
			Number:   issue.Number,
			Title:    issue.Title,
			Body:     issue.Body,
			HTMLURL:  issue.HTMLURL,
			Labels:   labels,
			Category: CategoryFromLabels(labels),
		})
	}
	return fixes
}

// FixFilter specifies a category and free-text query for narrowing fixes.
type FixFilter struct {
	// Category to match exactly. CategoryAll (or empty) matches every fix.
	Category Category

	// Query is matched case-insensitively as a substring of the title,
	// body, and each label. Empty query matches every fix.
	Query string
}

// Match returns true if the fix passes the filter.
func (f FixFilter) Match(fix *Fix) bool {
	if f.Category != "" && f.Category != CategoryAll && fix.Category != f.Category {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(fix.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(fix.Body), query) {
		return true
	}
	for _, label := range fix.Labels {
		if strings.Contains(label, query) {
			return true
		}
	}
	return false
}

// FilterFixes returns the fixes matching the filter, preserving input order.
// The filter is stable: no re-sorting is performed.
func FilterFixes(fixes []*Fix, filter FixFilter) []*Fix {
	matched := make([]*Fix, 0, len(fixes))
	for _, fix := range fixes {
		if filter.Match(fix) {
			matched = append(matched, fix)
		}
	}
	return matched
}
