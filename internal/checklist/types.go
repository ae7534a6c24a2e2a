package checklist

// Priority ranks how urgent an onboarding item is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Item is a single onboarding task with a stable identifier.
type Item struct {
	ID            string
	Title         string
	Description   string
	Priority      Priority
	EstimatedTime string
	Deadline      string // optional, free text such as "14 days after arrival"
}

// Category is an ordered grouping of items for display.
type Category struct {
	ID           string
	Title        string
	Description  string
	DisplayColor string
	Items        []Item
}

// ProgressMap maps item id to completion. Absent keys mean not completed.
type ProgressMap map[string]bool

// Clone returns an independent copy. A nil map clones to an empty one.
func (p ProgressMap) Clone() ProgressMap {
	out := make(ProgressMap, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Equal reports whether both maps hold exactly the same keys and values.
func (p ProgressMap) Equal(other ProgressMap) bool {
	if len(p) != len(other) {
		return false
	}
	for k, v := range p {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Stats represents checklist progress derived from a ProgressMap.
type Stats struct {
	Total      int // Items in the catalog
	Completed  int // Catalog items marked true
	Pending    int // Total - Completed
	Percentage int // round(100 * Completed / Total), 0 for an empty catalog
}

// CategoryStats is Stats restricted to one category.
type CategoryStats struct {
	CategoryID string
	Title      string
	Stats
}

// Checkbox represents a single checkbox line in markdown
type Checkbox struct {
	Line    int    // Index among matched checkboxes
	Indent  string // Leading whitespace
	Checked bool   // true if [x], false if [ ]
	Text    string // Checkbox text content
	RawLine string // Original line
}

// ImportResult is the outcome of reading a markdown checklist back.
type ImportResult struct {
	Progress  ProgressMap // Matched items with their checked state
	Matched   int
	Unmatched []string // Checkbox texts that did not match any item title
}
