package progress

import "smartude/internal/checklist"

// StorageKey is the single key the progress map is persisted under.
const StorageKey = "smartude-checklist"

// ImportInput carries a markdown checklist to read back.
type ImportInput struct {
	Content string
	// Merge keeps existing entries that the document does not mention.
	Merge bool
}

type ImportOutput struct {
	Progress  checklist.ProgressMap
	Matched   int
	Unmatched []string
}
