package checklist

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Captures indent, checkbox state, and text
	// Example: "  - [x] Task name" → groups: ["  ", "x", "Task name"]
	CheckboxPattern = `(?m)^(\s*)- \[([ xX])\] (.+)$`
)

var (
	fencedCodeBlockPattern = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern      = regexp.MustCompile("`[^`]+`")
)

type Service interface {
	// Catalog returns the checklist definition the service derives against.
	Catalog() *Catalog

	// GetStats calculates overall progress. Orphan ids are ignored.
	GetStats(progress ProgressMap) Stats

	// GetCategoryStats calculates progress per category, in display order.
	GetCategoryStats(progress ProgressMap) []CategoryStats

	// IsFullyCompleted checks if every catalog item is completed
	IsFullyCompleted(progress ProgressMap) bool

	// ParseCheckboxes extracts all checkboxes from markdown content
	ParseCheckboxes(content string) []Checkbox

	// RenderMarkdown renders the catalog as a markdown checklist
	RenderMarkdown(progress ProgressMap) string

	// RenderHTML renders the same checklist as an HTML fragment
	RenderHTML(progress ProgressMap) (string, error)

	// ImportMarkdown maps checkboxes back to item ids by title
	ImportMarkdown(content string) ImportResult
}

type service struct {
	catalog *Catalog
	pattern *regexp.Regexp
}

func New(catalog *Catalog) Service {
	if catalog == nil {
		catalog = Default
	}
	return &service{
		catalog: catalog,
		pattern: regexp.MustCompile(CheckboxPattern),
	}
}

func (s *service) Catalog() *Catalog {
	return s.catalog
}

// newStats builds Stats; percentage is 0 for an empty catalog
func newStats(completed, total int) Stats {
	if total == 0 {
		return Stats{}
	}
	return Stats{
		Total:      total,
		Completed:  completed,
		Pending:    total - completed,
		Percentage: int(math.Round(float64(completed) / float64(total) * 100)),
	}
}

// GetStats calculates checklist statistics
func (s *service) GetStats(progress ProgressMap) Stats {
	completed := 0
	for _, cat := range s.catalog.categories {
		for _, item := range cat.Items {
			if progress[item.ID] {
				completed++
			}
		}
	}
	return newStats(completed, s.catalog.total)
}

func (s *service) GetCategoryStats(progress ProgressMap) []CategoryStats {
	out := make([]CategoryStats, 0, len(s.catalog.categories))
	for _, cat := range s.catalog.categories {
		completed := 0
		for _, item := range cat.Items {
			if progress[item.ID] {
				completed++
			}
		}
		out = append(out, CategoryStats{
			CategoryID: cat.ID,
			Title:      cat.Title,
			Stats:      newStats(completed, len(cat.Items)),
		})
	}
	return out
}

func (s *service) IsFullyCompleted(progress ProgressMap) bool {
	if s.catalog.total == 0 {
		return false // No items = nothing to complete
	}
	return s.GetStats(progress).Completed == s.catalog.total
}

// sanitizeContent removes code blocks before checkbox parsing
// Prevents matching fake checkboxes in code examples
func sanitizeContent(content string) string {
	sanitized := fencedCodeBlockPattern.ReplaceAllString(content, "")
	return inlineCodePattern.ReplaceAllString(sanitized, "")
}

// ParseCheckboxes extracts all checkboxes from markdown
func (s *service) ParseCheckboxes(content string) []Checkbox {
	sanitized := sanitizeContent(content)

	matches := s.pattern.FindAllStringSubmatch(sanitized, -1)
	checkboxes := make([]Checkbox, 0, len(matches))

	for i, match := range matches {
		if len(match) != 4 {
			continue
		}
		checkboxes = append(checkboxes, Checkbox{
			Line:    i,
			Indent:  match[1],
			Checked: strings.ToLower(match[2]) == "x",
			Text:    strings.TrimSpace(match[3]),
			RawLine: match[0],
		})
	}

	return checkboxes
}

func (s *service) RenderMarkdown(progress ProgressMap) string {
	var b strings.Builder
	stats := s.GetStats(progress)

	b.WriteString("# Onboarding Checklist\n\n")
	b.WriteString(progressLine(stats))
	b.WriteString("\n")

	for _, cat := range s.catalog.categories {
		b.WriteString("\n## ")
		b.WriteString(cat.Title)
		b.WriteString("\n\n")
		for _, item := range cat.Items {
			if progress[item.ID] {
				b.WriteString(CheckboxChecked)
			} else {
				b.WriteString(CheckboxUnchecked)
			}
			b.WriteString(" ")
			b.WriteString(item.Title)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// ImportMarkdown matches checkbox text against item titles. An exact
// (case-insensitive) title wins; otherwise a partial match is accepted only
// when it identifies exactly one item.
func (s *service) ImportMarkdown(content string) ImportResult {
	result := ImportResult{Progress: ProgressMap{}}

	for _, cb := range s.ParseCheckboxes(content) {
		id, ok := s.matchItem(cb.Text)
		if !ok {
			result.Unmatched = append(result.Unmatched, cb.Text)
			continue
		}
		result.Progress[id] = cb.Checked
		result.Matched++
	}

	return result
}

func (s *service) matchItem(text string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return "", false
	}

	var partial []string
	for _, cat := range s.catalog.categories {
		for _, item := range cat.Items {
			title := strings.ToLower(item.Title)
			if title == needle {
				return item.ID, true
			}
			if strings.Contains(title, needle) {
				partial = append(partial, item.ID)
			}
		}
	}

	if len(partial) == 1 {
		return partial[0], true
	}
	return "", false
}

func progressLine(stats Stats) string {
	if stats.Total == 0 {
		return "No checklist items.\n"
	}
	line := fmt.Sprintf("Progress: %d/%d completed (%d%%)", stats.Completed, stats.Total, stats.Percentage)
	if stats.Completed == stats.Total {
		line += " - all done!"
	}
	return line + "\n"
}
