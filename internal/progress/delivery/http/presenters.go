package http

import (
	"smartude/internal/checklist"
	"smartude/internal/progress"
)

// --- Request DTOs ---

type importReq struct {
	Content string `json:"content" binding:"required"`
	Merge   bool   `json:"merge"`
}

func (r importReq) validate() error { return nil }

func (r importReq) toInput() progress.ImportInput {
	return progress.ImportInput{
		Content: r.Content,
		Merge:   r.Merge,
	}
}

// --- Response DTOs ---

type statsResp struct {
	Total      int  `json:"total"`
	Completed  int  `json:"completed"`
	Pending    int  `json:"pending"`
	Percentage int  `json:"percentage"`
	AllDone    bool `json:"all_done"`
}

func newStatsResp(s checklist.Stats) statsResp {
	return statsResp{
		Total:      s.Total,
		Completed:  s.Completed,
		Pending:    s.Pending,
		Percentage: s.Percentage,
		AllDone:    s.Total > 0 && s.Completed == s.Total,
	}
}

// overallStats covers the whole catalog; AllDone drives the completion banner.
func (h *handler) overallStats(p checklist.ProgressMap) statsResp {
	out := newStatsResp(h.checklist.GetStats(p))
	out.AllDone = h.checklist.IsFullyCompleted(p)
	return out
}

type itemResp struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	EstimatedTime string `json:"estimated_time"`
	Deadline      string `json:"deadline,omitempty"`
	Completed     bool   `json:"completed"`
}

type categoryResp struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DisplayColor string     `json:"display_color"`
	Items        []itemResp `json:"items"`
	Progress     statsResp  `json:"progress"`
}

type checklistResp struct {
	Categories []categoryResp `json:"categories"`
	Progress   statsResp      `json:"progress"`
}

func (h *handler) newChecklistResp(p checklist.ProgressMap) checklistResp {
	categories := h.checklist.Catalog().Categories()
	perCategory := h.checklist.GetCategoryStats(p)

	out := checklistResp{
		Categories: make([]categoryResp, len(categories)),
		Progress:   h.overallStats(p),
	}
	for i, cat := range categories {
		items := make([]itemResp, len(cat.Items))
		for j, it := range cat.Items {
			items[j] = itemResp{
				ID:            it.ID,
				Title:         it.Title,
				Description:   it.Description,
				Priority:      string(it.Priority),
				EstimatedTime: it.EstimatedTime,
				Deadline:      it.Deadline,
				Completed:     p[it.ID],
			}
		}
		out.Categories[i] = categoryResp{
			ID:           cat.ID,
			Title:        cat.Title,
			Description:  cat.Description,
			DisplayColor: cat.DisplayColor,
			Items:        items,
			Progress:     newStatsResp(perCategory[i].Stats),
		}
	}
	return out
}

type progressResp struct {
	Progress checklist.ProgressMap `json:"progress"`
	Stats    statsResp             `json:"stats"`
}

func (h *handler) newProgressResp(p checklist.ProgressMap) progressResp {
	return progressResp{
		Progress: p,
		Stats:    h.overallStats(p),
	}
}

type toggleResp struct {
	ItemID    string    `json:"item_id"`
	Title     string    `json:"title,omitempty"`
	Completed bool      `json:"completed"`
	Known     bool      `json:"known"`
	Stats     statsResp `json:"stats"`
}

func (h *handler) newToggleResp(id string, p checklist.ProgressMap) toggleResp {
	item, known := h.checklist.Catalog().Item(id)
	return toggleResp{
		ItemID:    id,
		Title:     item.Title,
		Completed: p[id],
		Known:     known,
		Stats:     h.overallStats(p),
	}
}

type importResp struct {
	Matched   int       `json:"matched"`
	Unmatched []string  `json:"unmatched"`
	Stats     statsResp `json:"stats"`
}

func (h *handler) newImportResp(out progress.ImportOutput) importResp {
	unmatched := out.Unmatched
	if unmatched == nil {
		unmatched = []string{}
	}
	return importResp{
		Matched:   out.Matched,
		Unmatched: unmatched,
		Stats:     h.overallStats(out.Progress),
	}
}
