package usecase

import (
	"context"
	"strings"

	"smartude/internal/progress"
)

// ExportMarkdown renders the checklist with the current progress.
func (uc *implUseCase) ExportMarkdown(ctx context.Context) string {
	return uc.checklist.RenderMarkdown(uc.Load(ctx))
}

// ExportHTML renders the export as a printable HTML fragment.
func (uc *implUseCase) ExportHTML(ctx context.Context) (string, error) {
	return uc.checklist.RenderHTML(uc.Load(ctx))
}

// ImportMarkdown reads checkbox states back from a markdown checklist.
func (uc *implUseCase) ImportMarkdown(ctx context.Context, input progress.ImportInput) (progress.ImportOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return progress.ImportOutput{}, progress.ErrEmptyImport
	}

	result := uc.checklist.ImportMarkdown(input.Content)
	if result.Matched == 0 {
		return progress.ImportOutput{Unmatched: result.Unmatched}, progress.ErrNothingMatched
	}

	next := result.Progress
	if input.Merge {
		current, err := uc.Snapshot(ctx)
		if err != nil {
			return progress.ImportOutput{}, err
		}
		next = current
		for id, done := range result.Progress {
			next[id] = done
		}
	}

	saved := uc.Replace(ctx, next)
	uc.l.Infof(ctx, "progress.ImportMarkdown: matched=%d unmatched=%d merge=%v", result.Matched, len(result.Unmatched), input.Merge)

	return progress.ImportOutput{
		Progress:  saved,
		Matched:   result.Matched,
		Unmatched: result.Unmatched,
	}, nil
}
