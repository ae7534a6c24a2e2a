package http

import (
	"time"

	"smartude/internal/checklist"
	appSync "smartude/internal/sync"
)

type syncResp struct {
	Outcome  string                `json:"outcome"`
	Mode     string                `json:"mode"`
	Uploaded int                   `json:"uploaded"`
	Pulled   int                   `json:"pulled"`
	Progress checklist.ProgressMap `json:"progress"`
}

func (h *handler) newSyncResp(out appSync.SyncOutput) syncResp {
	return syncResp{
		Outcome:  string(out.Outcome),
		Mode:     string(out.Mode),
		Uploaded: out.Uploaded,
		Pulled:   out.Pulled,
		Progress: out.Progress,
	}
}

type eventResp struct {
	Outcome string    `json:"outcome"`
	UserID  string    `json:"user_id"`
	Items   int       `json:"items"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

func newEventResp(ev appSync.Event) eventResp {
	return eventResp{
		Outcome: string(ev.Outcome),
		UserID:  ev.UserID,
		Items:   ev.Items,
		Message: ev.Message,
		At:      ev.At,
	}
}
