package http

import (
	"time"

	"relationship-os/internal/beta"
)

// --- Request DTOs ---

type addReq struct {
	Email string `json:"email" binding:"required,email"`
	Note  string `json:"note"  binding:"max=500"`
}

func (r addReq) toInput() beta.AddEntryInput {
	return beta.AddEntryInput{
		Email: r.Email,
		Note:  r.Note,
	}
}

// --- Response DTOs ---

type entryResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Note      string    `json:"note,omitempty"`
	AddedBy   string    `json:"added_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newEntryResp(e beta.Entry) entryResp {
	return entryResp{
		ID:        e.ID,
		Email:     e.Email,
		Note:      e.Note,
		AddedBy:   e.AddedBy,
		CreatedAt: e.CreatedAt,
	}
}

type addResp struct {
	Entry entryResp `json:"entry"`
}

func (h *handler) newAddResp(out beta.AddEntryOutput) addResp {
	return addResp{Entry: newEntryResp(out.Entry)}
}

type listResp struct {
	Entries []entryResp `json:"entries"`
	Total   int         `json:"total"`
}

func (h *handler) newListResp(out beta.ListEntriesOutput) listResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = newEntryResp(e)
	}
	return listResp{Entries: entries, Total: out.Total}
}
