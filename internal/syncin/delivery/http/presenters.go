package http

import (
	"time"

	"relationship-os/internal/syncin"
)

// --- Request DTOs ---

type personHintReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type pushItemReq struct {
	ExternalID      string         `json:"external_id"`
	Type            string         `json:"type"`
	Title           string         `json:"title"`
	Content         string         `json:"content"`
	Summary         string         `json:"summary"`
	Transcript      string         `json:"transcript"`
	Timestamp       *time.Time     `json:"timestamp"`
	DurationMinutes int            `json:"duration_minutes"`
	Participants    []string       `json:"participants"`
	PersonHint      *personHintReq `json:"person_hint"`
}

type pushReq struct {
	Source   string         `json:"source"    binding:"required"`
	SyncType string         `json:"sync_type"`
	Items    []pushItemReq  `json:"items"     binding:"required"`
	Metadata map[string]any `json:"metadata"`
}

func (r pushReq) validate() error { return nil }

func (r pushReq) toInput() syncin.PushInput {
	items := make([]syncin.PushItem, 0, len(r.Items))
	for _, it := range r.Items {
		item := syncin.PushItem{
			ExternalID:      it.ExternalID,
			Type:            it.Type,
			Title:           it.Title,
			Content:         it.Content,
			Summary:         it.Summary,
			Transcript:      it.Transcript,
			Timestamp:       it.Timestamp,
			DurationMinutes: it.DurationMinutes,
			Participants:    it.Participants,
		}
		if it.PersonHint != nil {
			item.PersonHint = syncin.PersonHint{
				Name:  it.PersonHint.Name,
				Phone: it.PersonHint.Phone,
				Email: it.PersonHint.Email,
			}
		}
		items = append(items, item)
	}
	return syncin.PushInput{
		Source:   r.Source,
		SyncType: r.SyncType,
		Items:    items,
		Metadata: r.Metadata,
	}
}

type transcribeReq struct {
	Source      string         `json:"source"      binding:"required"`
	ExternalID  string         `json:"external_id" binding:"required"`
	AudioBase64 string         `json:"audio_base64"`
	AudioURL    string         `json:"audio_url"`
	MIMEType    string         `json:"mime_type"`
	Timestamp   *time.Time     `json:"timestamp"`
	PersonHint  *personHintReq `json:"person_hint"`
}

func (r transcribeReq) toInput() syncin.TranscribeInput {
	input := syncin.TranscribeInput{
		Source:      r.Source,
		ExternalID:  r.ExternalID,
		AudioBase64: r.AudioBase64,
		AudioURL:    r.AudioURL,
		MIMEType:    r.MIMEType,
		Timestamp:   r.Timestamp,
	}
	if r.PersonHint != nil {
		input.PersonHint = syncin.PersonHint{
			Name:  r.PersonHint.Name,
			Phone: r.PersonHint.Phone,
			Email: r.PersonHint.Email,
		}
	}
	return input
}

type listBatchesReq struct {
	Source string `form:"source"`
	UserID string `form:"user_id"`
	Limit  int    `form:"limit"`
}

func (r listBatchesReq) toInput() syncin.ListBatchesInput {
	return syncin.ListBatchesInput{
		UserID: r.UserID,
		Source: r.Source,
		Limit:  r.Limit,
	}
}

// --- Response DTOs ---

type itemResultResp struct {
	ExternalID    string `json:"external_id"`
	Status        string `json:"status"`
	InteractionID string `json:"interaction_id,omitempty"`
	PersonID      string `json:"person_id,omitempty"`
	Error         string `json:"error,omitempty"`
}

type pushResp struct {
	BatchID    string           `json:"batch_id"`
	Received   int              `json:"received"`
	Created    int              `json:"created"`
	Duplicates int              `json:"duplicates"`
	Errors     int              `json:"errors"`
	Results    []itemResultResp `json:"results"`
}

func (h *handler) newPushResp(o syncin.PushOutput) pushResp {
	results := make([]itemResultResp, 0, len(o.Results))
	for _, r := range o.Results {
		results = append(results, itemResultResp{
			ExternalID:    r.ExternalID,
			Status:        r.Status,
			InteractionID: r.InteractionID,
			PersonID:      r.PersonID,
			Error:         r.Error,
		})
	}
	return pushResp{
		BatchID:    o.BatchID,
		Received:   o.Received,
		Created:    o.Created,
		Duplicates: o.Duplicates,
		Errors:     o.Errors,
		Results:    results,
	}
}

type transcribeResp struct {
	Status           string `json:"status"`
	InteractionID    string `json:"interaction_id,omitempty"`
	PersonID         string `json:"person_id,omitempty"`
	TranscriptLength int    `json:"transcript_length"`
}

func (h *handler) newTranscribeResp(o syncin.TranscribeOutput) transcribeResp {
	return transcribeResp{
		Status:           o.Status,
		InteractionID:    o.InteractionID,
		PersonID:         o.PersonID,
		TranscriptLength: o.TranscriptLength,
	}
}

type batchResp struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Source     string `json:"source"`
	SyncType   string `json:"sync_type"`
	Received   int    `json:"received"`
	Created    int    `json:"created"`
	Duplicates int    `json:"duplicates"`
	Errors     int    `json:"errors"`
	CreatedAt  string `json:"created_at"`
}

type listBatchesResp struct {
	Batches []batchResp `json:"batches"`
}

func (h *handler) newListBatchesResp(batches []syncin.Batch) listBatchesResp {
	resp := listBatchesResp{Batches: make([]batchResp, 0, len(batches))}
	for _, b := range batches {
		resp.Batches = append(resp.Batches, batchResp{
			ID:         b.ID,
			UserID:     b.UserID,
			Source:     b.Source,
			SyncType:   b.SyncType,
			Received:   b.Received,
			Created:    b.Created,
			Duplicates: b.Duplicates,
			Errors:     b.Errors,
			CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
