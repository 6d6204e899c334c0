package http

import (
	"time"

	"relationship-os/internal/feedback"
)

// --- Request DTOs ---

type submitReq struct {
	Rating   int    `json:"rating"   binding:"omitempty,min=1,max=5"`
	Category string `json:"category" binding:"max=32"`
	Message  string `json:"message"  binding:"required,min=1,max=5000"`
	Page     string `json:"page"     binding:"max=255"`
}

func (r submitReq) validate() error { return nil }

func (r submitReq) toInput() feedback.SubmitFeedbackInput {
	return feedback.SubmitFeedbackInput{
		Rating:   r.Rating,
		Category: r.Category,
		Message:  r.Message,
		Page:     r.Page,
	}
}

type listReq struct {
	Category string `form:"category"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() feedback.ListFeedbackInput {
	return feedback.ListFeedbackInput{
		Category: r.Category,
		Limit:    r.Limit,
		Offset:   r.Offset,
	}
}

// --- Response DTOs ---

type feedbackObj struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating,omitempty"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	Page      string `json:"page,omitempty"`
	CreatedAt string `json:"created_at"`
}

func newFeedbackObj(f feedback.Feedback) feedbackObj {
	return feedbackObj{
		ID:        f.ID,
		UserID:    f.UserID,
		Rating:    f.Rating,
		Category:  f.Category,
		Message:   f.Message,
		Page:      f.Page,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}

type submitResp struct {
	Feedback feedbackObj `json:"feedback"`
}

func (h *handler) newSubmitResp(o feedback.SubmitFeedbackOutput) submitResp {
	return submitResp{Feedback: newFeedbackObj(o.Feedback)}
}

type listResp struct {
	Items []feedbackObj `json:"items"`
	Total int           `json:"total"`
}

func (h *handler) newListResp(o feedback.ListFeedbackOutput) listResp {
	items := make([]feedbackObj, 0, len(o.Items))
	for _, f := range o.Items {
		items = append(items, newFeedbackObj(f))
	}
	return listResp{Items: items, Total: o.Total}
}
