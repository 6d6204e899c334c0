package http

import (
	"time"

	"relationship-os/internal/interaction"
)

// --- Request DTOs ---

type createReq struct {
	PersonID        string     `json:"person_id"  binding:"required"`
	Type            string     `json:"type"       binding:"required,oneof=meeting call text email note"`
	Title           string     `json:"title"      binding:"max=255"`
	Content         string     `json:"content"    binding:"max=50000"`
	Summary         string     `json:"summary"    binding:"max=5000"`
	Transcript      string     `json:"transcript" binding:"max=500000"`
	OccurredAt      *time.Time `json:"occurred_at"`
	DurationMinutes int        `json:"duration_minutes" binding:"min=0"`
	FordFamily      string     `json:"ford_family"      binding:"max=5000"`
	FordOccupation  string     `json:"ford_occupation"  binding:"max=5000"`
	FordRecreation  string     `json:"ford_recreation"  binding:"max=5000"`
	FordDreams      string     `json:"ford_dreams"      binding:"max=5000"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() interaction.CreateInteractionInput {
	return interaction.CreateInteractionInput{
		PersonID:        r.PersonID,
		Type:            interaction.Type(r.Type),
		Title:           r.Title,
		Content:         r.Content,
		Summary:         r.Summary,
		Transcript:      r.Transcript,
		OccurredAt:      r.OccurredAt,
		DurationMinutes: r.DurationMinutes,
		FordFamily:      r.FordFamily,
		FordOccupation:  r.FordOccupation,
		FordRecreation:  r.FordRecreation,
		FordDreams:      r.FordDreams,
	}
}

// ---

type listReq struct {
	PersonID string `form:"person_id"`
	Type     string `form:"type" binding:"omitempty,oneof=meeting call text email note"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() interaction.ListInteractionsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return interaction.ListInteractionsInput{
		PersonID: r.PersonID,
		Type:     interaction.Type(r.Type),
		Limit:    limit,
		Offset:   offset,
	}
}

// ---

type updateReq struct {
	ID             string `json:"-"` // populated from URI param
	Summary        string `json:"summary"         binding:"max=5000"`
	FordFamily     string `json:"ford_family"     binding:"max=5000"`
	FordOccupation string `json:"ford_occupation" binding:"max=5000"`
	FordRecreation string `json:"ford_recreation" binding:"max=5000"`
	FordDreams     string `json:"ford_dreams"     binding:"max=5000"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() interaction.UpdateFordInput {
	return interaction.UpdateFordInput{
		ID:             r.ID,
		Summary:        r.Summary,
		FordFamily:     r.FordFamily,
		FordOccupation: r.FordOccupation,
		FordRecreation: r.FordRecreation,
		FordDreams:     r.FordDreams,
	}
}

// --- Response DTOs ---

type interactionResp struct {
	ID              string     `json:"id"`
	PersonID        string     `json:"person_id"`
	Type            string     `json:"type"`
	Source          string     `json:"source"`
	Title           string     `json:"title,omitempty"`
	Content         string     `json:"content,omitempty"`
	Summary         string     `json:"summary,omitempty"`
	Transcript      string     `json:"transcript,omitempty"`
	OccurredAt      *time.Time `json:"occurred_at,omitempty"`
	DateConfidence  string     `json:"date_confidence,omitempty"`
	DateReasoning   string     `json:"date_reasoning,omitempty"`
	DurationMinutes int        `json:"duration_minutes,omitempty"`
	FordFamily      string     `json:"ford_family,omitempty"`
	FordOccupation  string     `json:"ford_occupation,omitempty"`
	FordRecreation  string     `json:"ford_recreation,omitempty"`
	FordDreams      string     `json:"ford_dreams,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newInteractionResp(it interaction.Interaction) interactionResp {
	return interactionResp{
		ID:              it.ID,
		PersonID:        it.PersonID,
		Type:            string(it.Type),
		Source:          it.Source,
		Title:           it.Title,
		Content:         it.Content,
		Summary:         it.Summary,
		Transcript:      it.Transcript,
		OccurredAt:      it.OccurredAt,
		DateConfidence:  it.DateConfidence,
		DateReasoning:   it.DateReasoning,
		DurationMinutes: it.DurationMinutes,
		FordFamily:      it.FordFamily,
		FordOccupation:  it.FordOccupation,
		FordRecreation:  it.FordRecreation,
		FordDreams:      it.FordDreams,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}

type createResp struct {
	Interaction interactionResp `json:"interaction"`
}

func (h *handler) newCreateResp(out interaction.CreateInteractionOutput) createResp {
	return createResp{Interaction: newInteractionResp(out.Interaction)}
}

type listResp struct {
	Interactions []interactionResp `json:"interactions"`
	Total        int               `json:"total"`
	Limit        int               `json:"limit"`
	Offset       int               `json:"offset"`
}

func (h *handler) newListResp(out interaction.ListInteractionsOutput) listResp {
	interactions := make([]interactionResp, len(out.Interactions))
	for i, it := range out.Interactions {
		interactions[i] = newInteractionResp(it)
	}
	return listResp{
		Interactions: interactions,
		Total:        out.Total,
		Limit:        out.Limit,
		Offset:       out.Offset,
	}
}

type detailResp struct {
	Interaction interactionResp `json:"interaction"`
}

func (h *handler) newDetailResp(out interaction.DetailInteractionOutput) detailResp {
	return detailResp{Interaction: newInteractionResp(out.Interaction)}
}

type updateResp struct {
	Interaction interactionResp `json:"interaction"`
}

func (h *handler) newUpdateResp(out interaction.UpdateFordOutput) updateResp {
	return updateResp{Interaction: newInteractionResp(out.Interaction)}
}

type followUpResp struct {
	Suggestion        string     `json:"suggestion"`
	Timing            string     `json:"timing,omitempty"`
	Topics            []string   `json:"topics,omitempty"`
	RemindAt          *time.Time `json:"remind_at,omitempty"`
	CalendarEventLink string     `json:"calendar_event_link,omitempty"`
}

func (h *handler) newFollowUpResp(out interaction.SuggestFollowUpOutput) followUpResp {
	return followUpResp{
		Suggestion:        out.FollowUp.Suggestion,
		Timing:            out.FollowUp.Timing,
		Topics:            out.FollowUp.Topics,
		RemindAt:          out.FollowUp.RemindAt,
		CalendarEventLink: out.FollowUp.CalendarEventLink,
	}
}
