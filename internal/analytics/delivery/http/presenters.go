package http

import (
	"time"

	"relationship-os/internal/analytics"
)

// --- Request DTOs ---

type trackReq struct {
	Name       string         `json:"name" binding:"required,min=1,max=128"`
	Properties map[string]any `json:"properties"`
}

func (r trackReq) toInput() analytics.TrackEventInput {
	return analytics.TrackEventInput{
		Name:       r.Name,
		Properties: r.Properties,
	}
}

// --- Response DTOs ---

type trackResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *handler) newTrackResp(out analytics.TrackEventOutput) trackResp {
	return trackResp{
		ID:        out.Event.ID,
		Name:      out.Event.Name,
		CreatedAt: out.Event.CreatedAt,
	}
}

type summaryRowResp struct {
	Name  string    `json:"name"`
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

type summaryResp struct {
	Days  int              `json:"days"`
	Total int              `json:"total"`
	Rows  []summaryRowResp `json:"rows"`
}

func (h *handler) newSummaryResp(out analytics.SummaryOutput) summaryResp {
	rows := make([]summaryRowResp, len(out.Rows))
	for i, row := range out.Rows {
		rows[i] = summaryRowResp{Name: row.Name, Day: row.Day, Count: row.Count}
	}
	return summaryResp{Days: out.Days, Total: out.Total, Rows: rows}
}
