package usecase

import (
	"context"
	"errors"
	"testing"

	"relationship-os/internal/analytics"
	repo "relationship-os/internal/analytics/repository"
	"relationship-os/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	created       []repo.CreateEventOptions
	createErr     error
	summarized    []repo.SummarizeEventsOptions
	summaryRows   []analytics.SummaryRow
	summaryTotal  int
	summarizeErr  error
}

func (m *mockRepo) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (analytics.Event, error) {
	m.created = append(m.created, opt)
	if m.createErr != nil {
		return analytics.Event{}, m.createErr
	}
	return analytics.Event{ID: opt.ID, UserID: opt.UserID, Name: opt.Name, Properties: opt.Properties}, nil
}

func (m *mockRepo) SummarizeEvents(ctx context.Context, opt repo.SummarizeEventsOptions) ([]analytics.SummaryRow, int, error) {
	m.summarized = append(m.summarized, opt)
	return m.summaryRows, m.summaryTotal, m.summarizeErr
}

var sc = model.Scope{UserID: "u1", Email: "u1@example.com"}

func TestTrackEvent(t *testing.T) {
	t.Run("Name Required", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.TrackEvent(context.Background(), sc, analytics.TrackEventInput{Name: "  "})
		if !errors.Is(err, analytics.ErrNameRequired) {
			t.Errorf("expected ErrNameRequired, got %v", err)
		}
	})

	t.Run("Assigns UUID And Scope", func(t *testing.T) {
		m := &mockRepo{}
		uc := New(m, &mockLogger{})
		out, err := uc.TrackEvent(context.Background(), sc, analytics.TrackEventInput{
			Name:       "interaction_created",
			Properties: map[string]any{"type": "call"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Event.ID == "" {
			t.Error("expected generated event id")
		}
		if len(m.created) != 1 || m.created[0].UserID != "u1" {
			t.Errorf("unexpected create options: %+v", m.created)
		}
	})
}

func TestTrack_SwallowsErrors(t *testing.T) {
	m := &mockRepo{createErr: repo.ErrFailedToInsert}
	uc := New(m, &mockLogger{})
	// must not panic or propagate
	uc.Track(context.Background(), sc, "sync_push", nil)
	if len(m.created) != 1 {
		t.Errorf("expected one create attempt, got %d", len(m.created))
	}
}

func TestSummary_ClampsDays(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 7},
		{-5, 7},
		{30, 30},
		{365, 90},
	}
	for _, tt := range tests {
		m := &mockRepo{}
		uc := New(m, &mockLogger{})
		out, err := uc.Summary(context.Background(), sc, tt.in)
		if err != nil {
			t.Fatalf("Summary(%d): %v", tt.in, err)
		}
		if out.Days != tt.want || m.summarized[0].Days != tt.want {
			t.Errorf("Summary(%d): got %d days, want %d", tt.in, out.Days, tt.want)
		}
	}
}
