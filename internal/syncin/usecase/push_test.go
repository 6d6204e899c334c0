package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"relationship-os/internal/dateinfer"
	"relationship-os/internal/interaction"
	interactionRepo "relationship-os/internal/interaction/repository"
	"relationship-os/internal/model"
	"relationship-os/internal/person"
	"relationship-os/internal/syncin"
	batchRepo "relationship-os/internal/syncin/repository"
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

type mockBatchRepo struct {
	batches []batchRepo.CreateBatchOptions
	err     error
}

func (m *mockBatchRepo) CreateBatch(ctx context.Context, opt batchRepo.CreateBatchOptions) (syncin.Batch, error) {
	m.batches = append(m.batches, opt)
	if m.err != nil {
		return syncin.Batch{}, m.err
	}
	return syncin.Batch{ID: opt.ID}, nil
}

func (m *mockBatchRepo) ListBatches(ctx context.Context, opt batchRepo.ListBatchesOptions) ([]syncin.Batch, error) {
	return nil, nil
}

type mockInteractionRepo struct {
	existing  map[string]interaction.Interaction // keyed by external id
	created   []interactionRepo.CreateInteractionOptions
	createErr error
	nextID    int
}

func (m *mockInteractionRepo) CreateInteraction(ctx context.Context, opt interactionRepo.CreateInteractionOptions) (interaction.Interaction, error) {
	if m.createErr != nil {
		return interaction.Interaction{}, m.createErr
	}
	m.created = append(m.created, opt)
	m.nextID++
	return interaction.Interaction{ID: "i" + string(rune('0'+m.nextID)), PersonID: opt.PersonID, OccurredAt: opt.OccurredAt}, nil
}

func (m *mockInteractionRepo) GetOneInteraction(ctx context.Context, opt interactionRepo.GetOneInteractionOptions) (interaction.Interaction, error) {
	if it, ok := m.existing[opt.ExternalID]; ok && opt.ExternalID != "" {
		return it, nil
	}
	return interaction.Interaction{}, nil
}

func (m *mockInteractionRepo) ListInteractions(ctx context.Context, opt interactionRepo.ListInteractionsOptions) ([]interaction.Interaction, int, error) {
	return nil, 0, nil
}

func (m *mockInteractionRepo) UpdateInteraction(ctx context.Context, opt interactionRepo.UpdateInteractionOptions) (interaction.Interaction, error) {
	return interaction.Interaction{}, nil
}

func (m *mockInteractionRepo) DeleteInteraction(ctx context.Context, userID, id string) error {
	return nil
}

// mockPersonUC matches by phone, creates otherwise.
type mockPersonUC struct {
	byPhone map[string]person.Person
	created []person.CreatePersonInput
}

func (m *mockPersonUC) Create(ctx context.Context, sc model.Scope, input person.CreatePersonInput) (person.CreatePersonOutput, error) {
	m.created = append(m.created, input)
	return person.CreatePersonOutput{Person: person.Person{ID: "new-person", Name: input.Name}}, nil
}
func (m *mockPersonUC) List(ctx context.Context, sc model.Scope, input person.ListPersonsInput) (person.ListPersonsOutput, error) {
	return person.ListPersonsOutput{}, nil
}
func (m *mockPersonUC) Detail(ctx context.Context, sc model.Scope, id string) (person.DetailPersonOutput, error) {
	return person.DetailPersonOutput{}, nil
}
func (m *mockPersonUC) Update(ctx context.Context, sc model.Scope, input person.UpdatePersonInput) (person.UpdatePersonOutput, error) {
	return person.UpdatePersonOutput{}, nil
}
func (m *mockPersonUC) Delete(ctx context.Context, sc model.Scope, id string) error { return nil }
func (m *mockPersonUC) Search(ctx context.Context, sc model.Scope, input person.SearchPersonInput) (person.SearchPersonOutput, error) {
	if p, ok := m.byPhone[input.Phone]; ok && input.Phone != "" {
		return person.SearchPersonOutput{Person: p, Matched: true}, nil
	}
	return person.SearchPersonOutput{}, nil
}

type mockInferrer struct {
	result dateinfer.Result
	calls  int
}

func (m *mockInferrer) InferAt(ctx context.Context, transcript string, anchor time.Time) dateinfer.Result {
	m.calls++
	return m.result
}

var sc = model.Scope{UserID: "u1", Email: "u1@example.com"}

func newPushUC(b *mockBatchRepo, i *mockInteractionRepo, p *mockPersonUC, inf *mockInferrer) *implUseCase {
	var inferrer DateInferrer
	if inf != nil {
		inferrer = inf
	}
	uc := New(b, i, p, inferrer, nil, nil, &mockLogger{})
	uc.now = func() time.Time { return time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestPush(t *testing.T) {
	t.Run("Source Required", func(t *testing.T) {
		uc := newPushUC(&mockBatchRepo{}, &mockInteractionRepo{}, &mockPersonUC{}, nil)
		_, err := uc.Push(context.Background(), sc, syncin.PushInput{Items: []syncin.PushItem{{ExternalID: "x"}}})
		if !errors.Is(err, syncin.ErrSourceRequired) {
			t.Errorf("expected ErrSourceRequired, got %v", err)
		}
	})

	t.Run("No Items", func(t *testing.T) {
		uc := newPushUC(&mockBatchRepo{}, &mockInteractionRepo{}, &mockPersonUC{}, nil)
		_, err := uc.Push(context.Background(), sc, syncin.PushInput{Source: "agent"})
		if !errors.Is(err, syncin.ErrNoItems) {
			t.Errorf("expected ErrNoItems, got %v", err)
		}
	})

	t.Run("Creates Dedupes And Errors Independently", func(t *testing.T) {
		b := &mockBatchRepo{}
		i := &mockInteractionRepo{existing: map[string]interaction.Interaction{
			"dup-1": {ID: "old", PersonID: "p9"},
		}}
		p := &mockPersonUC{}
		uc := newPushUC(b, i, p, nil)

		out, err := uc.Push(context.Background(), sc, syncin.PushInput{
			Source:   "macbook-agent",
			SyncType: "imessage",
			Items: []syncin.PushItem{
				{ExternalID: "new-1", Type: "text", PersonHint: syncin.PersonHint{Name: "Alice"}},
				{ExternalID: "dup-1", Type: "text"},
				{ExternalID: "", Type: "text"}, // invalid
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Received != 3 || out.Created != 1 || out.Duplicates != 1 || out.Errors != 1 {
			t.Errorf("unexpected counts: %+v", out)
		}
		if out.Results[1].Status != syncin.StatusDuplicate || out.Results[1].InteractionID != "old" {
			t.Errorf("duplicate must surface the existing interaction: %+v", out.Results[1])
		}
		if len(b.batches) != 1 || b.batches[0].Created != 1 {
			t.Errorf("batch record missing or wrong: %+v", b.batches)
		}
		if b.batches[0].ID != out.BatchID {
			t.Errorf("batch id mismatch")
		}
	})

	t.Run("Matches Person By Phone", func(t *testing.T) {
		i := &mockInteractionRepo{}
		p := &mockPersonUC{byPhone: map[string]person.Person{"555": {ID: "p-existing", Name: "Alice"}}}
		uc := newPushUC(&mockBatchRepo{}, i, p, nil)

		out, err := uc.Push(context.Background(), sc, syncin.PushInput{
			Source: "agent",
			Items:  []syncin.PushItem{{ExternalID: "x1", PersonHint: syncin.PersonHint{Phone: "555"}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Results[0].PersonID != "p-existing" {
			t.Errorf("expected matched person, got %+v", out.Results[0])
		}
		if len(p.created) != 0 {
			t.Errorf("no person should be created on a match")
		}
	})

	t.Run("Creates Person From Participants", func(t *testing.T) {
		p := &mockPersonUC{}
		uc := newPushUC(&mockBatchRepo{}, &mockInteractionRepo{}, p, nil)

		_, err := uc.Push(context.Background(), sc, syncin.PushInput{
			Source: "agent",
			Items:  []syncin.PushItem{{ExternalID: "x1", Participants: []string{"Bob", "me"}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.created) != 1 || p.created[0].Name != "Bob" {
			t.Errorf("expected person created from first participant, got %+v", p.created)
		}
	})

	t.Run("Infers Date For Missing Timestamp", func(t *testing.T) {
		inferred := time.Date(2024, 6, 8, 12, 0, 0, 0, time.UTC)
		inf := &mockInferrer{result: dateinfer.Result{
			InferredDate: &inferred,
			Confidence:   dateinfer.ConfidenceMedium,
			Reasoning:    "implied by 'the other day'",
		}}
		i := &mockInteractionRepo{}
		uc := newPushUC(&mockBatchRepo{}, i, &mockPersonUC{}, inf)

		_, err := uc.Push(context.Background(), sc, syncin.PushInput{
			Source: "agent",
			Items: []syncin.PushItem{{
				ExternalID: "x1",
				Transcript: "we grabbed lunch the other day and talked about the wedding plans",
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inf.calls != 1 {
			t.Fatalf("expected one inference, got %d", inf.calls)
		}
		opt := i.created[0]
		if opt.OccurredAt == nil || !opt.OccurredAt.Equal(inferred) {
			t.Errorf("expected inferred date on insert, got %v", opt.OccurredAt)
		}
		if opt.DateConfidence != "medium" {
			t.Errorf("expected audit confidence, got %q", opt.DateConfidence)
		}
	})

	t.Run("Agent Timestamp Skips Inference", func(t *testing.T) {
		inf := &mockInferrer{}
		ts := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)
		uc := newPushUC(&mockBatchRepo{}, &mockInteractionRepo{}, &mockPersonUC{}, inf)

		_, err := uc.Push(context.Background(), sc, syncin.PushInput{
			Source: "agent",
			Items: []syncin.PushItem{{
				ExternalID: "x1",
				Transcript: "a transcript that would otherwise trigger inference",
				Timestamp:  &ts,
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inf.calls != 0 {
			t.Errorf("inference must not run when the agent supplied a timestamp")
		}
	})

	t.Run("Unknown Type Becomes Note", func(t *testing.T) {
		i := &mockInteractionRepo{}
		uc := newPushUC(&mockBatchRepo{}, i, &mockPersonUC{}, nil)

		_, err := uc.Push(context.Background(), sc, syncin.PushInput{
			Source: "agent",
			Items:  []syncin.PushItem{{ExternalID: "x1", Type: "voicemail"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i.created[0].Type != interaction.TypeNote {
			t.Errorf("expected note fallback, got %q", i.created[0].Type)
		}
	})
}
