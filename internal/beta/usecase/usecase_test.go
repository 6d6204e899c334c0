package usecase

import (
	"context"
	"errors"
	"testing"

	"relationship-os/internal/beta"
	repo "relationship-os/internal/beta/repository"
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
	entries map[string]beta.Entry // keyed by email
}

func newMockRepo(emails ...string) *mockRepo {
	m := &mockRepo{entries: map[string]beta.Entry{}}
	for i, e := range emails {
		m.entries[e] = beta.Entry{ID: string(rune('a' + i)), Email: e}
	}
	return m
}

func (m *mockRepo) CreateEntry(ctx context.Context, opt repo.CreateEntryOptions) (beta.Entry, error) {
	e := beta.Entry{ID: "new", Email: opt.Email, Note: opt.Note, AddedBy: opt.AddedBy}
	m.entries[opt.Email] = e
	return e, nil
}

func (m *mockRepo) GetOneEntry(ctx context.Context, opt repo.GetOneEntryOptions) (beta.Entry, error) {
	if opt.Email != "" {
		return m.entries[opt.Email], nil
	}
	return beta.Entry{}, nil
}

func (m *mockRepo) ListEntries(ctx context.Context) ([]beta.Entry, int, error) {
	var out []beta.Entry
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, len(out), nil
}

func (m *mockRepo) DeleteEntry(ctx context.Context, email string) error {
	delete(m.entries, email)
	return nil
}

var adminScope = model.Scope{UserID: "admin", Email: "admin@example.com", Role: model.RoleAdmin}

func TestAdd(t *testing.T) {
	t.Run("Invalid Email", func(t *testing.T) {
		uc := New(newMockRepo(), &mockLogger{})
		_, err := uc.Add(context.Background(), adminScope, beta.AddEntryInput{Email: "not-an-email"})
		if !errors.Is(err, beta.ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		uc := New(newMockRepo("taken@example.com"), &mockLogger{})
		_, err := uc.Add(context.Background(), adminScope, beta.AddEntryInput{Email: "Taken@Example.com "})
		if !errors.Is(err, beta.ErrDuplicateEmail) {
			t.Errorf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("Records Admin As AddedBy", func(t *testing.T) {
		uc := New(newMockRepo(), &mockLogger{})
		out, err := uc.Add(context.Background(), adminScope, beta.AddEntryInput{Email: "new@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Entry.AddedBy != "admin@example.com" {
			t.Errorf("expected AddedBy from scope, got %q", out.Entry.AddedBy)
		}
	})
}

func TestCheck(t *testing.T) {
	uc := New(newMockRepo("member@example.com"), &mockLogger{})

	tests := []struct {
		email string
		want  bool
	}{
		{"member@example.com", true},
		{"MEMBER@example.com", true},
		{"  member@example.com ", true},
		{"stranger@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		got, err := uc.Check(context.Background(), tt.email)
		if err != nil {
			t.Fatalf("Check(%q): %v", tt.email, err)
		}
		if got != tt.want {
			t.Errorf("Check(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestRemove(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		uc := New(newMockRepo(), &mockLogger{})
		err := uc.Remove(context.Background(), adminScope, "ghost@example.com")
		if !errors.Is(err, beta.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("Removes", func(t *testing.T) {
		m := newMockRepo("member@example.com")
		uc := New(m, &mockLogger{})
		if err := uc.Remove(context.Background(), adminScope, "member@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := m.entries["member@example.com"]; ok {
			t.Errorf("entry should be deleted")
		}
	})
}
