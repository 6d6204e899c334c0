package usecase

import (
	"context"
	"errors"
	"testing"

	"relationship-os/internal/model"
	"relationship-os/internal/person"
	repo "relationship-os/internal/person/repository"
)

// Mock logger for testing
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

// mockRepo implements repository.Repository with injectable behavior.
type mockRepo struct {
	getOneFunc func(opt repo.GetOnePersonOptions) (person.Person, error)
	createFunc func(opt repo.CreatePersonOptions) (person.Person, error)
	updateFunc func(opt repo.UpdatePersonOptions) (person.Person, error)
	deleteFunc func(userID, id string) error
	listFunc   func(opt repo.ListPersonsOptions) ([]person.Person, int, error)

	getOneCalls []repo.GetOnePersonOptions
}

func (m *mockRepo) CreatePerson(ctx context.Context, opt repo.CreatePersonOptions) (person.Person, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return person.Person{ID: "p1", UserID: opt.UserID, Name: opt.Name}, nil
}

func (m *mockRepo) GetOnePerson(ctx context.Context, opt repo.GetOnePersonOptions) (person.Person, error) {
	m.getOneCalls = append(m.getOneCalls, opt)
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return person.Person{}, nil
}

func (m *mockRepo) ListPersons(ctx context.Context, opt repo.ListPersonsOptions) ([]person.Person, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepo) UpdatePerson(ctx context.Context, opt repo.UpdatePersonOptions) (person.Person, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return person.Person{ID: opt.ID, Name: opt.Name}, nil
}

func (m *mockRepo) DeletePerson(ctx context.Context, userID, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(userID, id)
	}
	return nil
}

var sc = model.Scope{UserID: "u1", Email: "u1@example.com"}

func TestCreate(t *testing.T) {
	t.Run("Name Required", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.Create(context.Background(), sc, person.CreatePersonInput{Name: "   "})
		if !errors.Is(err, person.ErrNameRequired) {
			t.Errorf("expected ErrNameRequired, got %v", err)
		}
	})

	t.Run("Trims And Scopes", func(t *testing.T) {
		var got repo.CreatePersonOptions
		m := &mockRepo{createFunc: func(opt repo.CreatePersonOptions) (person.Person, error) {
			got = opt
			return person.Person{ID: "p1"}, nil
		}}
		uc := New(m, &mockLogger{})
		_, err := uc.Create(context.Background(), sc, person.CreatePersonInput{Name: " Alice ", Phone: " 555 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UserID != "u1" || got.Name != "Alice" || got.Phone != "555" {
			t.Errorf("unexpected options: %+v", got)
		}
	})

	t.Run("Repository Error", func(t *testing.T) {
		m := &mockRepo{createFunc: func(opt repo.CreatePersonOptions) (person.Person, error) {
			return person.Person{}, repo.ErrFailedToInsert
		}}
		uc := New(m, &mockLogger{})
		_, err := uc.Create(context.Background(), sc, person.CreatePersonInput{Name: "Alice"})
		if !errors.Is(err, repo.ErrFailedToInsert) {
			t.Errorf("expected insert error, got %v", err)
		}
	})
}

func TestDetail(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.Detail(context.Background(), sc, "missing")
		if !errors.Is(err, person.ErrPersonNotFound) {
			t.Errorf("expected ErrPersonNotFound, got %v", err)
		}
	})

	t.Run("Found", func(t *testing.T) {
		m := &mockRepo{getOneFunc: func(opt repo.GetOnePersonOptions) (person.Person, error) {
			return person.Person{ID: opt.ID, Name: "Alice"}, nil
		}}
		uc := New(m, &mockLogger{})
		out, err := uc.Detail(context.Background(), sc, "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Person.Name != "Alice" {
			t.Errorf("unexpected person: %+v", out.Person)
		}
	})
}

func TestUpdate_PartialFieldsFallBack(t *testing.T) {
	m := &mockRepo{
		getOneFunc: func(opt repo.GetOnePersonOptions) (person.Person, error) {
			return person.Person{ID: "p1", Name: "Alice", Phone: "555", Company: "Acme"}, nil
		},
		updateFunc: func(opt repo.UpdatePersonOptions) (person.Person, error) {
			return person.Person{ID: opt.ID, Name: opt.Name, Phone: opt.Phone, Company: opt.Company}, nil
		},
	}
	uc := New(m, &mockLogger{})

	out, err := uc.Update(context.Background(), sc, person.UpdatePersonInput{ID: "p1", Phone: "777"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Person.Phone != "777" {
		t.Errorf("expected updated phone, got %q", out.Person.Phone)
	}
	if out.Person.Name != "Alice" || out.Person.Company != "Acme" {
		t.Errorf("untouched fields must survive: %+v", out.Person)
	}
}

func TestSearch(t *testing.T) {
	t.Run("Phone Wins Over Name", func(t *testing.T) {
		m := &mockRepo{getOneFunc: func(opt repo.GetOnePersonOptions) (person.Person, error) {
			if opt.Phone == "555" {
				return person.Person{ID: "by-phone"}, nil
			}
			if opt.Name == "Alice" {
				return person.Person{ID: "by-name"}, nil
			}
			return person.Person{}, nil
		}}
		uc := New(m, &mockLogger{})
		out, err := uc.Search(context.Background(), sc, person.SearchPersonInput{Phone: "555", Name: "Alice"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Matched || out.Person.ID != "by-phone" {
			t.Errorf("expected phone match first, got %+v", out)
		}
	})

	t.Run("Falls Through To Name", func(t *testing.T) {
		m := &mockRepo{getOneFunc: func(opt repo.GetOnePersonOptions) (person.Person, error) {
			if opt.Name == "Alice" {
				return person.Person{ID: "by-name"}, nil
			}
			return person.Person{}, nil
		}}
		uc := New(m, &mockLogger{})
		out, err := uc.Search(context.Background(), sc, person.SearchPersonInput{Phone: "000", Email: "x@y.z", Name: "Alice"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Matched || out.Person.ID != "by-name" {
			t.Errorf("expected name match, got %+v", out)
		}
	})

	t.Run("No Match", func(t *testing.T) {
		m := &mockRepo{}
		uc := New(m, &mockLogger{})
		out, err := uc.Search(context.Background(), sc, person.SearchPersonInput{Email: "nobody@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Matched {
			t.Errorf("expected no match, got %+v", out)
		}
		// empty hint fields must not trigger lookups
		for _, call := range m.getOneCalls {
			if call.Phone == "" && call.Email == "" && call.Name == "" {
				t.Errorf("lookup issued with no filters: %+v", call)
			}
		}
	})
}
