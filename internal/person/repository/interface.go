package repository

import (
	"context"

	"relationship-os/internal/person"
)

// Repository is the composed interface for the person domain data store.
type Repository interface {
	PersonRepository
}

// PersonRepository defines all data access methods for the Person entity.
type PersonRepository interface {
	CreatePerson(ctx context.Context, opt CreatePersonOptions) (person.Person, error)
	GetOnePerson(ctx context.Context, opt GetOnePersonOptions) (person.Person, error)
	ListPersons(ctx context.Context, opt ListPersonsOptions) ([]person.Person, int, error)
	UpdatePerson(ctx context.Context, opt UpdatePersonOptions) (person.Person, error)
	DeletePerson(ctx context.Context, userID, id string) error
}
