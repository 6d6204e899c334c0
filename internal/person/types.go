package person

import "time"

// Person is a contact the user maintains a relationship with.
type Person struct {
	ID        string
	UserID    string
	Name      string
	Phone     string
	Email     string
	Company   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

type CreatePersonInput struct {
	Name    string
	Phone   string
	Email   string
	Company string
	Notes   string
}

type ListPersonsInput struct {
	Query  string // matches name/phone/email
	Limit  int
	Offset int
}

type UpdatePersonInput struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Company string
	Notes   string
}

// SearchPersonInput is the lookup used by sync agents: any provided field may
// match, checked in order of reliability (phone, email, then name).
type SearchPersonInput struct {
	Phone string
	Email string
	Name  string
}

// --- UseCase Outputs ---

type CreatePersonOutput struct {
	Person Person
}

type ListPersonsOutput struct {
	Persons []Person
	Total   int
	Limit   int
	Offset  int
}

type DetailPersonOutput struct {
	Person Person
}

type UpdatePersonOutput struct {
	Person Person
}

type SearchPersonOutput struct {
	Person  Person
	Matched bool
}
