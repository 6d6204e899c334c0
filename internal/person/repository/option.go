package repository

// CreatePersonOptions holds parameters for inserting a new Person.
type CreatePersonOptions struct {
	UserID  string
	Name    string
	Phone   string
	Email   string
	Company string
	Notes   string
}

// GetOnePersonOptions holds filter parameters for fetching a single Person.
// All non-empty fields are applied as AND conditions. UserID is mandatory.
type GetOnePersonOptions struct {
	UserID string
	ID     string
	Phone  string
	Email  string
	Name   string
}

// ListPersonsOptions holds filter and pagination parameters for listing Persons.
type ListPersonsOptions struct {
	UserID  string
	Query   string // substring match on name/phone/email
	Limit   int
	Offset  int
	OrderBy string
}

// UpdatePersonOptions holds parameters for updating an existing Person.
type UpdatePersonOptions struct {
	UserID  string
	ID      string
	Name    string
	Phone   string
	Email   string
	Company string
	Notes   string
}
