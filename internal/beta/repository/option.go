package repository

// CreateEntryOptions holds parameters for inserting a whitelist entry.
type CreateEntryOptions struct {
	Email   string
	Note    string
	AddedBy string
}

// GetOneEntryOptions holds filter parameters for fetching a single entry.
type GetOneEntryOptions struct {
	ID    string
	Email string
}
