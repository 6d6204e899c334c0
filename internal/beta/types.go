package beta

import "time"

// Entry is a whitelisted email allowed through the beta gate.
type Entry struct {
	ID        string
	Email     string
	Note      string
	AddedBy   string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type AddEntryInput struct {
	Email string
	Note  string
}

// --- UseCase Outputs ---

type AddEntryOutput struct {
	Entry Entry
}

type ListEntriesOutput struct {
	Entries []Entry
	Total   int
}
