package repository

// CreateBatchOptions holds parameters for recording a processed batch.
// ID is assigned by the caller (uuid).
type CreateBatchOptions struct {
	ID         string
	UserID     string
	Source     string
	SyncType   string
	Received   int
	Created    int
	Duplicates int
	Errors     int
}

// ListBatchesOptions bounds the batch listing.
type ListBatchesOptions struct {
	UserID string
	Source string
	Limit  int
}
