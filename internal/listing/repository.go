package listing

import (
	"context"
	"errors"
)

// ErrDraftNotFound is returned when a draft id does not exist.
var ErrDraftNotFound = errors.New("draft not found")

// Repository defines the storage interface for listing drafts.
type Repository interface {
	// SaveDraft inserts a new draft or replaces an existing one.
	// On insert the draft's ID is filled in.
	SaveDraft(ctx context.Context, d *Draft) error

	// GetDraft retrieves a draft with its sessions by id.
	GetDraft(ctx context.Context, id int64) (*Draft, error)

	// ListDrafts returns all drafts, newest first, without sessions loaded.
	ListDrafts(ctx context.Context) ([]*Draft, error)

	// DeleteDraft removes a draft and its sessions.
	DeleteDraft(ctx context.Context, id int64) error

	// Close releases any resources held by the repository.
	Close() error
}
