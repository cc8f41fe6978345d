package repositories

import "context"

// CleanupQueue schedules removal of a stored file that could not be deleted
// inline.
type CleanupQueue interface {
	EnqueueDelete(ctx context.Context, locator string) error
}
