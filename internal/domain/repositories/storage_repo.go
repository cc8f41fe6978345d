package repositories

import (
	"context"
	"time"
)

type StoredFile struct {
	// Name is the bare file name; it does not depend on the public prefix.
	Name    string
	Locator string
	Size    int64
	ModTime time.Time
}

// ContentStore keeps video payloads. Names are derived from the owning
// entity id; the client file name only contributes its extension.
type ContentStore interface {
	Write(ctx context.Context, id, originalName string, data []byte) (string, error)
	// Delete treats a missing file as already deleted.
	Delete(ctx context.Context, locator string) error
	Path(locator string) (string, error)
	List(ctx context.Context) ([]StoredFile, error)
}
