package storage

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists one listing image and returns the public URL recorded on
// the item.
type Store interface {
	Save(ctx context.Context, origName string, content []byte, contentType string) (string, error)
}

// objectName keeps the original extension but replaces the name, so user
// input never reaches the filesystem or bucket key.
func objectName(origName string) string {
	return uuid.NewString() + filepath.Ext(origName)
}
