package storage

import (
	"context"
	"mime/multipart"
)

// Storage persists uploaded images and returns an opaque reference that is
// stored on the owning document and passed back to Delete.
type Storage interface {
	Save(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
	Delete(ctx context.Context, ref string) error
}
