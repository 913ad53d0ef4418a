package port

import (
	"context"
	"io"
)

// ArchiveObject is a translated download handed to the archive.
type ArchiveObject struct {
	Key             string
	Body            io.Reader
	ContentType     string
	ContentLanguage string
}

// ArchiveStorage keeps copies of translated downloads. The bucket and the
// presign lifetime belong to the implementation.
type ArchiveStorage interface {
	Put(ctx context.Context, obj ArchiveObject) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
