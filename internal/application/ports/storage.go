package ports

import (
	"context"
	"io"
)

// ObjectStorage almacenamiento del contenido de los documentos.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// DownloadURL devuelve una URL firmada de descarga, o "" si el backend sirve el contenido vía Open.
	DownloadURL(ctx context.Context, key, filename string) (string, error)
}
