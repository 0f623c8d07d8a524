package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar/internal/domain"
)

func TestLocalStorage_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	body := "contenido del contrato"
	require.NoError(t, s.Put(ctx, "2024/01/abc.pdf", strings.NewReader(body), int64(len(body)), "application/pdf"))

	rc, err := s.Open(ctx, "2024/01/abc.pdf")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, body, string(got))

	url, err := s.DownloadURL(ctx, "2024/01/abc.pdf", "contrato.pdf")
	require.NoError(t, err)
	assert.Empty(t, url, "el almacenamiento local sirve el contenido directamente")

	require.NoError(t, s.Delete(ctx, "2024/01/abc.pdf"))
	_, err = s.Open(ctx, "2024/01/abc.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// borrar dos veces no es error
	assert.NoError(t, s.Delete(ctx, "2024/01/abc.pdf"))
}

func TestLocalStorage_ClaveNoEscapaDelDirectorio(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewLocalStorage(root)
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "../../etc/x.txt", strings.NewReader("x"), 1, "text/plain"))
	p, err := s.path("../../etc/x.txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, root), "la clave se resuelve dentro de root: %s", p)

	_, err = s.path("")
	assert.Error(t, err)
}

func TestLocalStorage_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	err = s.Put(ctx, "a.txt", strings.NewReader("data"), 4, "text/plain")
	assert.ErrorIs(t, err, context.Canceled)
}
