package ports

import (
	"context"
	"encoding/json"
	"time"
)

// Etiquetas de invalidación por tipo de entidad.
const (
	TagClients   = "clients"
	TagSuppliers = "suppliers"
	TagProjects  = "projects"
	TagItems     = "items"
	TagDocuments = "documents"
	TagUsers     = "users"
	TagRequests  = "requests"
	TagDashboard = "dashboard"
)

// Cache almacén clave/valor con invalidación por etiquetas.
// Un Set asocia la clave a sus etiquetas; InvalidateTags borra todas las claves de esas etiquetas.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error
	InvalidateTags(ctx context.Context, tags ...string) error
}

// Remember devuelve el valor cacheado en key o lo calcula con fn y lo guarda bajo tags.
// Un fallo del caché nunca impide responder: se degrada a llamar fn.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, tags []string, fn func() (T, error)) (T, error) {
	if c == nil {
		return fn()
	}
	if raw, ok, err := c.Get(ctx, key); err == nil && ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
	}
	v, err := fn()
	if err != nil {
		return v, err
	}
	if raw, err := json.Marshal(v); err == nil {
		_ = c.Set(ctx, key, raw, ttl, tags...)
	}
	return v, nil
}

// Invalidate borra las etiquetas ignorando errores del backend (el TTL acota la obsolescencia).
func Invalidate(ctx context.Context, c Cache, tags ...string) {
	if c == nil {
		return
	}
	_ = c.InvalidateTags(ctx, tags...)
}
