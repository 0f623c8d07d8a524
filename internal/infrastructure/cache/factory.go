package cache

import (
	"context"

	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/pkg/config"
)

// New construye el caché según CACHE_DRIVER. El closer devuelto libera conexiones (no-op en memoria).
func New(ctx context.Context, cfg *config.Config) (ports.Cache, func() error, error) {
	if cfg.Cache.Driver == "redis" {
		rc, err := NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return rc, rc.Close, nil
	}
	return NewMemoryCache(), func() error { return nil }, nil
}
