package storage

import (
	"context"

	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/pkg/config"
	"github.com/seifmegahed/daftar/pkg/logger"
)

// New construye el almacenamiento según STORAGE_DRIVER.
func New(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (ports.ObjectStorage, error) {
	if cfg.Driver == "s3" {
		s, err := NewS3Storage(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}
	return NewLocalStorage(cfg.LocalDir)
}
