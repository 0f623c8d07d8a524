package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
	"github.com/seifmegahed/daftar/pkg/logger"
)

// Shared dependencias comunes a los casos de uso: caché de lecturas y logger.
type Shared struct {
	Cache    ports.Cache
	CacheTTL time.Duration
	Log      *logger.Logger
}

func (s Shared) logger() *logger.Logger {
	if s.Log == nil {
		return logger.Nop()
	}
	return s.Log
}

func toListParams(p dto.PageRequest) repository.ListParams {
	return repository.ListParams{Limit: p.Limit, Offset: p.Offset, Search: strings.TrimSpace(p.Search)}.Normalize()
}

func toPageResponse(p repository.ListParams, total int) dto.PageResponse {
	return dto.PageResponse{Limit: p.Limit, Offset: p.Offset, Total: total}
}

// listKey clave de caché de un listado paginado.
func listKey(prefix string, p repository.ListParams, extra ...string) string {
	return fmt.Sprintf("%s:list:%d:%d:%s:%s", prefix, p.Limit, p.Offset, p.Search, strings.Join(extra, ":"))
}

func toOptionResponses(list []entity.Option) []dto.OptionResponse {
	out := make([]dto.OptionResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.OptionResponse{ID: o.ID, Name: o.Name})
	}
	return out
}

// viewer filtro de documentos privados para el principal.
func viewer(p dto.Principal) repository.Viewer {
	return repository.Viewer{UserID: p.UserID, IsAdmin: p.IsAdmin()}
}

// ptr devuelve un puntero a una copia de s.
func ptr(s string) *string { return &s }

// emptyToNil normaliza "" a nil para referencias opcionales.
func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string { return t.Format(dateLayout) }
