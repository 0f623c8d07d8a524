// Package scheduler ejecuta tareas periódicas de mantenimiento.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/seifmegahed/daftar/internal/infrastructure/metrics"
	"github.com/seifmegahed/daftar/pkg/logger"
)

// SessionPurger borra las sesiones vencidas y devuelve cuántas eliminó.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler envoltorio de cron con las tareas de la aplicación.
type Scheduler struct {
	cron *cron.Cron
	log  *logger.Logger
}

// New crea el scheduler y registra la limpieza de sesiones con la expresión expr (ej. "@hourly").
func New(expr string, purger SessionPurger, log *logger.Logger) (*Scheduler, error) {
	c := cron.New()
	s := &Scheduler{cron: c, log: log}
	if _, err := c.AddFunc(expr, func() { s.purgeSessions(purger) }); err != nil {
		return nil, fmt.Errorf("expresión cron inválida %q: %w", expr, err)
	}
	return s, nil
}

func (s *Scheduler) purgeSessions(purger SessionPurger) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := purger.PurgeExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("limpieza de sesiones falló")
		return
	}
	metrics.SessionsPurged(n)
	s.log.Info().Int64("deleted", n).Msg("sesiones vencidas eliminadas")
}

// Start arranca el scheduler en segundo plano.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop detiene el scheduler y espera a que terminen las tareas en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
