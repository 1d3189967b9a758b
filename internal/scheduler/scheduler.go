package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sit722-devops/week09/internal/config"
)

// Refresher re-fetches the product list. The catalog browser satisfies it.
type Refresher interface {
	Refresh()
}

// Scheduler manages the periodic catalog refresh.
type Scheduler struct {
	cron    *cron.Cron
	catalog Refresher
	cfg     config.ConsoleConfig
	logger  *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.ConsoleConfig, catalog Refresher, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3's default parser accepts @every descriptors alongside
	// the standard five-field specs, which is all we need for an interval.
	c := cron.New()

	return &Scheduler{
		cron:    c,
		catalog: catalog,
		cfg:     cfg,
		logger:  logger,
	}
}

// Start schedules the refresh and starts the cron runner. A non-positive
// interval leaves auto refresh off.
func (s *Scheduler) Start() {
	if s.cfg.RefreshInterval <= 0 {
		s.logger.Info("auto refresh disabled")
		return
	}

	spec := fmt.Sprintf("@every %s", s.cfg.RefreshInterval)
	if _, err := s.cron.AddFunc(spec, s.refreshCatalog); err != nil {
		s.logger.Error("failed to schedule auto refresh", zap.String("spec", spec), zap.Error(err))
		return
	}

	s.logger.Info("starting scheduler", zap.Duration("interval", s.cfg.RefreshInterval))
	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) refreshCatalog() {
	s.logger.Debug("auto refresh tick")
	s.catalog.Refresh()
}
