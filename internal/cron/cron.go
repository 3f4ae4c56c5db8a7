package cron

import (
	"context"
	"log"
	"time"

	"github.com/Marga-Ghale/glam-studio-backend/internal/service"
	"github.com/robfig/cron/v3"
)

// Scheduler handles scheduled tasks
type Scheduler struct {
	cron     *cron.Cron
	enforcer *service.CapacityEnforcer
}

// NewScheduler creates a new scheduler
func NewScheduler(enforcer *service.CapacityEnforcer) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		enforcer: enforcer,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	// Run every hour - Sweep portfolio back within capacity limits.
	// Writes already enforce limits synchronously; the sweep catches items
	// reactivated by direct database edits or bulk imports.
	s.cron.AddFunc("0 * * * *", func() {
		log.Println("[Cron] Running portfolio capacity sweep...")
		s.sweepPortfolioCapacity()
	})

	s.cron.Start()
	log.Println("[Cron] Scheduler started")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[Cron] Scheduler stopped")
}

func (s *Scheduler) sweepPortfolioCapacity() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s.enforcer.Sweep(ctx)
}
