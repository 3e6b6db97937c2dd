// Package scheduler runs the periodic scan and pulse jobs.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler manages the cron tasks.
type Scheduler struct {
	Cron    *cron.Cron
	Service *Service
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *Service) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Service: svc,
		Ctx:     ctx,
	}
}

// RegisterAll registers the scan and pulse cron tasks.
func (s *Scheduler) RegisterAll(scanCron, pulseCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	if _, err := s.Cron.AddFunc(pulseCron, s.pulseTask); err != nil {
		return fmt.Errorf("register pulse task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunScanNow executes the scan task immediately (for manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Info().Msg("running scheduled scan")
	if _, err := s.Service.RunScan(s.Ctx); err != nil {
		log.Error().Err(err).Msg("scheduled scan failed")
	}
}

func (s *Scheduler) pulseTask() {
	log.Info().Msg("running scheduled pulse refresh")
	if _, err := s.Service.RunPulse(s.Ctx); err != nil {
		log.Error().Err(err).Msg("scheduled pulse refresh failed")
	}
}
