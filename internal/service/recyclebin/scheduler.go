package recyclebin

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the retention purge on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	service  *Service
	logger   Logger
	schedule string
}

// NewScheduler creates a purge scheduler. The schedule is a standard
// 5-field cron expression, e.g. "0 3 * * *" for 03:00 daily.
func NewScheduler(service *Service, logger Logger, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		service:  service,
		logger:   logger,
		schedule: schedule,
	}
}

// Start registers the purge job and starts the cron loop. One purge runs
// immediately so a long-stopped instance catches up on restart.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.runPurge)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Scheduler: retention purge scheduled (%s)", s.schedule)

	go s.runPurge()
	return nil
}

// Stop halts the cron loop and waits for a running purge to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler: stopped")
}

func (s *Scheduler) runPurge() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := s.service.PurgeExpired(ctx, time.Now()); err != nil {
		s.logger.Error("Scheduler: retention purge run failed: %v", err)
	}
}
