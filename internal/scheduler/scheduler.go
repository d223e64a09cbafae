package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"

	"github.com/skyglass/skyglass/internal/dashboard"
)

// Scheduler periodically refreshes the displayed forecast so the dashboard
// does not go stale between user actions.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *dashboard.Service
	interval  time.Duration
	log       zerolog.Logger
}

// New creates a new Scheduler.
func New(service *dashboard.Service, interval time.Duration, log zerolog.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		interval:  interval,
		log:       log,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
// A zero interval disables refreshing.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.log.Info().Msg("scheduler: refresh disabled")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		s.log.Debug().Msg("scheduler: refreshing displayed forecast")
		s.service.Refresh(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
