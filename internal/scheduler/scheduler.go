package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/matchview/internal/models"
)

// YearLoader is the part of the loader the prefetch job needs.
type YearLoader interface {
	Load(ctx context.Context, year int) (*models.YearDocument, error)
	CachedYears() []int
}

// Scheduler warms the year cache in the background so the first visitor
// does not wait on the fetch. Years already cached are never fetched again.
type Scheduler struct {
	s        gocron.Scheduler
	loader   YearLoader
	years    []int
	interval time.Duration
	timeout  time.Duration
}

func NewScheduler(loader YearLoader, years []int, interval, timeout time.Duration) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:        s,
		loader:   loader,
		years:    years,
		interval: interval,
		timeout:  timeout,
	}, nil
}

func (s *Scheduler) Start() error {
	task := gocron.NewTask(func() { s.prefetch() })

	var err error
	if s.interval > 0 {
		_, err = s.s.NewJob(
			gocron.DurationJob(s.interval),
			task,
			gocron.WithStartAt(gocron.WithStartImmediately()),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
	} else {
		_, err = s.s.NewJob(
			gocron.OneTimeJob(gocron.OneTimeJobStartImmediately()),
			task,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to create prefetch job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

// prefetch loads every configured year that is not cached yet and returns
// how many it loaded.
func (s *Scheduler) prefetch() int {
	cached := s.loader.CachedYears()
	loaded := 0
	for _, year := range s.years {
		if slices.Contains(cached, year) {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		_, err := s.loader.Load(ctx, year)
		cancel()
		if err != nil {
			slog.Error("Failed to prefetch year", "year", year, "error", err)
			continue
		}
		loaded++
	}
	if loaded > 0 {
		slog.Info("Prefetched years", "loaded", loaded, "cached", s.loader.CachedYears())
	}
	return loaded
}
