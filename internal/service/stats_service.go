package service

import (
	"context"
	"fmt"
	"sync"

	"moshood-fashion/internal/model"
	"moshood-fashion/internal/repository"

	"github.com/rs/zerolog"
)

type statsService struct {
	repo   repository.StatsRepository
	logger zerolog.Logger
}

// NewStatsService creates a new admin metrics service.
func NewStatsService(repo repository.StatsRepository, logger zerolog.Logger) StatsService {
	return &statsService{
		repo:   repo,
		logger: logger.With().Str("service", "stats").Logger(),
	}
}

// Overview runs the metric queries concurrently and collects them into a
// single snapshot. Any failing metric fails the whole overview.
func (s *statsService) Overview(ctx context.Context) (*model.Overview, error) {
	var (
		overview model.Overview
		wg       sync.WaitGroup
		errs     = make(chan error, 6)
	)

	run := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				errs <- fmt.Errorf("%s: %w", name, err)
			}
		}()
	}

	run("total orders", func() error {
		n, err := s.repo.CountOrders(ctx)
		overview.TotalOrders = n
		return err
	})
	run("delivered orders", func() error {
		n, err := s.repo.CountOrdersByStatus(ctx, model.StatusCompleted)
		overview.DeliveredOrders = n
		return err
	})
	run("active orders", func() error {
		n, err := s.repo.CountOrdersByStatus(ctx, model.StatusPending, model.StatusSent)
		overview.ActiveOrders = n
		return err
	})
	run("total requests", func() error {
		n, err := s.repo.CountRequests(ctx)
		overview.TotalRequests = n
		return err
	})
	run("total users", func() error {
		n, err := s.repo.CountUsers(ctx)
		overview.TotalUsers = n
		return err
	})
	run("total income", func() error {
		sum, err := s.repo.SumPayments(ctx)
		overview.TotalIncome = sum
		return err
	})

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, fmt.Errorf("failed to build overview: %w", err)
	}

	return &overview, nil
}
