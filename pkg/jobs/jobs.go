// Package jobs runs the periodic background work of the backend.
package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/internal/types"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Scheduler generates the pending transactions of all budgets and
// expires subscriptions in a fixed interval.
type Scheduler struct {
	db       *gorm.DB
	interval time.Duration
	workers  int
	now      func() time.Time

	runs        prometheus.Counter
	created     prometheus.Counter
	failures    prometheus.Counter
	expirations prometheus.Counter
}

// RunResult is the outcome of a single run.
type RunResult struct {
	Budgets  int   // Budgets processed
	Created  int   // Pending transactions created
	Failed   int   // Budgets that failed
	Expired  int64 // Subscriptions marked as expired
	Canceled bool  // The run was stopped before all budgets were processed
}

// New returns a Scheduler. Less than one worker is treated as one.
func New(db *gorm.DB, interval time.Duration, workers int) *Scheduler {
	if workers < 1 {
		workers = 1
	}

	return &Scheduler{
		db:       db,
		interval: interval,
		workers:  workers,
		now:      time.Now,

		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hivebudget_job_runs_total",
			Help: "Number of background job runs",
		}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hivebudget_job_pending_transactions_created_total",
			Help: "Number of pending transactions created by background jobs",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hivebudget_job_budget_failures_total",
			Help: "Number of budgets for which pending transaction generation failed",
		}),
		expirations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hivebudget_job_subscriptions_expired_total",
			Help: "Number of subscriptions marked as expired",
		}),
	}
}

// Collectors returns the metrics of the scheduler for registration.
func (s *Scheduler) Collectors() []prometheus.Collector {
	return []prometheus.Collector{s.runs, s.created, s.failures, s.expirations}
}

// Start runs the jobs once and then every interval until the context
// is canceled. It blocks until the last run has finished.
func (s *Scheduler) Start(ctx context.Context) {
	log.Info().Dur("interval", s.interval).Int("workers", s.workers).Msg("starting background jobs")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.Run(ctx)

		select {
		case <-ctx.Done():
			log.Info().Msg("background jobs stopped")
			return
		case <-ticker.C:
		}
	}
}

// Run expires subscriptions and generates the pending transactions of
// the current month.
func (s *Scheduler) Run(ctx context.Context) RunResult {
	s.runs.Inc()

	now := s.now()
	month := types.MonthOf(now.In(time.UTC))

	expired, err := models.ExpireSubscriptions(s.db.WithContext(ctx), now)
	if err != nil {
		log.Error().Err(err).Msg("expiring subscriptions failed")
	}
	s.expirations.Add(float64(expired))

	result := s.Generate(ctx, month)
	result.Expired = expired

	log.Info().
		Str("month", month.String()).
		Int("budgets", result.Budgets).
		Int("created", result.Created).
		Int("failed", result.Failed).
		Int64("expired", result.Expired).
		Msg("background jobs finished")

	return result
}

// Generate creates the pending transactions of the month for all budgets
// that are not archived. Errors for single budgets are logged and do not
// stop the run.
func (s *Scheduler) Generate(ctx context.Context, month types.Month) RunResult {
	var result RunResult
	logger := log.With().Str("month", month.String()).Logger()

	var budgetIDs []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&models.Budget{}).
		Where("archived = ?", false).
		Order("created_at ASC").
		Pluck("id", &budgetIDs).Error
	if err != nil {
		logger.Error().Err(err).Msg("listing budgets failed")
		return result
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		jobs = make(chan uuid.UUID)
	)

	for range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for budgetID := range jobs {
				created, err := models.EnsurePendingTransactions(s.db.WithContext(ctx), budgetID, month)

				mu.Lock()
				result.Budgets++
				result.Created += created
				if err != nil {
					result.Failed++
				}
				mu.Unlock()

				s.created.Add(float64(created))
				if err != nil {
					s.failures.Inc()
					logger.Error().Str("budget", budgetID.String()).Err(err).Msg("generating pending transactions failed")
				}
			}
		}()
	}

enqueue:
	for _, id := range budgetIDs {
		select {
		case jobs <- id:
		case <-ctx.Done():
			result.Canceled = true
			break enqueue
		}
	}

	close(jobs)
	wg.Wait()

	return result
}
