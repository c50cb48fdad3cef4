// Package scheduler runs the periodic maintenance jobs of the engine.
package scheduler

//go:generate mockgen -destination=mock_scheduler.go -package=scheduler . BonusTasks,Cashback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/service/cashbackservice"
)

type BonusTasks interface {
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type Cashback interface {
	FlushBuffer(ctx context.Context) (cashbackservice.FlushResult, error)
	CalculateAndFinalizeForPeriod(ctx context.Context, period int) (int, error)
	ExpireUnclaimed(ctx context.Context, now time.Time) (int64, error)
	RemindUnclaimed(ctx context.Context) (int, error)
}

type Schedules struct {
	Expire   string
	Flush    string
	Finalize string
	Remind   string
}

type Scheduler struct {
	cron       *cron.Cron
	bonusTasks BonusTasks
	cashback   Cashback
	now        func() time.Time
	ctx        context.Context
}

func New(bonusTasks BonusTasks, cashback Cashback) *Scheduler {
	logger := cronLogger{zap.S()}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		bonusTasks: bonusTasks,
		cashback:   cashback,
		now:        func() time.Time { return time.Now().UTC() },
		ctx:        context.Background(),
	}
}

func (s *Scheduler) Register(schedules Schedules) error {
	jobs := []struct {
		name string
		spec string
		fn   func(ctx context.Context) error
	}{
		{"expire_bonus_tasks", schedules.Expire, s.ExpireBonusTasks},
		{"flush_cashback_buffer", schedules.Flush, s.FlushCashback},
		{"finalize_cashback", schedules.Finalize, s.FinalizeCashback},
		{"remind_cashback", schedules.Remind, s.RemindCashback},
	}
	for _, job := range jobs {
		job := job
		if job.spec == "" {
			zap.L().Info("Job disabled", zap.String("job", job.name))
			continue
		}
		_, err := s.cron.AddFunc(job.spec, func() {
			start := time.Now()
			if err := job.fn(s.ctx); err != nil {
				zap.L().Error("Job failed", zap.String("job", job.name), zap.Error(err))
				return
			}
			zap.L().Debug("Job finished", zap.String("job", job.name), zap.Duration("took", time.Since(start)))
		})
		if err != nil {
			return fmt.Errorf("invalid schedule %q for %s: %w", job.spec, job.name, err)
		}
	}
	return nil
}

// Start runs the jobs until ctx is cancelled, then waits for running jobs.
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx = ctx
	s.cron.Start()
	zap.L().Info("Scheduler started", zap.Int("jobs", len(s.cron.Entries())))

	<-ctx.Done()
	<-s.cron.Stop().Done()
	zap.L().Info("Scheduler stopped")
}

func (s *Scheduler) ExpireBonusTasks(ctx context.Context) error {
	_, err := s.bonusTasks.ExpireOverdue(ctx, s.now())
	return err
}

func (s *Scheduler) FlushCashback(ctx context.Context) error {
	result, err := s.cashback.FlushBuffer(ctx)
	if result.Drained > 0 {
		zap.L().Info("Cashback buffer flushed",
			zap.Int("drained", result.Drained),
			zap.Int("merged", result.Merged),
			zap.Int("duplicates", result.Duplicates),
			zap.Int("dropped", result.Dropped),
			zap.Int("failed", result.Failed),
		)
	}
	return err
}

// FinalizeCashback flushes what is still buffered for the closed week before
// finalizing it, then expires records past the claim window.
func (s *Scheduler) FinalizeCashback(ctx context.Context) error {
	now := s.now()
	if err := s.FlushCashback(ctx); err != nil {
		return fmt.Errorf("flush before finalize: %w", err)
	}

	period := domain.PreviousPeriod(now)
	if _, err := s.cashback.CalculateAndFinalizeForPeriod(ctx, period); err != nil {
		if !errors.Is(err, domain.ErrConfigurationMissing) {
			return fmt.Errorf("finalize period %d: %w", period, err)
		}
	}

	_, err := s.cashback.ExpireUnclaimed(ctx, now)
	return err
}

func (s *Scheduler) RemindCashback(ctx context.Context) error {
	reminded, err := s.cashback.RemindUnclaimed(ctx)
	if err != nil {
		return err
	}
	zap.L().Info("Cashback reminders sent", zap.Int("count", reminded))
	return nil
}

type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
