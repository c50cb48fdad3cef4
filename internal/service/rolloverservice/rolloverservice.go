package rolloverservice

//go:generate mockgen -destination=mock_rolloverservice.go -package=rolloverservice . Repo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/metrics"
)

type Repo interface {
	WithLock(ctx context.Context, userID int64, currency string, fn func(ctx context.Context) error) error
	MarkWagerApplied(ctx context.Context, orderID int64) (bool, error)
	FindActive(ctx context.Context, userID int64, currency string) (*domain.Rollover, error)
	FindOldestPending(ctx context.Context, userID int64, currency string) (*domain.Rollover, error)
	Create(ctx context.Context, ro *domain.Rollover) (bool, error)
	Update(ctx context.Context, ro *domain.Rollover) error
	ListByUser(ctx context.Context, userID int64, currency string) ([]domain.Rollover, error)
}

// WagerResult reports how a single wager was distributed over the queue.
// Duplicate is set when the order had already been applied.
type WagerResult struct {
	Applied   decimal.Decimal
	Completed []int64
	Discarded decimal.Decimal
	Duplicate bool
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// OnDeposit queues a new rollover for the grant and activates the head of
// the queue if nothing is active yet. A repeated grant is a no-op.
func (s *Service) OnDeposit(ctx context.Context, userID int64, currency string, amount decimal.Decimal, source domain.RolloverSource, relatedID string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: rollover amount must be positive", domain.ErrInvalidEvent)
	}

	return s.repo.WithLock(ctx, userID, currency, func(ctx context.Context) error {
		ro := &domain.Rollover{
			UserID:        userID,
			Currency:      currency,
			SourceType:    source,
			RelatedID:     relatedID,
			Amount:        amount,
			RequiredWager: amount,
			CurrentWager:  decimal.Zero,
		}
		created, err := s.repo.Create(ctx, ro)
		if err != nil {
			return err
		}
		if !created {
			zap.L().Info("rollover already granted", zap.String("source", string(source)), zap.String("related_id", relatedID))
			return nil
		}

		active, err := s.repo.FindActive(ctx, userID, currency)
		if err != nil {
			return err
		}
		if active != nil {
			return nil
		}
		_, err = s.activateNext(ctx, userID, currency)
		return err
	})
}

// OnWagered feeds the order's wager into the active rollover and cascades
// any excess down the FIFO queue. Excess left after the queue is exhausted is
// discarded. An order is applied at most once.
func (s *Service) OnWagered(ctx context.Context, orderID, userID int64, currency string, wager decimal.Decimal) (WagerResult, error) {
	result := WagerResult{Applied: decimal.Zero, Discarded: decimal.Zero}
	if !wager.IsPositive() {
		return result, nil
	}

	err := s.repo.WithLock(ctx, userID, currency, func(ctx context.Context) error {
		result = WagerResult{Applied: decimal.Zero, Discarded: decimal.Zero}
		fresh, err := s.repo.MarkWagerApplied(ctx, orderID)
		if err != nil {
			return err
		}
		if !fresh {
			result.Duplicate = true
			return nil
		}
		remaining := wager

		for remaining.IsPositive() {
			active, err := s.repo.FindActive(ctx, userID, currency)
			if err != nil {
				return err
			}
			if active == nil {
				if active, err = s.activateNext(ctx, userID, currency); err != nil {
					return err
				}
				if active == nil {
					break
				}
			}

			active.CurrentWager = active.CurrentWager.Add(remaining)
			if active.CurrentWager.LessThan(active.RequiredWager) {
				if err := s.repo.Update(ctx, active); err != nil {
					return err
				}
				result.Applied = result.Applied.Add(remaining)
				remaining = decimal.Zero
				break
			}

			excess := active.CurrentWager.Sub(active.RequiredWager)
			completedAt := s.now()
			active.CurrentWager = active.RequiredWager
			active.Status = domain.RolloverCompleted
			active.CompletedAt = &completedAt
			if err := s.repo.Update(ctx, active); err != nil {
				return err
			}
			result.Applied = result.Applied.Add(remaining.Sub(excess))
			result.Completed = append(result.Completed, active.ID)
			remaining = excess
		}

		result.Discarded = remaining
		return nil
	})
	if err != nil {
		zap.L().Error("failed to apply wager to rollovers",
			zap.Int64("order_id", orderID),
			zap.Int64("user_id", userID),
			zap.String("currency", currency),
			zap.Error(err),
		)
		return WagerResult{}, err
	}
	if result.Duplicate {
		zap.L().Info("wager already applied to rollovers", zap.Int64("order_id", orderID))
		return result, nil
	}

	if result.Discarded.IsPositive() {
		metrics.RolloverExcessDiscarded.WithLabelValues(currency).Add(result.Discarded.InexactFloat64())
		zap.L().Warn("rollover queue exhausted, wager excess discarded",
			zap.Int64("user_id", userID),
			zap.String("currency", currency),
			zap.String("discarded", result.Discarded.String()),
		)
	}
	return result, nil
}

func (s *Service) activateNext(ctx context.Context, userID int64, currency string) (*domain.Rollover, error) {
	next, err := s.repo.FindOldestPending(ctx, userID, currency)
	if err != nil || next == nil {
		return nil, err
	}
	next.Status = domain.RolloverActive
	if err := s.repo.Update(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64, currency string) ([]domain.Rollover, error) {
	return s.repo.ListByUser(ctx, userID, currency)
}
