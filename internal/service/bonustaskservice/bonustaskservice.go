package bonustaskservice

//go:generate mockgen -destination=mock_bonustaskservice.go -package=bonustaskservice . Repo,OrderRepo,Notifier

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
)

// DepletionThreshold is the remaining bonus below which an idle task is depleted.
var DepletionThreshold = decimal.RequireFromString("0.1")

type Repo interface {
	WithUserLock(ctx context.Context, userID int64, fn func(ctx context.Context) error) error
	Get(ctx context.Context, id int64) (*domain.BonusTask, error)
	FindActiveByUser(ctx context.Context, userID int64, currency string) (*domain.BonusTask, error)
	MarkWagerApplied(ctx context.Context, orderID int64) (bool, error)
	Update(ctx context.Context, t *domain.BonusTask) error
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type OrderRepo interface {
	SaveSettled(ctx context.Context, order *domain.Order) error
	CountPendingByBonusTask(ctx context.Context, taskID int64) (int64, error)
}

type Notifier interface {
	BonusTaskCompleted(ctx context.Context, task domain.BonusTask) error
}

type Service struct {
	repo      Repo
	orderRepo OrderRepo
	notifier  Notifier
	now       func() time.Time
}

func New(repo Repo, orderRepo OrderRepo, notifier Notifier) *Service {
	return &Service{
		repo:      repo,
		orderRepo: orderRepo,
		notifier:  notifier,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// OnWagered credits the order's amount to the user's active task of the same
// currency, completing it once the wager target is reached. An order is
// credited at most once.
func (s *Service) OnWagered(ctx context.Context, orderID, userID int64, currency string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}

	var completed *domain.BonusTask
	err := s.repo.WithUserLock(ctx, userID, func(ctx context.Context) error {
		fresh, err := s.repo.MarkWagerApplied(ctx, orderID)
		if err != nil {
			return err
		}
		if !fresh {
			zap.L().Info("wager already applied to bonus task", zap.Int64("order_id", orderID))
			return nil
		}

		task, err := s.repo.FindActiveByUser(ctx, userID, currency)
		if err != nil || task == nil {
			return err
		}

		task.Wager = task.Wager.Add(amount)
		if !task.Wager.LessThan(task.NeedWager) {
			completedAt := s.now()
			task.Wager = task.NeedWager
			task.Status = domain.BonusTaskCompleted
			task.CompletedAt = &completedAt
			completed = task
		}
		return s.repo.Update(ctx, task)
	})
	if err != nil {
		zap.L().Error("failed to credit bonus task", zap.Int64("order_id", orderID), zap.Int64("user_id", userID), zap.Error(err))
		return err
	}

	if completed != nil {
		zap.L().Info("bonus task completed", zap.Int64("user_id", userID), zap.Int64("task_id", completed.ID))
		if err := s.notifier.BonusTaskCompleted(ctx, *completed); err != nil {
			zap.L().Error("failed to publish bonus task completion", zap.Int64("task_id", completed.ID), zap.Error(err))
		}
	}
	return nil
}

// OnOrderSettled records the settlement and depletes the bound task when its
// remaining bonus is exhausted and no bound order is still pending.
func (s *Service) OnOrderSettled(ctx context.Context, order domain.Order) error {
	if order.BonusTaskID == nil {
		return nil
	}
	taskID := *order.BonusTaskID

	return s.repo.WithUserLock(ctx, order.UserID, func(ctx context.Context) error {
		if err := s.orderRepo.SaveSettled(ctx, &order); err != nil {
			return err
		}

		task, err := s.repo.Get(ctx, taskID)
		if err != nil {
			return err
		}
		if task == nil {
			zap.L().Warn("bonus task of settled order not found",
				zap.Int64("order_id", order.ID),
				zap.Int64("task_id", taskID),
				zap.Error(domain.ErrNotFound),
			)
			return nil
		}
		if !task.Open() || !task.LastBonus.LessThan(DepletionThreshold) {
			return nil
		}

		pending, err := s.orderRepo.CountPendingByBonusTask(ctx, taskID)
		if err != nil {
			return err
		}
		if pending > 0 {
			return nil
		}

		task.Status = domain.BonusTaskDepleted
		if err := s.repo.Update(ctx, task); err != nil {
			return err
		}
		zap.L().Info("bonus task depleted", zap.Int64("user_id", order.UserID), zap.Int64("task_id", taskID))
		return nil
	})
}

// ExpireOverdue expires every open task whose deadline has passed.
func (s *Service) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	count, err := s.repo.ExpireOverdue(ctx, now)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		zap.L().Info("bonus tasks expired", zap.Int64("count", count))
	}
	return count, nil
}
