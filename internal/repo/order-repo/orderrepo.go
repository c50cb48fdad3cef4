package orderrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// SaveSettled records the final state of an order reported by the order
// subsystem so pending counts reflect the settlement.
func (r *Repository) SaveSettled(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (id, user_id, currency, amount, payout, game_id, bonus_task_id, status, finished_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (id) DO UPDATE
        SET payout = EXCLUDED.payout, status = EXCLUDED.status, finished_at = EXCLUDED.finished_at
    `
	_, err := r.db.Exec(ctx, query,
		order.ID, order.UserID, order.Currency, order.Amount, order.Payout,
		order.GameID, order.BonusTaskID, order.Status, order.FinishedAt,
	)
	if err != nil {
		zap.L().Error("can't save settled order", zap.Int64("order_id", order.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountPendingByBonusTask(ctx context.Context, taskID int64) (int64, error) {
	query := `
        SELECT COUNT(*)
        FROM orders
        WHERE bonus_task_id = $1 AND status = 'pending'
    `
	var count int64
	if err := r.db.QueryRow(ctx, query, taskID).Scan(&count); err != nil {
		zap.L().Error("can't count pending orders", zap.Int64("bonus_task_id", taskID), zap.Error(err))
		return 0, err
	}
	return count, nil
}
