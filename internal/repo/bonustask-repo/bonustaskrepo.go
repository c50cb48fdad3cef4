package bonustaskrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/pg"
)

const taskColumns = `id, user_id, currency, cap_bonus, base_bonus, last_bonus, need_wager, wager, status, expired_at, completed_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// WithUserLock runs fn in a transaction holding the user's bonus task lock.
func (r *Repository) WithUserLock(ctx context.Context, userID int64, fn func(ctx context.Context) error) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		key := fmt.Sprintf("bonus_task:%d", userID)
		if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
			zap.L().Error("failed to lock bonus tasks", zap.Int64("user_id", userID), zap.Error(err))
			return err
		}
		return fn(ctx)
	})
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.BonusTask, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM bonus_tasks
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

// FindActiveByUser returns the user's active task denominated in currency.
func (r *Repository) FindActiveByUser(ctx context.Context, userID int64, currency string) (*domain.BonusTask, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM bonus_tasks
        WHERE user_id = $1 AND currency = $2 AND status = 'active'
    `
	return r.findOne(ctx, query, userID, currency)
}

// MarkWagerApplied records that the order's wager reached the bonus task.
// It reports false when the order was applied before.
func (r *Repository) MarkWagerApplied(ctx context.Context, orderID int64) (bool, error) {
	query := `
        INSERT INTO wager_applications (order_id, target)
        VALUES ($1, 'bonus_task')
        ON CONFLICT (order_id, target) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, orderID)
	if err != nil {
		zap.L().Error("failed to mark bonus task wager applied", zap.Int64("order_id", orderID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.BonusTask, error) {
	var t domain.BonusTask
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.UserID, &t.Currency, &t.CapBonus, &t.BaseBonus, &t.LastBonus,
		&t.NeedWager, &t.Wager, &t.Status, &t.ExpiredAt, &t.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find bonus task", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Update(ctx context.Context, t *domain.BonusTask) error {
	query := `
        UPDATE bonus_tasks
        SET wager = $1, status = $2, completed_at = $3
        WHERE id = $4
    `
	tag, err := r.db.Exec(ctx, query, t.Wager, t.Status, t.CompletedAt, t.ID)
	if err != nil {
		zap.L().Error("failed to update bonus task", zap.Int64("task_id", t.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExpireOverdue moves every open task past its deadline to expired.
func (r *Repository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE bonus_tasks
        SET status = 'expired'
        WHERE status IN ('pending', 'active') AND expired_at <= $1
    `
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("failed to expire bonus tasks", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
