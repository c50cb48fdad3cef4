package rolloverrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/pg"
)

const rolloverColumns = `id, user_id, currency, source_type, related_id, amount, required_wager, current_wager, status, created_at, completed_at`

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

// WithLock runs fn in a transaction holding the advisory lock of the
// (user, currency) rollover chain.
func (r *Repository) WithLock(ctx context.Context, userID int64, currency string, fn func(ctx context.Context) error) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		key := fmt.Sprintf("rollover:%d:%s", userID, currency)
		if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
			zap.L().Error("failed to lock rollover chain", zap.Int64("user_id", userID), zap.String("currency", currency), zap.Error(err))
			return err
		}
		return fn(ctx)
	})
}

// MarkWagerApplied records that the order's wager reached the rollover chain.
// It reports false when the order was applied before. Call it inside WithLock
// so the mark commits or rolls back with the wager itself.
func (r *Repository) MarkWagerApplied(ctx context.Context, orderID int64) (bool, error) {
	query := `
        INSERT INTO wager_applications (order_id, target)
        VALUES ($1, 'rollover')
        ON CONFLICT (order_id, target) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, orderID)
	if err != nil {
		zap.L().Error("failed to mark rollover wager applied", zap.Int64("order_id", orderID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindActive(ctx context.Context, userID int64, currency string) (*domain.Rollover, error) {
	query := `
        SELECT ` + rolloverColumns + `
        FROM rollovers
        WHERE user_id = $1 AND currency = $2 AND status = 'active'
    `
	return r.findOne(ctx, query, userID, currency)
}

// FindOldestPending returns the next rollover in FIFO order.
func (r *Repository) FindOldestPending(ctx context.Context, userID int64, currency string) (*domain.Rollover, error) {
	query := `
        SELECT ` + rolloverColumns + `
        FROM rollovers
        WHERE user_id = $1 AND currency = $2 AND status = 'pending'
        ORDER BY created_at ASC, id ASC
        LIMIT 1
    `
	return r.findOne(ctx, query, userID, currency)
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Rollover, error) {
	var ro domain.Rollover
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&ro.ID, &ro.UserID, &ro.Currency, &ro.SourceType, &ro.RelatedID, &ro.Amount,
		&ro.RequiredWager, &ro.CurrentWager, &ro.Status, &ro.CreatedAt, &ro.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find rollover", zap.Error(err))
		return nil, err
	}
	return &ro, nil
}

// Create inserts a pending rollover. It reports false when a rollover for the
// same grant already exists.
func (r *Repository) Create(ctx context.Context, ro *domain.Rollover) (bool, error) {
	query := `
        INSERT INTO rollovers (user_id, currency, source_type, related_id, amount, required_wager, current_wager, status)
        VALUES ($1, $2, $3, $4, $5, $6, 0, 'pending')
        ON CONFLICT (source_type, related_id) DO NOTHING
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, ro.UserID, ro.Currency, ro.SourceType, ro.RelatedID, ro.Amount, ro.RequiredWager).
		Scan(&ro.ID, &ro.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't create rollover", zap.String("related_id", ro.RelatedID), zap.Error(err))
		return false, err
	}
	ro.Status = domain.RolloverPending
	return true, nil
}

func (r *Repository) Update(ctx context.Context, ro *domain.Rollover) error {
	query := `
        UPDATE rollovers
        SET current_wager = $1, status = $2, completed_at = $3
        WHERE id = $4
    `
	tag, err := r.db.Exec(ctx, query, ro.CurrentWager, ro.Status, ro.CompletedAt, ro.ID)
	if err != nil {
		zap.L().Error("can't update rollover", zap.Int64("rollover_id", ro.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, currency string) ([]domain.Rollover, error) {
	query := `
        SELECT ` + rolloverColumns + `
        FROM rollovers
        WHERE user_id = $1 AND ($2::text = '' OR currency = $2)
        ORDER BY created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, userID, currency)
	if err != nil {
		zap.L().Error("can't list rollovers", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rollovers []domain.Rollover
	for rows.Next() {
		var ro domain.Rollover
		if err := rows.Scan(
			&ro.ID, &ro.UserID, &ro.Currency, &ro.SourceType, &ro.RelatedID, &ro.Amount,
			&ro.RequiredWager, &ro.CurrentWager, &ro.Status, &ro.CreatedAt, &ro.CompletedAt,
		); err != nil {
			zap.L().Error("can't scan rollover row", zap.Error(err))
			return nil, err
		}
		rollovers = append(rollovers, ro)
	}
	return rollovers, rows.Err()
}
