package cashbackrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/pg"
)

const cashbackColumns = `id, user_id, period, currency, wager, payout, rate, amount, status, claimed_at`

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

// MergeBufferEntry adds a drained delta to its active aggregate once per token.
// It reports false when the token was merged before and returns
// domain.ErrAggregateClosed when the aggregate is no longer active.
func (r *Repository) MergeBufferEntry(ctx context.Context, entry domain.BufferEntry) (bool, error) {
	logInsert := `
        INSERT INTO cashback_buffer_merges (token, period)
        VALUES ($1, $2)
        ON CONFLICT (token) DO NOTHING
    `
	upsert := `
        INSERT INTO weekly_cashbacks (user_id, period, currency, wager, payout, status)
        VALUES ($1, $2, $3, $4, $5, 'active')
        ON CONFLICT (user_id, period, currency) DO UPDATE
        SET wager = weekly_cashbacks.wager + EXCLUDED.wager,
            payout = weekly_cashbacks.payout + EXCLUDED.payout,
            updated_at = now()
        WHERE weekly_cashbacks.status = 'active'
    `
	merged := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, logInsert, entry.Token, entry.Key.Period)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		tag, err = r.db.Exec(ctx, upsert, entry.Key.UserID, entry.Key.Period, entry.Key.Currency, entry.Wager, entry.Payout)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrAggregateClosed
		}
		merged = true
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrAggregateClosed) {
			zap.L().Error("failed to merge cashback delta", zap.String("token", entry.Token), zap.Error(err))
		}
		return false, err
	}
	return merged, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.WeeklyCashback, error) {
	query := `
        SELECT ` + cashbackColumns + `
        FROM weekly_cashbacks
        WHERE id = $1
    `
	var c domain.WeeklyCashback
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.Period, &c.Currency, &c.Wager, &c.Payout, &c.Rate, &c.Amount, &c.Status, &c.ClaimedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get cashback", zap.Int64("cashback_id", id), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByPeriod(ctx context.Context, period int, status domain.CashbackStatus) ([]domain.WeeklyCashback, error) {
	query := `
        SELECT ` + cashbackColumns + `
        FROM weekly_cashbacks
        WHERE period = $1 AND status = $2
        ORDER BY id
    `
	return r.list(ctx, query, period, status)
}

func (r *Repository) ListClaimable(ctx context.Context) ([]domain.WeeklyCashback, error) {
	query := `
        SELECT ` + cashbackColumns + `
        FROM weekly_cashbacks
        WHERE status = 'claimable'
        ORDER BY period, id
    `
	return r.list(ctx, query)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.WeeklyCashback, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list cashbacks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cashbacks []domain.WeeklyCashback
	for rows.Next() {
		var c domain.WeeklyCashback
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Period, &c.Currency, &c.Wager, &c.Payout, &c.Rate, &c.Amount, &c.Status, &c.ClaimedAt,
		); err != nil {
			zap.L().Error("can't scan cashback row", zap.Error(err))
			return nil, err
		}
		cashbacks = append(cashbacks, c)
	}
	return cashbacks, rows.Err()
}

// Finalize makes an active aggregate claimable. It reports false when the
// record was already finalized.
func (r *Repository) Finalize(ctx context.Context, id int64, rate, amount decimal.Decimal) (bool, error) {
	query := `
        UPDATE weekly_cashbacks
        SET rate = $1, amount = $2, status = 'claimable', updated_at = now()
        WHERE id = $3 AND status = 'active'
    `
	tag, err := r.db.Exec(ctx, query, rate, amount, id)
	if err != nil {
		zap.L().Error("failed to finalize cashback", zap.Int64("cashback_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) MarkClaimed(ctx context.Context, id int64, claimedAt time.Time) (bool, error) {
	query := `
        UPDATE weekly_cashbacks
        SET status = 'claimed', claimed_at = $1, updated_at = now()
        WHERE id = $2 AND status = 'claimable'
    `
	tag, err := r.db.Exec(ctx, query, claimedAt, id)
	if err != nil {
		zap.L().Error("failed to mark cashback claimed", zap.Int64("cashback_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ExpireBefore expires claimable records of periods older than period.
func (r *Repository) ExpireBefore(ctx context.Context, period int) (int64, error) {
	query := `
        UPDATE weekly_cashbacks
        SET status = 'expired', updated_at = now()
        WHERE status = 'claimable' AND period < $1
    `
	tag, err := r.db.Exec(ctx, query, period)
	if err != nil {
		zap.L().Error("failed to expire cashbacks", zap.Int("period", period), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// PruneMergesBefore drops merge log rows of periods older than period. Their
// aggregates are no longer active, so a replayed token is rejected anyway.
func (r *Repository) PruneMergesBefore(ctx context.Context, period int) (int64, error) {
	query := `
        DELETE FROM cashback_buffer_merges
        WHERE period < $1
    `
	tag, err := r.db.Exec(ctx, query, period)
	if err != nil {
		zap.L().Error("failed to prune buffer merge log", zap.Int("period", period), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
