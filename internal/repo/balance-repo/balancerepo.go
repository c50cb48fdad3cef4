package balancerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/pg"
)

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

func (r *Repository) GetBalance(ctx context.Context, userID int64, currency string) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, currency, available, frozen, version, updated_at
        FROM balances
        WHERE user_id = $1 AND currency = $2
    `
	var b domain.Balance
	err := r.db.QueryRow(ctx, query, userID, currency).
		Scan(&b.ID, &b.UserID, &b.Currency, &b.Available, &b.Frozen, &b.Version, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get balance", zap.Int64("user_id", userID), zap.String("currency", currency), zap.Error(err))
		return nil, err
	}
	return &b, nil
}

// CreateBalance inserts an empty balance row unless one already exists and returns the stored row.
func (r *Repository) CreateBalance(ctx context.Context, userID int64, currency string) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, currency, available, frozen, version)
        VALUES ($1, $2, 0, 0, 0)
        ON CONFLICT (user_id, currency) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, userID, currency); err != nil {
		zap.L().Error("failed to create balance", zap.Int64("user_id", userID), zap.String("currency", currency), zap.Error(err))
		return nil, err
	}
	return r.GetBalance(ctx, userID, currency)
}

// ApplyVersioned writes next if the stored version still equals expectedVersion
// and appends txn to the log, both in one transaction.
func (r *Repository) ApplyVersioned(ctx context.Context, next *domain.Balance, expectedVersion int64, txn *domain.Transaction) (*domain.Balance, *domain.Transaction, error) {
	update := `
		UPDATE balances
		SET available = $1, frozen = $2, version = version + 1, updated_at = $3
		WHERE id = $4 AND version = $5
		RETURNING id, user_id, currency, available, frozen, version, updated_at
	`
	insert := `
		INSERT INTO transactions (user_id, currency, amount, type, status, related_entity_id, notes, transaction_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var updated domain.Balance
	stored := *txn

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, update, next.Available, next.Frozen, time.Now().UTC(), next.ID, expectedVersion).
			Scan(&updated.ID, &updated.UserID, &updated.Currency, &updated.Available, &updated.Frozen, &updated.Version, &updated.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrVersionConflict
			}
			zap.L().Error("failed to update balance", zap.Int64("balance_id", next.ID), zap.Error(err))
			return err
		}

		err = r.db.QueryRow(ctx, insert,
			stored.UserID, stored.Currency, stored.Amount, stored.Type, stored.Status,
			stored.RelatedEntityID, stored.Notes, stored.TransactionTime,
		).Scan(&stored.ID)
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return domain.ErrDuplicateEvent
			}
			zap.L().Error("failed to append transaction", zap.String("related_entity_id", stored.RelatedEntityID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &updated, &stored, nil
}

func (r *Repository) FindTransaction(ctx context.Context, kind domain.TransactionType, relatedEntityID string) (*domain.Transaction, error) {
	query := `
        SELECT id, user_id, currency, amount, type, status, related_entity_id, notes, transaction_time
        FROM transactions
        WHERE type = $1 AND related_entity_id = $2
    `
	var t domain.Transaction
	err := r.db.QueryRow(ctx, query, kind, relatedEntityID).
		Scan(&t.ID, &t.UserID, &t.Currency, &t.Amount, &t.Type, &t.Status, &t.RelatedEntityID, &t.Notes, &t.TransactionTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find transaction", zap.String("related_entity_id", relatedEntityID), zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (r *Repository) ListTransactions(ctx context.Context, userID int64, currency string, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, currency, amount, type, status, related_entity_id, notes, transaction_time
        FROM transactions
        WHERE user_id = $1 AND currency = $2
        ORDER BY transaction_time DESC, id DESC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, userID, currency, limit)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Currency, &t.Amount, &t.Type, &t.Status, &t.RelatedEntityID, &t.Notes, &t.TransactionTime); err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
