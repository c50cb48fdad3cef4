package balancerepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/pg"
)

var balanceColumns = []string{"id", "user_id", "currency", "available", "frozen", "version", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func passThrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Balance
	}{
		{
			name: "Existing balance",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, user_id, currency, available, frozen, version, updated_at FROM balances").
					WithArgs(int64(1), "USD").
					WillReturnRows(pgxmock.NewRows(balanceColumns).
						AddRow(int64(7), int64(1), "USD", decimal.NewFromInt(100), decimal.NewFromInt(5), int64(3), now))
			},
			result: &domain.Balance{
				ID: 7, UserID: 1, Currency: "USD",
				Available: decimal.NewFromInt(100), Frozen: decimal.NewFromInt(5),
				Version: 3, UpdatedAt: now,
			},
		},
		{
			name: "Missing balance returns nil",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, user_id, currency").
					WithArgs(int64(1), "USD").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, user_id, currency").
					WithArgs(int64(1), "USD").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetBalance(context.Background(), 1, "USD")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectExec("INSERT INTO balances").
		WithArgs(int64(2), "EUR").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT id, user_id, currency").
		WithArgs(int64(2), "EUR").
		WillReturnRows(pgxmock.NewRows(balanceColumns).
			AddRow(int64(9), int64(2), "EUR", decimal.Zero, decimal.Zero, int64(0), now))

	balance, err := repo.CreateBalance(context.Background(), 2, "EUR")

	require.NoError(t, err)
	assert.Equal(t, int64(9), balance.ID)
	assert.Equal(t, int64(0), balance.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ApplyVersioned(t *testing.T) {
	now := time.Now()
	next := &domain.Balance{ID: 7, UserID: 1, Currency: "USD", Available: decimal.NewFromInt(150), Frozen: decimal.Zero, Version: 3}
	txn := &domain.Transaction{
		UserID: 1, Currency: "USD", Amount: decimal.NewFromInt(50), Type: domain.TransactionDeposit,
		Status: domain.TransactionStatusCompleted, RelatedEntityID: "dep-1", TransactionTime: now,
	}

	tests := []struct {
		name        string
		mockSetup   func(mock pgxmock.PgxPoolIface)
		expectedErr error
		anyErr      bool
	}{
		{
			name: "Applies when version matches",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("UPDATE balances SET available").
					WithArgs(next.Available, next.Frozen, pgxmock.AnyArg(), int64(7), int64(3)).
					WillReturnRows(pgxmock.NewRows(balanceColumns).
						AddRow(int64(7), int64(1), "USD", decimal.NewFromInt(150), decimal.Zero, int64(4), now))
				mock.ExpectQuery("INSERT INTO transactions").
					WithArgs(int64(1), "USD", txn.Amount, domain.TransactionDeposit, domain.TransactionStatusCompleted, "dep-1", "", now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
			},
		},
		{
			name: "Version conflict",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("UPDATE balances SET available").
					WithArgs(next.Available, next.Frozen, pgxmock.AnyArg(), int64(7), int64(3)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: domain.ErrVersionConflict,
		},
		{
			name: "Duplicate related entity",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("UPDATE balances SET available").
					WithArgs(next.Available, next.Frozen, pgxmock.AnyArg(), int64(7), int64(3)).
					WillReturnRows(pgxmock.NewRows(balanceColumns).
						AddRow(int64(7), int64(1), "USD", decimal.NewFromInt(150), decimal.Zero, int64(4), now))
				mock.ExpectQuery("INSERT INTO transactions").
					WillReturnError(&pgconn.PgError{Code: pg.UniqueViolation})
			},
			expectedErr: domain.ErrDuplicateEvent,
		},
		{
			name: "Database error on update",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("UPDATE balances SET available").
					WillReturnError(errors.New("connection reset"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, txManager := NewMock(t)
			passThrough(txManager)
			tt.mockSetup(mock)

			updated, stored, err := repo.ApplyVersioned(context.Background(), next, 3, txn)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, updated)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(4), updated.Version)
				assert.Equal(t, int64(11), stored.ID)
				assert.Equal(t, int64(0), txn.ID, "caller's transaction must not be mutated")
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindTransaction(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, user_id, currency, amount, type").
		WithArgs(domain.TransactionCashback, "cashback:5").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "currency", "amount", "type", "status", "related_entity_id", "notes", "transaction_time"}).
			AddRow(int64(3), int64(1), "USD", decimal.NewFromInt(12), domain.TransactionCashback, "completed", "cashback:5", "", now))
	mock.ExpectQuery("SELECT id, user_id, currency, amount, type").
		WithArgs(domain.TransactionCashback, "cashback:6").
		WillReturnError(pgx.ErrNoRows)

	found, err := repo.FindTransaction(context.Background(), domain.TransactionCashback, "cashback:5")
	require.NoError(t, err)
	assert.Equal(t, int64(3), found.ID)

	missing, err := repo.FindTransaction(context.Background(), domain.TransactionCashback, "cashback:6")
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListTransactions(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("FROM transactions WHERE user_id").
		WithArgs(int64(1), "USD", 2).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "currency", "amount", "type", "status", "related_entity_id", "notes", "transaction_time"}).
			AddRow(int64(2), int64(1), "USD", decimal.NewFromInt(-5), domain.TransactionBet, "completed", "bet-2", "", now).
			AddRow(int64(1), int64(1), "USD", decimal.NewFromInt(10), domain.TransactionDeposit, "completed", "dep-1", "", now))

	txns, err := repo.ListTransactions(context.Background(), 1, "USD", 2)

	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, domain.TransactionBet, txns[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
