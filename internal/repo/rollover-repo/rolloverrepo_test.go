package rolloverrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/pg"
)

var columns = []string{"id", "user_id", "currency", "source_type", "related_id", "amount", "required_wager", "current_wager", "status", "created_at", "completed_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func TestRepository_WithLock(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Times(2)

	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("rollover:1:USD").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	called := false
	err := repo.WithLock(context.Background(), 1, "USD", func(ctx context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("rollover:1:USD").
		WillReturnError(errors.New("lock timeout"))
	err = repo.WithLock(context.Background(), 1, "USD", func(ctx context.Context) error {
		t.Fatal("fn must not run without the lock")
		return nil
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkWagerApplied(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec("INSERT INTO wager_applications").
		WithArgs(int64(1001)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	applied, err := repo.MarkWagerApplied(context.Background(), 1001)
	require.NoError(t, err)
	assert.True(t, applied)

	mock.ExpectExec("INSERT INTO wager_applications").
		WithArgs(int64(1001)).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	applied, err = repo.MarkWagerApplied(context.Background(), 1001)
	require.NoError(t, err)
	assert.False(t, applied)

	mock.ExpectExec("INSERT INTO wager_applications").
		WillReturnError(errors.New("database error"))
	_, err = repo.MarkWagerApplied(context.Background(), 1001)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindOldestPending(t *testing.T) {
	repo, mock, _ := NewMock(t)
	created := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectID  int64
	}{
		{
			name: "Oldest pending found",
			mockSetup: func() {
				mock.ExpectQuery("WHERE user_id = \\$1 AND currency = \\$2 AND status = 'pending' ORDER BY created_at ASC, id ASC").
					WithArgs(int64(1), "USD").
					WillReturnRows(pgxmock.NewRows(columns).AddRow(
						int64(4), int64(1), "USD", domain.RolloverSourceDeposit, "dep-4",
						decimal.NewFromInt(100), decimal.NewFromInt(100), decimal.Zero,
						domain.RolloverPending, created, (*time.Time)(nil),
					))
			},
			expectID: 4,
		},
		{
			name: "Queue exhausted",
			mockSetup: func() {
				mock.ExpectQuery("status = 'pending'").
					WithArgs(int64(1), "USD").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("status = 'pending'").
					WithArgs(int64(1), "USD").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ro, err := repo.FindOldestPending(context.Background(), 1, "USD")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectID != 0 {
				require.NotNil(t, ro)
				assert.Equal(t, tt.expectID, ro.ID)
				assert.Equal(t, domain.RolloverPending, ro.Status)
			} else {
				assert.Nil(t, ro)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock, _ := NewMock(t)
	completed := time.Now()

	mock.ExpectQuery("status = 'active'").
		WithArgs(int64(1), "USD").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(
			int64(2), int64(1), "USD", domain.RolloverSourceBonus, "bonus-2",
			decimal.NewFromInt(10), decimal.NewFromInt(50), decimal.NewFromInt(20),
			domain.RolloverActive, completed, (*time.Time)(nil),
		))

	ro, err := repo.FindActive(context.Background(), 1, "USD")
	require.NoError(t, err)
	assert.Equal(t, "20", ro.CurrentWager.String())
	assert.Nil(t, ro.CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	newRollover := func() *domain.Rollover {
		return &domain.Rollover{
			UserID: 1, Currency: "USD", SourceType: domain.RolloverSourceDeposit, RelatedID: "dep-1",
			Amount: decimal.NewFromInt(100), RequiredWager: decimal.NewFromInt(100),
		}
	}

	mock.ExpectQuery("INSERT INTO rollovers").
		WithArgs(int64(1), "USD", domain.RolloverSourceDeposit, "dep-1", decimal.NewFromInt(100), decimal.NewFromInt(100)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))
	ro := newRollover()
	created, err := repo.Create(context.Background(), ro)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(5), ro.ID)
	assert.Equal(t, domain.RolloverPending, ro.Status)

	mock.ExpectQuery("INSERT INTO rollovers").
		WillReturnError(pgx.ErrNoRows)
	created, err = repo.Create(context.Background(), newRollover())
	require.NoError(t, err)
	assert.False(t, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	ro := &domain.Rollover{ID: 3, CurrentWager: decimal.NewFromInt(100), Status: domain.RolloverCompleted, CompletedAt: &now}

	mock.ExpectExec("UPDATE rollovers SET current_wager").
		WithArgs(ro.CurrentWager, domain.RolloverCompleted, &now, int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.Update(context.Background(), ro))

	mock.ExpectExec("UPDATE rollovers SET current_wager").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(context.Background(), ro), domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("FROM rollovers WHERE user_id").
		WithArgs(int64(1), "").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), int64(1), "USD", domain.RolloverSourceDeposit, "dep-1",
				decimal.NewFromInt(100), decimal.NewFromInt(100), decimal.NewFromInt(100),
				domain.RolloverCompleted, now, &now).
			AddRow(int64(2), int64(1), "EUR", domain.RolloverSourceDeposit, "dep-2",
				decimal.NewFromInt(50), decimal.NewFromInt(50), decimal.Zero,
				domain.RolloverActive, now, (*time.Time)(nil)))

	rollovers, err := repo.ListByUser(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, rollovers, 2)
	assert.NotNil(t, rollovers[0].CompletedAt)
	assert.Equal(t, "EUR", rollovers[1].Currency)
	assert.NoError(t, mock.ExpectationsWereMet())
}
