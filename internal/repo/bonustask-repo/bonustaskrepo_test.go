package bonustaskrepo

import (
	"context"
	"errors"
	"regexp"
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

var columns = []string{"id", "user_id", "currency", "cap_bonus", "base_bonus", "last_bonus", "need_wager", "wager", "status", "expired_at", "completed_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func taskRow(id int64, status domain.BonusTaskStatus, lastBonus string, expiredAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(columns).AddRow(
		id, int64(1), "USD", decimal.NewFromInt(100), decimal.NewFromInt(20), decimal.RequireFromString(lastBonus),
		decimal.NewFromInt(200), decimal.NewFromInt(50), status, expiredAt, (*time.Time)(nil),
	)
}

func TestRepository_WithUserLock(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})

	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("bonus_task:1").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))

	sentinel := errors.New("inner")
	err := repo.WithUserLock(context.Background(), 1, func(ctx context.Context) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get(t *testing.T) {
	repo, mock, _ := NewMock(t)
	expiredAt := time.Now().Add(time.Hour)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Task exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bonus_tasks WHERE id = $1")).
					WithArgs(int64(5)).
					WillReturnRows(taskRow(5, domain.BonusTaskActive, "0.05", expiredAt))
			},
			found: true,
		},
		{
			name: "Task missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bonus_tasks WHERE id = $1")).
					WithArgs(int64(5)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bonus_tasks WHERE id = $1")).
					WithArgs(int64(5)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			task, err := repo.Get(context.Background(), 5)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				require.NotNil(t, task)
				assert.Equal(t, "0.05", task.LastBonus.String())
				assert.True(t, task.Open())
			} else {
				assert.Nil(t, task)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindActiveByUser(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND currency = $2 AND status = 'active'")).
		WithArgs(int64(1), "USD").
		WillReturnRows(taskRow(2, domain.BonusTaskActive, "1", time.Now()))

	task, err := repo.FindActiveByUser(context.Background(), 1, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(2), task.ID)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND currency = $2 AND status = 'active'")).
		WithArgs(int64(1), "EUR").
		WillReturnError(pgx.ErrNoRows)

	task, err = repo.FindActiveByUser(context.Background(), 1, "EUR")
	require.NoError(t, err)
	assert.Nil(t, task)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkWagerApplied(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name     string
		affected int64
		dbErr    error
		applied  bool
	}{
		{name: "First application", affected: 1, applied: true},
		{name: "Order already applied", affected: 0},
		{name: "Database error", dbErr: errors.New("database error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := mock.ExpectExec(regexp.QuoteMeta("VALUES ($1, 'bonus_task')")).WithArgs(int64(1001))
			if tt.dbErr != nil {
				exec.WillReturnError(tt.dbErr)
			} else {
				exec.WillReturnResult(pgxmock.NewResult("INSERT", tt.affected))
			}

			applied, err := repo.MarkWagerApplied(context.Background(), 1001)
			if tt.dbErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.applied, applied)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock, _ := NewMock(t)
	task := &domain.BonusTask{ID: 2, Wager: decimal.NewFromInt(200), Status: domain.BonusTaskCompleted}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bonus_tasks SET wager = $1, status = $2, completed_at = $3 WHERE id = $4")).
		WithArgs(task.Wager, domain.BonusTaskCompleted, (*time.Time)(nil), int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(context.Background(), task))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bonus_tasks")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(context.Background(), task), domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExpireOverdue(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'expired' WHERE status IN ('pending', 'active') AND expired_at <= $1")).
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	count, err := repo.ExpireOverdue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'expired'")).
		WithArgs(now).
		WillReturnError(errors.New("database error"))
	_, err = repo.ExpireOverdue(context.Background(), now)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
