package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/wagering/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_CountPendingByBonusTask(t *testing.T) {
	repo, mock := NewMock(t)
	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    int64
	}{
		{
			name: "One pending order",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders WHERE bonus_task_id = $1 AND status = 'pending'")).
					WithArgs(int64(9)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
			},
			result: 1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders")).
					WithArgs(int64(9)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			count, err := repo.CountPendingByBonusTask(context.Background(), 9)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SaveSettled(t *testing.T) {
	repo, mock := NewMock(t)
	taskID := int64(3)
	order := &domain.Order{
		ID: 11, UserID: 1, Currency: "USD", Amount: decimal.NewFromInt(10), Payout: decimal.NewFromInt(4),
		GameID: "slots", BonusTaskID: &taskID, Status: domain.OrderStatusCompleted, FinishedAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs(int64(11), int64(1), "USD", order.Amount, order.Payout, "slots", &taskID, "completed", order.FinishedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.SaveSettled(context.Background(), order))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.SaveSettled(context.Background(), order))

	assert.NoError(t, mock.ExpectationsWereMet())
}
