package bonustaskservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/wagering/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockOrderRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	orderRepo := NewMockOrderRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	service := New(repo, orderRepo, notifier)
	return service, repo, orderRepo, notifier
}

func runLocked(repo *MockRepo, userID int64) {
	repo.EXPECT().WithUserLock(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestOnOrderSettled_Depletion(t *testing.T) {
	service, repo, orderRepo, _ := NewMock(t)
	taskID := int64(7)
	order := domain.Order{ID: 100, UserID: 1, BonusTaskID: &taskID, Status: domain.OrderStatusCompleted}

	task := func(status domain.BonusTaskStatus, lastBonus string) *domain.BonusTask {
		return &domain.BonusTask{ID: taskID, UserID: 1, LastBonus: decimal.RequireFromString(lastBonus), Status: status}
	}

	tests := []struct {
		name          string
		order         domain.Order
		prepareMock   func()
		expectedError bool
	}{
		{
			name:  "Depleted when no bound order is pending",
			order: order,
			prepareMock: func() {
				runLocked(repo, 1)
				orderRepo.EXPECT().SaveSettled(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().Get(gomock.Any(), taskID).Return(task(domain.BonusTaskActive, "0.05"), nil)
				orderRepo.EXPECT().CountPendingByBonusTask(gomock.Any(), taskID).Return(int64(0), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task *domain.BonusTask) error {
						assert.Equal(t, domain.BonusTaskDepleted, task.Status)
						return nil
					})
			},
		},
		{
			name:  "Not depleted while a bound order is pending",
			order: order,
			prepareMock: func() {
				runLocked(repo, 1)
				orderRepo.EXPECT().SaveSettled(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().Get(gomock.Any(), taskID).Return(task(domain.BonusTaskActive, "0.05"), nil)
				orderRepo.EXPECT().CountPendingByBonusTask(gomock.Any(), taskID).Return(int64(1), nil)
			},
		},
		{
			name:  "Remaining bonus at threshold is kept",
			order: order,
			prepareMock: func() {
				runLocked(repo, 1)
				orderRepo.EXPECT().SaveSettled(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().Get(gomock.Any(), taskID).Return(task(domain.BonusTaskPending, "0.1"), nil)
			},
		},
		{
			name:  "Closed task is left alone",
			order: order,
			prepareMock: func() {
				runLocked(repo, 1)
				orderRepo.EXPECT().SaveSettled(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().Get(gomock.Any(), taskID).Return(task(domain.BonusTaskCompleted, "0"), nil)
			},
		},
		{
			name:  "Missing task is a no-op",
			order: order,
			prepareMock: func() {
				runLocked(repo, 1)
				orderRepo.EXPECT().SaveSettled(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().Get(gomock.Any(), taskID).Return(nil, nil)
			},
		},
		{
			name:  "Order without task is ignored",
			order: domain.Order{ID: 101, UserID: 1},
		},
		{
			name:  "Count failure is surfaced",
			order: order,
			prepareMock: func() {
				runLocked(repo, 1)
				orderRepo.EXPECT().SaveSettled(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().Get(gomock.Any(), taskID).Return(task(domain.BonusTaskActive, "0"), nil)
				orderRepo.EXPECT().CountPendingByBonusTask(gomock.Any(), taskID).Return(int64(0), errors.New("db error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			err := service.OnOrderSettled(context.Background(), tt.order)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOnWagered(t *testing.T) {
	service, repo, _, notifier := NewMock(t)
	fixed := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	activeTask := func() *domain.BonusTask {
		return &domain.BonusTask{ID: 1, Currency: "USD", NeedWager: decimal.NewFromInt(100), Wager: decimal.NewFromInt(10), Status: domain.BonusTaskActive}
	}

	tests := []struct {
		name        string
		orderID     int64
		amount      decimal.Decimal
		prepareMock func()
		wantErr     bool
	}{
		{
			name:    "Progress below target",
			orderID: 11,
			amount:  decimal.NewFromInt(30),
			prepareMock: func() {
				runLocked(repo, 1)
				repo.EXPECT().MarkWagerApplied(gomock.Any(), int64(11)).Return(true, nil)
				repo.EXPECT().FindActiveByUser(gomock.Any(), int64(1), "USD").Return(activeTask(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task *domain.BonusTask) error {
						assert.Equal(t, "40", task.Wager.String())
						assert.Equal(t, domain.BonusTaskActive, task.Status)
						return nil
					})
			},
		},
		{
			name:    "Completion clamps wager and notifies",
			orderID: 12,
			amount:  decimal.NewFromInt(95),
			prepareMock: func() {
				runLocked(repo, 1)
				repo.EXPECT().MarkWagerApplied(gomock.Any(), int64(12)).Return(true, nil)
				repo.EXPECT().FindActiveByUser(gomock.Any(), int64(1), "USD").Return(activeTask(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				notifier.EXPECT().BonusTaskCompleted(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task domain.BonusTask) error {
						assert.Equal(t, "100", task.Wager.String())
						assert.Equal(t, domain.BonusTaskCompleted, task.Status)
						assert.Equal(t, fixed, *task.CompletedAt)
						return nil
					})
			},
		},
		{
			name:    "No active task in the order currency",
			orderID: 13,
			amount:  decimal.NewFromInt(5),
			prepareMock: func() {
				runLocked(repo, 1)
				repo.EXPECT().MarkWagerApplied(gomock.Any(), int64(13)).Return(true, nil)
				repo.EXPECT().FindActiveByUser(gomock.Any(), int64(1), "USD").Return(nil, nil)
			},
		},
		{
			name:    "Order already credited",
			orderID: 11,
			amount:  decimal.NewFromInt(30),
			prepareMock: func() {
				runLocked(repo, 1)
				repo.EXPECT().MarkWagerApplied(gomock.Any(), int64(11)).Return(false, nil)
			},
		},
		{
			name:    "Marking fails",
			orderID: 14,
			amount:  decimal.NewFromInt(30),
			prepareMock: func() {
				runLocked(repo, 1)
				repo.EXPECT().MarkWagerApplied(gomock.Any(), int64(14)).Return(false, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name:        "Non-positive amount",
			orderID:     15,
			amount:      decimal.Zero,
			prepareMock: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.OnWagered(context.Background(), tt.orderID, 1, "USD", tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// creditRepo keeps one task and the applied orders in memory.
type creditRepo struct {
	*MockRepo
	task    domain.BonusTask
	applied map[int64]bool
}

func (r *creditRepo) WithUserLock(ctx context.Context, _ int64, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (r *creditRepo) MarkWagerApplied(_ context.Context, orderID int64) (bool, error) {
	if r.applied[orderID] {
		return false, nil
	}
	r.applied[orderID] = true
	return true, nil
}

func (r *creditRepo) FindActiveByUser(_ context.Context, _ int64, currency string) (*domain.BonusTask, error) {
	if r.task.Status != domain.BonusTaskActive || r.task.Currency != currency {
		return nil, nil
	}
	cp := r.task
	return &cp, nil
}

func (r *creditRepo) Update(_ context.Context, t *domain.BonusTask) error {
	r.task = *t
	return nil
}

func TestOnWagered_SameOrderCreditedOnce(t *testing.T) {
	repo := &creditRepo{
		task:    domain.BonusTask{ID: 1, UserID: 1, Currency: "USD", NeedWager: decimal.NewFromInt(100), Wager: decimal.Zero, Status: domain.BonusTaskActive},
		applied: map[int64]bool{},
	}
	service := New(repo, nil, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.NoError(t, service.OnWagered(ctx, 501, 1, "USD", decimal.NewFromInt(20)))
	}
	assert.Equal(t, "20", repo.task.Wager.String())

	assert.NoError(t, service.OnWagered(ctx, 502, 1, "EUR", decimal.NewFromInt(20)))
	assert.Equal(t, "20", repo.task.Wager.String())

	assert.NoError(t, service.OnWagered(ctx, 503, 1, "USD", decimal.NewFromInt(20)))
	assert.Equal(t, "40", repo.task.Wager.String())
}

func TestExpireOverdue(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	now := time.Now()

	repo.EXPECT().ExpireOverdue(gomock.Any(), now).Return(int64(2), nil)
	count, err := service.ExpireOverdue(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	repo.EXPECT().ExpireOverdue(gomock.Any(), now).Return(int64(0), nil)
	count, err = service.ExpireOverdue(context.Background(), now)
	assert.NoError(t, err)
	assert.Zero(t, count)
}
