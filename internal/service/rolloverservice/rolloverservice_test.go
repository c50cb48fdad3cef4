package rolloverservice

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/wagering/internal/domain"
)

// memRepo keeps rollovers in memory; WithLock serializes like the advisory lock.
type memRepo struct {
	lock    sync.Mutex
	rows    map[int64]*domain.Rollover
	applied map[int64]bool
	nextID  int64
	clock   time.Time
}

func newMemRepo() *memRepo {
	return &memRepo{
		rows:    map[int64]*domain.Rollover{},
		applied: map[int64]bool{},
		clock:   time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
	}
}

func (r *memRepo) WithLock(ctx context.Context, _ int64, _ string, fn func(ctx context.Context) error) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return fn(ctx)
}

func (r *memRepo) MarkWagerApplied(_ context.Context, orderID int64) (bool, error) {
	if r.applied[orderID] {
		return false, nil
	}
	r.applied[orderID] = true
	return true, nil
}

func (r *memRepo) find(userID int64, currency string, status domain.RolloverStatus) []*domain.Rollover {
	var out []*domain.Rollover
	for _, ro := range r.rows {
		if ro.UserID == userID && ro.Currency == currency && ro.Status == status {
			out = append(out, ro)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *memRepo) FindActive(_ context.Context, userID int64, currency string) (*domain.Rollover, error) {
	active := r.find(userID, currency, domain.RolloverActive)
	if len(active) > 1 {
		return nil, errors.New("more than one active rollover")
	}
	if len(active) == 0 {
		return nil, nil
	}
	cp := *active[0]
	return &cp, nil
}

func (r *memRepo) FindOldestPending(_ context.Context, userID int64, currency string) (*domain.Rollover, error) {
	pending := r.find(userID, currency, domain.RolloverPending)
	if len(pending) == 0 {
		return nil, nil
	}
	cp := *pending[0]
	return &cp, nil
}

func (r *memRepo) Create(_ context.Context, ro *domain.Rollover) (bool, error) {
	for _, existing := range r.rows {
		if existing.SourceType == ro.SourceType && existing.RelatedID == ro.RelatedID {
			return false, nil
		}
	}
	r.nextID++
	ro.ID = r.nextID
	ro.CreatedAt = r.clock
	ro.Status = domain.RolloverPending
	cp := *ro
	r.rows[ro.ID] = &cp
	return true, nil
}

func (r *memRepo) Update(_ context.Context, ro *domain.Rollover) error {
	if _, ok := r.rows[ro.ID]; !ok {
		return domain.ErrNotFound
	}
	if ro.Status == domain.RolloverActive {
		for _, other := range r.find(ro.UserID, ro.Currency, domain.RolloverActive) {
			if other.ID != ro.ID {
				return errors.New("unique violation: second active rollover")
			}
		}
	}
	cp := *ro
	r.rows[ro.ID] = &cp
	return nil
}

func (r *memRepo) ListByUser(_ context.Context, userID int64, currency string) ([]domain.Rollover, error) {
	var out []domain.Rollover
	for _, status := range []domain.RolloverStatus{domain.RolloverCompleted, domain.RolloverActive, domain.RolloverPending} {
		for _, ro := range r.find(userID, currency, status) {
			out = append(out, *ro)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// seed queues rollovers directly without activating any of them.
func (r *memRepo) seed(requirements ...int64) {
	for i, req := range requirements {
		r.nextID++
		r.rows[r.nextID] = &domain.Rollover{
			ID:            r.nextID,
			UserID:        1,
			Currency:      "USD",
			SourceType:    domain.RolloverSourceDeposit,
			RelatedID:     fmt.Sprintf("seed-%d", i),
			Amount:        decimal.NewFromInt(req),
			RequiredWager: decimal.NewFromInt(req),
			CurrentWager:  decimal.Zero,
			Status:        domain.RolloverPending,
			CreatedAt:     r.clock.Add(time.Duration(i) * time.Minute),
		}
	}
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestWaterfall_ActivationAndCascade(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	service := New(repo)

	repo.seed(100, 50)
	r1, r2 := int64(1), int64(2)

	require.NoError(t, service.OnDeposit(ctx, 1, "USD", dec(30), domain.RolloverSourceDeposit, "dep-3"))
	assert.Equal(t, domain.RolloverActive, repo.rows[r1].Status)
	assert.Equal(t, domain.RolloverPending, repo.rows[r2].Status)

	res, err := service.OnWagered(ctx, 101, 1, "USD", dec(60))
	require.NoError(t, err)
	assert.Equal(t, "60", repo.rows[r1].CurrentWager.String())
	assert.Equal(t, domain.RolloverActive, repo.rows[r1].Status)
	assert.Empty(t, res.Completed)

	res, err = service.OnWagered(ctx, 102, 1, "USD", dec(60))
	require.NoError(t, err)
	assert.Equal(t, "100", repo.rows[r1].CurrentWager.String())
	assert.Equal(t, domain.RolloverCompleted, repo.rows[r1].Status)
	assert.NotNil(t, repo.rows[r1].CompletedAt)
	assert.Equal(t, domain.RolloverActive, repo.rows[r2].Status)
	assert.Equal(t, "20", repo.rows[r2].CurrentWager.String())
	assert.Equal(t, []int64{r1}, res.Completed)
	assert.True(t, res.Discarded.IsZero())
}

func TestWaterfall_DiscardsExcessWhenQueueExhausted(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	service := New(repo)
	repo.seed(10, 20)

	res, err := service.OnWagered(ctx, 101, 1, "USD", dec(45))
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, res.Completed)
	assert.Equal(t, "30", res.Applied.String())
	assert.Equal(t, "15", res.Discarded.String())

	res, err = service.OnWagered(ctx, 102, 1, "USD", dec(5))
	require.NoError(t, err)
	assert.Equal(t, "5", res.Discarded.String())
	assert.True(t, res.Applied.IsZero())
}

func TestWaterfall_TieBreakByID(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	service := New(repo)

	require.NoError(t, service.OnDeposit(ctx, 1, "USD", dec(10), domain.RolloverSourceDeposit, "a"))
	require.NoError(t, service.OnDeposit(ctx, 1, "USD", dec(10), domain.RolloverSourceBonus, "b"))
	require.NoError(t, service.OnDeposit(ctx, 1, "USD", dec(10), domain.RolloverSourceCashback, "c"))

	_, err := service.OnWagered(ctx, 101, 1, "USD", dec(15))
	require.NoError(t, err)

	assert.Equal(t, domain.RolloverCompleted, repo.rows[1].Status)
	assert.Equal(t, domain.RolloverActive, repo.rows[2].Status)
	assert.Equal(t, domain.RolloverPending, repo.rows[3].Status)
}

func TestOnDeposit_DuplicateGrantIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	service := New(repo)

	require.NoError(t, service.OnDeposit(ctx, 1, "USD", dec(10), domain.RolloverSourceDeposit, "dep-1"))
	require.NoError(t, service.OnDeposit(ctx, 1, "USD", dec(10), domain.RolloverSourceDeposit, "dep-1"))
	assert.Len(t, repo.rows, 1)

	err := service.OnDeposit(ctx, 1, "USD", dec(0), domain.RolloverSourceDeposit, "dep-2")
	assert.ErrorIs(t, err, domain.ErrInvalidEvent)
}

func snapshot(repo *memRepo) []string {
	rows, _ := repo.ListByUser(context.Background(), 1, "USD")
	out := make([]string, 0, len(rows))
	for _, ro := range rows {
		out = append(out, fmt.Sprintf("%d:%s:%s", ro.ID, ro.Status, ro.CurrentWager))
	}
	return out
}

func TestWaterfall_CascadeEqualsSequential(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for round := 0; round < 25; round++ {
		requirements := make([]int64, 2+rnd.Intn(8))
		var total int64
		for i := range requirements {
			requirements[i] = 1 + rnd.Int63n(40)
			total += requirements[i]
		}
		wager := 1 + rnd.Int63n(total+20)

		cascaded := newMemRepo()
		cascaded.seed(requirements...)
		res, err := New(cascaded).OnWagered(context.Background(), 1, 1, "USD", dec(wager))
		require.NoError(t, err)

		sequential := newMemRepo()
		sequential.seed(requirements...)
		seqService := New(sequential)
		discarded := decimal.Zero
		for i := int64(0); i < wager; i++ {
			step, err := seqService.OnWagered(context.Background(), i+1, 1, "USD", dec(1))
			require.NoError(t, err)
			discarded = discarded.Add(step.Discarded)
		}

		assert.Equal(t, snapshot(sequential), snapshot(cascaded), "round %d", round)
		assert.True(t, discarded.Equal(res.Discarded), "round %d", round)
		assert.True(t, res.Applied.Add(res.Discarded).Equal(dec(wager)), "round %d", round)
	}
}

func TestWaterfall_ConcurrentWagersConserveTotal(t *testing.T) {
	repo := newMemRepo()
	service := New(repo)
	repo.seed(100, 100, 100)

	var wg sync.WaitGroup
	results := make(chan WagerResult, 40)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(orderID int64) {
			defer wg.Done()
			res, err := service.OnWagered(context.Background(), orderID, 1, "USD", dec(10))
			assert.NoError(t, err)
			results <- res
		}(int64(i + 1))
	}
	wg.Wait()
	close(results)

	applied, discarded := decimal.Zero, decimal.Zero
	for res := range results {
		applied = applied.Add(res.Applied)
		discarded = discarded.Add(res.Discarded)
	}
	assert.Equal(t, "300", applied.String())
	assert.Equal(t, "100", discarded.String())
	for _, ro := range repo.rows {
		assert.Equal(t, domain.RolloverCompleted, ro.Status)
	}
}

func TestOnWagered_RepoErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)

	tests := []struct {
		name        string
		prepareMock func()
	}{
		{
			name: "Lock failure",
			prepareMock: func() {
				repo.EXPECT().WithLock(gomock.Any(), int64(1), "USD", gomock.Any()).Return(errors.New("lock error"))
			},
		},
		{
			name: "Update failure aborts the cascade",
			prepareMock: func() {
				repo.EXPECT().WithLock(gomock.Any(), int64(1), "USD", gomock.Any()).
					DoAndReturn(func(ctx context.Context, _ int64, _ string, fn func(context.Context) error) error {
						return fn(ctx)
					})
				repo.EXPECT().MarkWagerApplied(gomock.Any(), int64(500)).Return(true, nil)
				repo.EXPECT().FindActive(gomock.Any(), int64(1), "USD").
					Return(&domain.Rollover{ID: 1, RequiredWager: dec(10), CurrentWager: dec(5), Status: domain.RolloverActive}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
		},
		{
			name: "Marking the order fails",
			prepareMock: func() {
				repo.EXPECT().WithLock(gomock.Any(), int64(1), "USD", gomock.Any()).
					DoAndReturn(func(ctx context.Context, _ int64, _ string, fn func(context.Context) error) error {
						return fn(ctx)
					})
				repo.EXPECT().MarkWagerApplied(gomock.Any(), int64(500)).Return(false, errors.New("db error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			_, err := service.OnWagered(context.Background(), 500, 1, "USD", dec(20))
			assert.Error(t, err)
		})
	}
}

func TestOnWagered_NonPositiveIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := New(NewMockRepo(ctrl))

	res, err := service.OnWagered(context.Background(), 500, 1, "USD", dec(0))
	require.NoError(t, err)
	assert.True(t, res.Applied.IsZero())
}

func TestOnWagered_SameOrderAppliedOnce(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	service := New(repo)
	repo.seed(100)

	first, err := service.OnWagered(ctx, 77, 1, "USD", dec(30))
	require.NoError(t, err)
	assert.False(t, first.Duplicate)
	assert.Equal(t, "30", first.Applied.String())

	again, err := service.OnWagered(ctx, 77, 1, "USD", dec(30))
	require.NoError(t, err)
	assert.True(t, again.Duplicate)
	assert.True(t, again.Applied.IsZero())
	assert.True(t, again.Discarded.IsZero())
	assert.Equal(t, "30", repo.rows[1].CurrentWager.String())

	_, err = service.OnWagered(ctx, 78, 1, "USD", dec(30))
	require.NoError(t, err)
	assert.Equal(t, "60", repo.rows[1].CurrentWager.String())
}
