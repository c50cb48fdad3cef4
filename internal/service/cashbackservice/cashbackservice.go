package cashbackservice

//go:generate mockgen -destination=mock_cashbackservice.go -package=cashbackservice . Repo,Ledger,Rollovers,Notifier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/buffer"
	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/metrics"
)

type Repo interface {
	MergeBufferEntry(ctx context.Context, entry domain.BufferEntry) (bool, error)
	Get(ctx context.Context, id int64) (*domain.WeeklyCashback, error)
	FindByPeriod(ctx context.Context, period int, status domain.CashbackStatus) ([]domain.WeeklyCashback, error)
	ListClaimable(ctx context.Context) ([]domain.WeeklyCashback, error)
	Finalize(ctx context.Context, id int64, rate, amount decimal.Decimal) (bool, error)
	MarkClaimed(ctx context.Context, id int64, claimedAt time.Time) (bool, error)
	ExpireBefore(ctx context.Context, period int) (int64, error)
	PruneMergesBefore(ctx context.Context, period int) (int64, error)
}

type Ledger interface {
	Apply(ctx context.Context, req domain.LedgerRequest) (*domain.Balance, *domain.Transaction, error)
}

type Rollovers interface {
	OnDeposit(ctx context.Context, userID int64, currency string, amount decimal.Decimal, source domain.RolloverSource, relatedID string) error
}

type Notifier interface {
	CashbackClaimable(ctx context.Context, cashback domain.WeeklyCashback) error
}

type FlushResult struct {
	Drained    int
	Merged     int
	Duplicates int
	Dropped    int
	Failed     int
}

type Service struct {
	repo       Repo
	buffer     buffer.Buffer
	ledger     Ledger
	rollovers  Rollovers
	notifier   Notifier
	policy     *Policy
	claimWeeks int
	now        func() time.Time

	flushMu sync.Mutex
}

func New(repo Repo, buf buffer.Buffer, ledger Ledger, rollovers Rollovers, notifier Notifier, policy *Policy, claimWeeks int) *Service {
	if claimWeeks < 1 {
		claimWeeks = 1
	}
	return &Service{
		repo:       repo,
		buffer:     buf,
		ledger:     ledger,
		rollovers:  rollovers,
		notifier:   notifier,
		policy:     policy,
		claimWeeks: claimWeeks,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// AddToBuffer records an eligible order's wager and payout in the buffer.
func (s *Service) AddToBuffer(ctx context.Context, order domain.Order) error {
	if !s.policy.Enabled() || !s.policy.Eligible(order) {
		return nil
	}
	finishedAt := order.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = s.now()
	}
	key := domain.CashbackKey{UserID: order.UserID, Period: domain.PeriodOf(finishedAt), Currency: order.Currency}
	return s.buffer.Add(ctx, key, order.Amount, order.Payout)
}

// FlushBuffer merges drained buffer entries into the weekly aggregates.
// Entries that fail to merge stay pending and come back on the next flush.
func (s *Service) FlushBuffer(ctx context.Context) (FlushResult, error) {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	var result FlushResult
	entries, err := s.buffer.Drain(ctx)
	if err != nil {
		zap.L().Error("failed to drain cashback buffer", zap.Error(err))
		return result, err
	}
	result.Drained = len(entries)

	acked := make([]string, 0, len(entries))
	for _, entry := range entries {
		merged, err := s.repo.MergeBufferEntry(ctx, entry)
		switch {
		case err == nil && merged:
			result.Merged++
		case err == nil:
			result.Duplicates++
		case errors.Is(err, domain.ErrAggregateClosed):
			result.Dropped++
			zap.L().Warn("cashback delta for finalized period dropped",
				zap.Int64("user_id", entry.Key.UserID),
				zap.Int("period", entry.Key.Period),
				zap.String("currency", entry.Key.Currency),
				zap.String("wager", entry.Wager.String()),
			)
		default:
			result.Failed++
			continue
		}
		acked = append(acked, entry.Token)
	}

	if err := s.buffer.Ack(ctx, acked...); err != nil {
		zap.L().Error("failed to acknowledge flushed cashback entries", zap.Int("count", len(acked)), zap.Error(err))
		return result, err
	}

	metrics.CashbackBufferFlushed.WithLabelValues("merged").Add(float64(result.Merged))
	metrics.CashbackBufferFlushed.WithLabelValues("duplicate").Add(float64(result.Duplicates))
	metrics.CashbackBufferFlushed.WithLabelValues("dropped").Add(float64(result.Dropped))
	metrics.CashbackBufferFlushed.WithLabelValues("failed").Add(float64(result.Failed))

	if result.Failed > 0 {
		return result, fmt.Errorf("%d of %d cashback entries not merged", result.Failed, result.Drained)
	}
	return result, nil
}

// CalculateAndFinalizeForPeriod computes rate and amount for every active
// aggregate of a closed period and makes it claimable. Re-runs skip records
// that are already claimable.
func (s *Service) CalculateAndFinalizeForPeriod(ctx context.Context, period int) (int, error) {
	if period >= domain.PeriodOf(s.now()) {
		return 0, fmt.Errorf("%w: %d", domain.ErrPeriodNotClosed, period)
	}
	if !s.policy.Enabled() {
		zap.L().Warn("cashback policy is not configured, finalization skipped", zap.Int("period", period))
		return 0, domain.ErrConfigurationMissing
	}

	records, err := s.repo.FindByPeriod(ctx, period, domain.CashbackActive)
	if err != nil {
		return 0, err
	}

	finalized := 0
	for _, record := range records {
		rate, amount := s.policy.Calculate(record.Wager, record.Payout)
		ok, err := s.repo.Finalize(ctx, record.ID, rate, amount)
		if err != nil {
			return finalized, err
		}
		if ok {
			finalized++
		}
	}
	zap.L().Info("cashback period finalized", zap.Int("period", period), zap.Int("records", finalized))
	return finalized, nil
}

// RemindUnclaimed notifies every user holding a claimable cashback.
func (s *Service) RemindUnclaimed(ctx context.Context) (int, error) {
	records, err := s.repo.ListClaimable(ctx)
	if err != nil {
		return 0, err
	}

	reminded := 0
	for _, record := range records {
		if !record.Amount.IsPositive() {
			continue
		}
		if err := s.notifier.CashbackClaimable(ctx, record); err != nil {
			zap.L().Error("failed to send cashback reminder", zap.Int64("user_id", record.UserID), zap.Int64("cashback_id", record.ID), zap.Error(err))
			continue
		}
		reminded++
	}
	return reminded, nil
}

// ExpireUnclaimed expires claimable records older than the claim window and
// prunes the buffer merge log of the same periods.
func (s *Service) ExpireUnclaimed(ctx context.Context, now time.Time) (int64, error) {
	cutoff := domain.PeriodsBefore(now, s.claimWeeks)
	count, err := s.repo.ExpireBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		zap.L().Info("unclaimed cashbacks expired", zap.Int64("count", count))
	}

	pruned, err := s.repo.PruneMergesBefore(ctx, cutoff)
	if err != nil {
		return count, err
	}
	if pruned > 0 {
		zap.L().Info("buffer merge log pruned", zap.Int64("rows", pruned), zap.Int("before_period", cutoff))
	}
	return count, nil
}

// Claim credits a claimable cashback to the user's balance and opens a
// rollover for it. Claiming twice returns the claimed record.
func (s *Service) Claim(ctx context.Context, userID, cashbackID int64) (*domain.WeeklyCashback, error) {
	record, err := s.repo.Get(ctx, cashbackID)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserID != userID {
		return nil, domain.ErrNotFound
	}
	switch record.Status {
	case domain.CashbackClaimed:
		return record, nil
	case domain.CashbackClaimable:
	default:
		return nil, fmt.Errorf("%w: status %s", domain.ErrNotClaimable, record.Status)
	}

	relatedID := fmt.Sprintf("cashback:%d", record.ID)
	if record.Amount.IsPositive() {
		_, _, err := s.ledger.Apply(ctx, domain.LedgerRequest{
			UserID:          record.UserID,
			Currency:        record.Currency,
			Amount:          record.Amount,
			Type:            domain.TransactionCashback,
			RelatedEntityID: relatedID,
			Notes:           fmt.Sprintf("weekly cashback %d", record.Period),
		})
		if err != nil && !errors.Is(err, domain.ErrDuplicateEvent) {
			return nil, err
		}
		if err := s.rollovers.OnDeposit(ctx, record.UserID, record.Currency, record.Amount, domain.RolloverSourceCashback, relatedID); err != nil {
			return nil, err
		}
	}

	claimedAt := s.now()
	ok, err := s.repo.MarkClaimed(ctx, record.ID, claimedAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		// a concurrent claim or expiry won the update
		return s.reread(ctx, record.ID)
	}
	record.Status = domain.CashbackClaimed
	record.ClaimedAt = &claimedAt
	return record, nil
}

func (s *Service) reread(ctx context.Context, id int64) (*domain.WeeklyCashback, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	if record.Status != domain.CashbackClaimed {
		return nil, fmt.Errorf("%w: status %s", domain.ErrNotClaimable, record.Status)
	}
	return record, nil
}
