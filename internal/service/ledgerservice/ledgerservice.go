package ledgerservice

//go:generate mockgen -destination=mock_ledgerservice.go -package=ledgerservice . Repo,Notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/metrics"
)

type Repo interface {
	GetBalance(ctx context.Context, userID int64, currency string) (*domain.Balance, error)
	CreateBalance(ctx context.Context, userID int64, currency string) (*domain.Balance, error)
	ApplyVersioned(ctx context.Context, next *domain.Balance, expectedVersion int64, txn *domain.Transaction) (*domain.Balance, *domain.Transaction, error)
	FindTransaction(ctx context.Context, kind domain.TransactionType, relatedEntityID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID int64, currency string, limit int) ([]domain.Transaction, error)
}

type Notifier interface {
	BalanceChanged(ctx context.Context, change domain.BalanceChange) error
}

const (
	baseBackoff = 10 * time.Millisecond
	maxBackoff  = 500 * time.Millisecond
)

type Service struct {
	repo     Repo
	notifier Notifier
	attempts int
	backoff  func() retry.Backoff
}

func New(repo Repo, notifier Notifier, attempts int) *Service {
	if attempts < 1 {
		attempts = 1
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		attempts: attempts,
		backoff: func() retry.Backoff {
			b := retry.NewExponential(baseBackoff)
			b = retry.WithJitterPercent(20, b)
			b = retry.WithCappedDuration(maxBackoff, b)
			return retry.WithMaxRetries(uint64(attempts-1), b)
		},
	}
}

// Apply mutates the balance for req exactly once per (type, related entity).
// A repeated request returns the stored transaction together with domain.ErrDuplicateEvent.
func (s *Service) Apply(ctx context.Context, req domain.LedgerRequest) (*domain.Balance, *domain.Transaction, error) {
	if err := validate(req); err != nil {
		return nil, nil, err
	}

	existing, err := s.repo.FindTransaction(ctx, req.Type, req.RelatedEntityID)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return s.duplicate(ctx, req, existing)
	}

	var (
		balance *domain.Balance
		txn     *domain.Transaction
	)
	err = retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		b, t, err := s.applyOnce(ctx, req)
		if errors.Is(err, domain.ErrVersionConflict) {
			metrics.LedgerConflicts.Inc()
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}
		balance, txn = b, t
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrVersionConflict):
		metrics.LedgerApplies.WithLabelValues(string(req.Type), "contention").Inc()
		zap.L().Warn("ledger apply gave up after version conflicts",
			zap.Int64("user_id", req.UserID),
			zap.String("currency", req.Currency),
			zap.Int("attempts", s.attempts),
		)
		return nil, nil, fmt.Errorf("%w: %d attempts", domain.ErrContention, s.attempts)
	case errors.Is(err, domain.ErrDuplicateEvent):
		// lost the insert race against a concurrent delivery of the same event
		stored, findErr := s.repo.FindTransaction(ctx, req.Type, req.RelatedEntityID)
		if findErr != nil {
			return nil, nil, findErr
		}
		return s.duplicate(ctx, req, stored)
	case errors.Is(err, domain.ErrInsufficientBalance):
		metrics.LedgerApplies.WithLabelValues(string(req.Type), "insufficient").Inc()
		return nil, nil, err
	default:
		metrics.LedgerApplies.WithLabelValues(string(req.Type), "error").Inc()
		zap.L().Error("ledger apply failed",
			zap.Int64("user_id", req.UserID),
			zap.String("currency", req.Currency),
			zap.String("related_entity_id", req.RelatedEntityID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	metrics.LedgerApplies.WithLabelValues(string(req.Type), "applied").Inc()
	s.notify(ctx, req, balance)
	return balance, txn, nil
}

func (s *Service) applyOnce(ctx context.Context, req domain.LedgerRequest) (*domain.Balance, *domain.Transaction, error) {
	availableDelta, frozenDelta := domain.BucketDeltas(req.Type, req.Amount)

	balance, err := s.repo.GetBalance(ctx, req.UserID, req.Currency)
	if err != nil {
		return nil, nil, err
	}
	if balance == nil {
		if availableDelta.IsNegative() || frozenDelta.IsNegative() {
			return nil, nil, domain.ErrInsufficientBalance
		}
		if balance, err = s.repo.CreateBalance(ctx, req.UserID, req.Currency); err != nil {
			return nil, nil, err
		}
	}

	next := *balance
	next.Available = balance.Available.Add(availableDelta)
	next.Frozen = balance.Frozen.Add(frozenDelta)
	if next.Available.IsNegative() || next.Frozen.IsNegative() {
		return nil, nil, domain.ErrInsufficientBalance
	}

	txn := &domain.Transaction{
		UserID:          req.UserID,
		Currency:        req.Currency,
		Amount:          req.Amount,
		Type:            req.Type,
		Status:          domain.TransactionStatusCompleted,
		RelatedEntityID: req.RelatedEntityID,
		Notes:           req.Notes,
		TransactionTime: time.Now().UTC(),
	}
	return s.repo.ApplyVersioned(ctx, &next, balance.Version, txn)
}

func (s *Service) duplicate(ctx context.Context, req domain.LedgerRequest, existing *domain.Transaction) (*domain.Balance, *domain.Transaction, error) {
	metrics.LedgerApplies.WithLabelValues(string(req.Type), "duplicate").Inc()
	zap.L().Info("duplicate ledger request ignored",
		zap.String("type", string(req.Type)),
		zap.String("related_entity_id", req.RelatedEntityID),
	)
	balance, err := s.repo.GetBalance(ctx, req.UserID, req.Currency)
	if err != nil {
		return nil, nil, err
	}
	return balance, existing, domain.ErrDuplicateEvent
}

func (s *Service) notify(ctx context.Context, req domain.LedgerRequest, balance *domain.Balance) {
	availableDelta, frozenDelta := domain.BucketDeltas(req.Type, req.Amount)
	changes := make([]domain.BalanceChange, 0, 2)
	if !availableDelta.IsZero() {
		changes = append(changes, change(req, balance, domain.BucketAvailable, balance.Available, availableDelta))
	}
	if !frozenDelta.IsZero() {
		changes = append(changes, change(req, balance, domain.BucketFrozen, balance.Frozen, frozenDelta))
	}
	for _, c := range changes {
		if err := s.notifier.BalanceChanged(ctx, c); err != nil {
			zap.L().Error("failed to publish balance change",
				zap.Int64("user_id", c.UserID),
				zap.String("bucket", string(c.Bucket)),
				zap.Error(err),
			)
		}
	}
}

func change(req domain.LedgerRequest, balance *domain.Balance, bucket domain.BalanceBucket, value, delta decimal.Decimal) domain.BalanceChange {
	return domain.BalanceChange{
		UserID:          balance.UserID,
		Currency:        balance.Currency,
		Bucket:          bucket,
		Value:           value,
		Delta:           delta,
		Type:            req.Type,
		RelatedEntityID: req.RelatedEntityID,
	}
}

func validate(req domain.LedgerRequest) error {
	switch {
	case req.UserID <= 0:
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidEvent)
	case req.Currency == "":
		return fmt.Errorf("%w: currency is required", domain.ErrInvalidEvent)
	case req.RelatedEntityID == "":
		return fmt.Errorf("%w: related entity id is required", domain.ErrInvalidEvent)
	case req.Amount.IsZero():
		return fmt.Errorf("%w: amount must be non-zero", domain.ErrInvalidEvent)
	}
	return nil
}

func (s *Service) GetBalance(ctx context.Context, userID int64, currency string) (*domain.Balance, error) {
	balance, err := s.repo.GetBalance(ctx, userID, currency)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, domain.ErrNotFound
	}
	return balance, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID int64, currency string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.repo.ListTransactions(ctx, userID, currency, limit)
}
