package vipservice

//go:generate mockgen -destination=mock_vipservice.go -package=vipservice . Ledger,Rollovers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/pkg/clients"
)

type Ledger interface {
	Apply(ctx context.Context, req domain.LedgerRequest) (*domain.Balance, *domain.Transaction, error)
}

type Rollovers interface {
	OnDeposit(ctx context.Context, userID int64, currency string, amount decimal.Decimal, source domain.RolloverSource, relatedID string) error
}

type ExpRequest struct {
	UserID   int64           `json:"user_id"`
	OrderID  int64           `json:"order_id"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

type Service struct {
	url       string
	client    clients.HTTPClientI
	ledger    Ledger
	rollovers Rollovers
	rewards   map[int]decimal.Decimal
	currency  string
}

func New(url string, client clients.HTTPClientI, ledger Ledger, rollovers Rollovers, rewards map[int]decimal.Decimal, currency string) *Service {
	return &Service{
		url:       url,
		client:    client,
		ledger:    ledger,
		rollovers: rollovers,
		rewards:   rewards,
		currency:  currency,
	}
}

// ParseRewards reads level:amount pairs.
func ParseRewards(raw map[string]string) (map[int]decimal.Decimal, error) {
	rewards := make(map[int]decimal.Decimal, len(raw))
	for level, amount := range raw {
		l, err := strconv.Atoi(level)
		if err != nil {
			return nil, fmt.Errorf("vip reward level %q: %w", level, err)
		}
		a, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("vip reward amount %q: %w", amount, err)
		}
		if !a.IsPositive() {
			return nil, fmt.Errorf("vip reward for level %d must be positive", l)
		}
		rewards[l] = a
	}
	return rewards, nil
}

// AccrueExp reports a settled wager to the VIP system.
func (s *Service) AccrueExp(ctx context.Context, order domain.Order) error {
	if order.Status != domain.OrderStatusCompleted || !order.Amount.IsPositive() {
		return nil
	}

	body, err := json.Marshal(ExpRequest{UserID: order.UserID, OrderID: order.ID, Currency: order.Currency, Amount: order.Amount})
	if err != nil {
		return fmt.Errorf("failed to marshal exp request: %w", err)
	}

	statusCode, _, err := s.client.Post(ctx, s.url+"/api/vip/exp", nil, body)
	if err != nil {
		return fmt.Errorf("failed to accrue vip exp for order %d: %w", order.ID, err)
	}
	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		return nil
	case statusCode == http.StatusConflict:
		return domain.ErrDuplicateEvent
	case statusCode == http.StatusBadRequest || statusCode == http.StatusNotFound:
		return fmt.Errorf("%w: vip system rejected order %d with status %d", domain.ErrInvalidEvent, order.ID, statusCode)
	default:
		return fmt.Errorf("vip system responded with status %d", statusCode)
	}
}

// OnLevelUpgraded credits the reward of every level passed by the upgrade
// and opens a rollover for it. Rewards are keyed per level, so redelivered
// upgrades do not pay twice.
func (s *Service) OnLevelUpgraded(ctx context.Context, upgrade domain.VipUpgrade) error {
	if upgrade.UserID == 0 || upgrade.NewLevel <= upgrade.OldLevel {
		return fmt.Errorf("%w: vip upgrade %d -> %d", domain.ErrInvalidEvent, upgrade.OldLevel, upgrade.NewLevel)
	}
	if len(s.rewards) == 0 {
		zap.L().Warn("vip rewards are not configured", zap.Int64("user_id", upgrade.UserID))
		return domain.ErrConfigurationMissing
	}

	levels := make([]int, 0, upgrade.NewLevel-upgrade.OldLevel)
	for level := upgrade.OldLevel + 1; level <= upgrade.NewLevel; level++ {
		if _, ok := s.rewards[level]; ok {
			levels = append(levels, level)
		}
	}
	sort.Ints(levels)

	for _, level := range levels {
		amount := s.rewards[level]
		relatedID := fmt.Sprintf("vip:%d:%d", upgrade.UserID, level)

		_, _, err := s.ledger.Apply(ctx, domain.LedgerRequest{
			UserID:          upgrade.UserID,
			Currency:        s.currency,
			Amount:          amount,
			Type:            domain.TransactionVipReward,
			RelatedEntityID: relatedID,
			Notes:           fmt.Sprintf("vip level %d reward", level),
		})
		if err != nil && !errors.Is(err, domain.ErrDuplicateEvent) {
			return err
		}
		if err := s.rollovers.OnDeposit(ctx, upgrade.UserID, s.currency, amount, domain.RolloverSourceVipReward, relatedID); err != nil {
			return err
		}
		zap.L().Info("vip reward granted", zap.Int64("user_id", upgrade.UserID), zap.Int("level", level), zap.String("amount", amount.String()))
	}
	return nil
}
