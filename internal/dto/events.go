package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/wagering/internal/domain"
)

type OrderCompletedDTO struct {
	OrderID     int64           `json:"order_id" example:"1001"`
	UserID      int64           `json:"user_id" example:"7"`
	Currency    string          `json:"currency" example:"USD"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"25.5"`
	Payout      decimal.Decimal `json:"payout" swaggertype:"string" example:"10"`
	GameID      string          `json:"game_id" example:"slots-42"`
	BonusTaskID *int64          `json:"bonus_task_id,omitempty" example:"3"`
	Status      string          `json:"status" example:"completed"`
	FinishedAt  time.Time       `json:"finished_at" example:"2025-01-15T10:00:00Z"`
}

func (d OrderCompletedDTO) ToDomain() (domain.Order, error) {
	if d.OrderID == 0 || d.UserID == 0 || d.Currency == "" {
		return domain.Order{}, fmt.Errorf("%w: order_id, user_id and currency are required", domain.ErrInvalidEvent)
	}
	switch d.Status {
	case domain.OrderStatusCompleted, domain.OrderStatusCancelled:
	default:
		return domain.Order{}, fmt.Errorf("%w: order status %q", domain.ErrInvalidEvent, d.Status)
	}
	if d.Amount.IsNegative() || d.Payout.IsNegative() {
		return domain.Order{}, fmt.Errorf("%w: negative amount", domain.ErrInvalidEvent)
	}
	return domain.Order{
		ID:          d.OrderID,
		UserID:      d.UserID,
		Currency:    d.Currency,
		Amount:      d.Amount,
		Payout:      d.Payout,
		GameID:      d.GameID,
		BonusTaskID: d.BonusTaskID,
		Status:      d.Status,
		FinishedAt:  d.FinishedAt.UTC(),
	}, nil
}

type DepositCompletedDTO struct {
	DepositID int64           `json:"deposit_id" example:"55"`
	UserID    int64           `json:"user_id" example:"7"`
	Currency  string          `json:"currency" example:"USD"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
}

func (d DepositCompletedDTO) ToDomain() (domain.Deposit, error) {
	if d.DepositID == 0 || d.UserID == 0 || d.Currency == "" {
		return domain.Deposit{}, fmt.Errorf("%w: deposit_id, user_id and currency are required", domain.ErrInvalidEvent)
	}
	if !d.Amount.IsPositive() {
		return domain.Deposit{}, fmt.Errorf("%w: deposit amount must be positive", domain.ErrInvalidEvent)
	}
	return domain.Deposit{ID: d.DepositID, UserID: d.UserID, Currency: d.Currency, Amount: d.Amount}, nil
}

type VipUpgradedDTO struct {
	UserID   int64 `json:"user_id" example:"7"`
	OldLevel int   `json:"old_level" example:"1"`
	NewLevel int   `json:"new_level" example:"3"`
}

func (d VipUpgradedDTO) ToDomain() (domain.VipUpgrade, error) {
	if d.UserID == 0 || d.NewLevel <= d.OldLevel || d.OldLevel < 0 {
		return domain.VipUpgrade{}, fmt.Errorf("%w: vip upgrade %d -> %d", domain.ErrInvalidEvent, d.OldLevel, d.NewLevel)
	}
	return domain.VipUpgrade{UserID: d.UserID, OldLevel: d.OldLevel, NewLevel: d.NewLevel}, nil
}

type AcceptedResponseDTO struct {
	Message string `json:"message" example:"accepted"`
}
