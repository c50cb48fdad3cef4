package dto

import (
	"time"

	"github.com/GlebRadaev/wagering/internal/domain"
)

type BalanceResponseDTO struct {
	UserID    int64     `json:"user_id" example:"7"`
	Currency  string    `json:"currency" example:"USD"`
	Available string    `json:"available" example:"500.5"`
	Frozen    string    `json:"frozen" example:"42"`
	Version   int64     `json:"version" example:"12"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-01-15T10:00:00Z"`
}

func NewBalanceResponse(b domain.Balance) BalanceResponseDTO {
	return BalanceResponseDTO{
		UserID:    b.UserID,
		Currency:  b.Currency,
		Available: b.Available.String(),
		Frozen:    b.Frozen.String(),
		Version:   b.Version,
		UpdatedAt: b.UpdatedAt,
	}
}

type TransactionResponseDTO struct {
	ID              int64     `json:"id" example:"91"`
	Currency        string    `json:"currency" example:"USD"`
	Amount          string    `json:"amount" example:"-10"`
	Type            string    `json:"type" example:"bet"`
	Status          string    `json:"status" example:"completed"`
	RelatedEntityID string    `json:"related_entity_id" example:"order:1001"`
	Notes           string    `json:"notes,omitempty"`
	TransactionTime time.Time `json:"transaction_time" example:"2025-01-15T10:00:00Z"`
}

func NewTransactionResponse(t domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:              t.ID,
		Currency:        t.Currency,
		Amount:          t.Amount.String(),
		Type:            string(t.Type),
		Status:          t.Status,
		RelatedEntityID: t.RelatedEntityID,
		Notes:           t.Notes,
		TransactionTime: t.TransactionTime,
	}
}

type RolloverResponseDTO struct {
	ID            int64      `json:"id" example:"4"`
	Currency      string     `json:"currency" example:"USD"`
	SourceType    string     `json:"source_type" example:"deposit"`
	RelatedID     string     `json:"related_id" example:"deposit:55"`
	Amount        string     `json:"amount" example:"100"`
	RequiredWager string     `json:"required_wager" example:"100"`
	CurrentWager  string     `json:"current_wager" example:"60"`
	Status        string     `json:"status" example:"active"`
	CreatedAt     time.Time  `json:"created_at" example:"2025-01-15T10:00:00Z"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func NewRolloverResponse(r domain.Rollover) RolloverResponseDTO {
	return RolloverResponseDTO{
		ID:            r.ID,
		Currency:      r.Currency,
		SourceType:    string(r.SourceType),
		RelatedID:     r.RelatedID,
		Amount:        r.Amount.String(),
		RequiredWager: r.RequiredWager.String(),
		CurrentWager:  r.CurrentWager.String(),
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		CompletedAt:   r.CompletedAt,
	}
}

type CashbackResponseDTO struct {
	ID        int64      `json:"id" example:"9"`
	Period    int        `json:"period" example:"202502"`
	Currency  string     `json:"currency" example:"USD"`
	Wager     string     `json:"wager" example:"100"`
	Payout    string     `json:"payout" example:"40"`
	Rate      string     `json:"rate" example:"0.05"`
	Amount    string     `json:"amount" example:"3"`
	Status    string     `json:"status" example:"claimed"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
}

func NewCashbackResponse(c domain.WeeklyCashback) CashbackResponseDTO {
	return CashbackResponseDTO{
		ID:        c.ID,
		Period:    c.Period,
		Currency:  c.Currency,
		Wager:     c.Wager.String(),
		Payout:    c.Payout.String(),
		Rate:      c.Rate.String(),
		Amount:    c.Amount.String(),
		Status:    string(c.Status),
		ClaimedAt: c.ClaimedAt,
	}
}
