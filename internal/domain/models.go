package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionDeposit            TransactionType = "deposit"
	TransactionWithdrawal         TransactionType = "withdrawal"
	TransactionWithdrawalUnfreeze TransactionType = "withdrawal_unfreeze"
	TransactionBet                TransactionType = "bet"
	TransactionPayout             TransactionType = "payout"
	TransactionRefund             TransactionType = "refund"
	TransactionInvitationReward   TransactionType = "invitation_reward"
	TransactionVipReward          TransactionType = "vip_reward"
	TransactionCashback           TransactionType = "cashback"
	TransactionBonus              TransactionType = "bonus"
)

const TransactionStatusCompleted = "completed"

type Balance struct {
	ID        int64           `db:"id"`
	UserID    int64           `db:"user_id"`
	Currency  string          `db:"currency"`
	Available decimal.Decimal `db:"available"`
	Frozen    decimal.Decimal `db:"frozen"`
	Version   int64           `db:"version"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type Transaction struct {
	ID              int64           `db:"id"`
	UserID          int64           `db:"user_id"`
	Currency        string          `db:"currency"`
	Amount          decimal.Decimal `db:"amount"`
	Type            TransactionType `db:"type"`
	Status          string          `db:"status"`
	RelatedEntityID string          `db:"related_entity_id"`
	Notes           string          `db:"notes"`
	TransactionTime time.Time       `db:"transaction_time"`
}

// LedgerRequest describes a single balance mutation.
type LedgerRequest struct {
	UserID          int64
	Currency        string
	Amount          decimal.Decimal
	Type            TransactionType
	RelatedEntityID string
	Notes           string
}

// BucketDeltas splits a signed amount into available and frozen deltas.
// Withdrawals reserve funds (available -> frozen), unfreezes release them.
func BucketDeltas(kind TransactionType, amount decimal.Decimal) (available, frozen decimal.Decimal) {
	switch kind {
	case TransactionWithdrawal, TransactionWithdrawalUnfreeze:
		return amount, amount.Neg()
	default:
		return amount, decimal.Zero
	}
}

type RolloverStatus string

const (
	RolloverPending   RolloverStatus = "pending"
	RolloverActive    RolloverStatus = "active"
	RolloverCompleted RolloverStatus = "completed"
)

type RolloverSource string

const (
	RolloverSourceDeposit   RolloverSource = "deposit"
	RolloverSourceBonus     RolloverSource = "bonus"
	RolloverSourceVipReward RolloverSource = "vip_reward"
	RolloverSourceCashback  RolloverSource = "cashback"
)

type Rollover struct {
	ID            int64           `db:"id"`
	UserID        int64           `db:"user_id"`
	Currency      string          `db:"currency"`
	SourceType    RolloverSource  `db:"source_type"`
	RelatedID     string          `db:"related_id"`
	Amount        decimal.Decimal `db:"amount"`
	RequiredWager decimal.Decimal `db:"required_wager"`
	CurrentWager  decimal.Decimal `db:"current_wager"`
	Status        RolloverStatus  `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
	CompletedAt   *time.Time      `db:"completed_at"`
}

type BonusTaskStatus string

const (
	BonusTaskPending   BonusTaskStatus = "pending"
	BonusTaskActive    BonusTaskStatus = "active"
	BonusTaskCompleted BonusTaskStatus = "completed"
	BonusTaskClaimed   BonusTaskStatus = "claimed"
	BonusTaskExpired   BonusTaskStatus = "expired"
	BonusTaskCancelled BonusTaskStatus = "cancelled"
	BonusTaskDepleted  BonusTaskStatus = "depleted"
)

type BonusTask struct {
	ID          int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	Currency    string          `db:"currency"`
	CapBonus    decimal.Decimal `db:"cap_bonus"`
	BaseBonus   decimal.Decimal `db:"base_bonus"`
	LastBonus   decimal.Decimal `db:"last_bonus"`
	NeedWager   decimal.Decimal `db:"need_wager"`
	Wager       decimal.Decimal `db:"wager"`
	Status      BonusTaskStatus `db:"status"`
	ExpiredAt   time.Time       `db:"expired_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// Open reports whether the task can still progress.
func (t *BonusTask) Open() bool {
	return t.Status == BonusTaskPending || t.Status == BonusTaskActive
}

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID          int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	Currency    string          `db:"currency"`
	Amount      decimal.Decimal `db:"amount"`
	Payout      decimal.Decimal `db:"payout"`
	GameID      string          `db:"game_id"`
	BonusTaskID *int64          `db:"bonus_task_id"`
	Status      string          `db:"status"`
	FinishedAt  time.Time       `db:"finished_at"`
}

type Deposit struct {
	ID       int64           `db:"id"`
	UserID   int64           `db:"user_id"`
	Currency string          `db:"currency"`
	Amount   decimal.Decimal `db:"amount"`
}

type VipUpgrade struct {
	UserID   int64
	OldLevel int
	NewLevel int
}

type CashbackStatus string

const (
	CashbackActive    CashbackStatus = "active"
	CashbackClaimable CashbackStatus = "claimable"
	CashbackExpired   CashbackStatus = "expired"
	CashbackClaimed   CashbackStatus = "claimed"
)

type WeeklyCashback struct {
	ID        int64           `db:"id"`
	UserID    int64           `db:"user_id"`
	Period    int             `db:"period"`
	Currency  string          `db:"currency"`
	Wager     decimal.Decimal `db:"wager"`
	Payout    decimal.Decimal `db:"payout"`
	Rate      decimal.Decimal `db:"rate"`
	Amount    decimal.Decimal `db:"amount"`
	Status    CashbackStatus  `db:"status"`
	ClaimedAt *time.Time      `db:"claimed_at"`
}

type CashbackKey struct {
	UserID   int64
	Period   int
	Currency string
}

// BufferEntry is a drained cashback delta. Token identifies the drain and
// makes merging it into the aggregate idempotent.
type BufferEntry struct {
	Token  string
	Key    CashbackKey
	Wager  decimal.Decimal
	Payout decimal.Decimal
}

type BalanceBucket string

const (
	BucketAvailable BalanceBucket = "available"
	BucketFrozen    BalanceBucket = "frozen"
)

// BalanceChange is published once per bucket touched by a ledger apply.
type BalanceChange struct {
	UserID          int64           `json:"user_id"`
	Currency        string          `json:"currency"`
	Bucket          BalanceBucket   `json:"bucket"`
	Value           decimal.Decimal `json:"value"`
	Delta           decimal.Decimal `json:"delta"`
	Type            TransactionType `json:"type"`
	RelatedEntityID string          `json:"related_entity_id"`
}
