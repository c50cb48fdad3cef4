package events

//go:generate mockgen -destination=mock_events.go -package=events . Rollovers,BonusTasks,Cashback,Vip,Notifier,WorkerPoolI

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/service/rolloverservice"
)

type Rollovers interface {
	OnDeposit(ctx context.Context, userID int64, currency string, amount decimal.Decimal, source domain.RolloverSource, relatedID string) error
	OnWagered(ctx context.Context, orderID, userID int64, currency string, wager decimal.Decimal) (rolloverservice.WagerResult, error)
}

type BonusTasks interface {
	OnWagered(ctx context.Context, orderID, userID int64, currency string, amount decimal.Decimal) error
	OnOrderSettled(ctx context.Context, order domain.Order) error
}

type Cashback interface {
	AddToBuffer(ctx context.Context, order domain.Order) error
}

type Vip interface {
	AccrueExp(ctx context.Context, order domain.Order) error
	OnLevelUpgraded(ctx context.Context, upgrade domain.VipUpgrade) error
}

type Notifier interface {
	OrderCompleted(ctx context.Context, order domain.Order) error
	DepositCompleted(ctx context.Context, deposit domain.Deposit) error
	VipUpgraded(ctx context.Context, upgrade domain.VipUpgrade) error
}

type Deps struct {
	Rollovers  Rollovers
	BonusTasks BonusTasks
	Cashback   Cashback
	Vip        Vip
	Notifier   Notifier
}

type Options struct {
	MaxAttempts int
	Timeout     time.Duration
}

// Table lists the handlers of each signal in dispatch order.
type Table struct {
	OrderCompleted   []Handler[domain.Order]
	DepositCompleted []Handler[domain.Deposit]
	VipUpgraded      []Handler[domain.VipUpgrade]
}

func NewTable(d Deps, opts Options) *Table {
	order := func(name string, fn func(context.Context, domain.Order) error) Handler[domain.Order] {
		return Handler[domain.Order]{Name: name, MaxAttempts: opts.MaxAttempts, Timeout: opts.Timeout, Handle: fn}
	}
	deposit := func(name string, fn func(context.Context, domain.Deposit) error) Handler[domain.Deposit] {
		return Handler[domain.Deposit]{Name: name, MaxAttempts: opts.MaxAttempts, Timeout: opts.Timeout, Handle: fn}
	}
	vip := func(name string, fn func(context.Context, domain.VipUpgrade) error) Handler[domain.VipUpgrade] {
		return Handler[domain.VipUpgrade]{Name: name, MaxAttempts: opts.MaxAttempts, Timeout: opts.Timeout, Handle: fn}
	}

	return &Table{
		OrderCompleted: []Handler[domain.Order]{
			order("rollover.wager", func(ctx context.Context, o domain.Order) error {
				if o.Status != domain.OrderStatusCompleted {
					return nil
				}
				_, err := d.Rollovers.OnWagered(ctx, o.ID, o.UserID, o.Currency, o.Amount)
				return err
			}),
			order("bonus_task.wager", func(ctx context.Context, o domain.Order) error {
				if o.Status != domain.OrderStatusCompleted {
					return nil
				}
				return d.BonusTasks.OnWagered(ctx, o.ID, o.UserID, o.Currency, o.Amount)
			}),
			order("bonus_task.depletion", d.BonusTasks.OnOrderSettled),
			order("cashback.buffer", d.Cashback.AddToBuffer),
			order("vip.exp", d.Vip.AccrueExp),
			order("notify.order_completed", d.Notifier.OrderCompleted),
		},
		DepositCompleted: []Handler[domain.Deposit]{
			deposit("rollover.deposit", func(ctx context.Context, dep domain.Deposit) error {
				return d.Rollovers.OnDeposit(ctx, dep.UserID, dep.Currency, dep.Amount, domain.RolloverSourceDeposit, fmt.Sprintf("deposit:%d", dep.ID))
			}),
			deposit("notify.deposit_completed", d.Notifier.DepositCompleted),
		},
		VipUpgraded: []Handler[domain.VipUpgrade]{
			vip("vip.reward", d.Vip.OnLevelUpgraded),
			vip("notify.vip_upgraded", d.Notifier.VipUpgraded),
		},
	}
}
