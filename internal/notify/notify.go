// Package notify publishes user-facing notifications produced by the engine.
package notify

//go:generate mockgen -destination=mock_notify.go -package=notify . Writer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
)

const (
	TopicBalanceChanged     = "notifications.balance_changed"
	TopicBonusTaskCompleted = "notifications.bonus_task_completed"
	TopicOrderCompleted     = "notifications.order_completed"
	TopicDepositCompleted   = "notifications.deposit_completed"
	TopicCashbackClaimable  = "notifications.cashback_claimable"
	TopicVipUpgraded        = "notifications.vip_upgraded"
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Envelope struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Notifier writes one JSON message per notification, keyed by user id so a
// user's notifications stay ordered within a partition. A nil writer only
// logs.
type Notifier struct {
	writer Writer
	now    func() time.Time
}

func New(writer Writer) *Notifier {
	return &Notifier{writer: writer, now: time.Now}
}

// NewKafkaWriter builds a writer without a default topic; every message
// carries its own.
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		MaxAttempts:            3,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           10 * time.Second,
		AllowAutoTopicCreation: true,
		Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			zap.L().Debug(fmt.Sprintf(msg, args...))
		}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			zap.L().Error(fmt.Sprintf(msg, args...))
		}),
	}
}

func (n *Notifier) BalanceChanged(ctx context.Context, change domain.BalanceChange) error {
	return n.publish(ctx, TopicBalanceChanged, change.UserID, change)
}

func (n *Notifier) BonusTaskCompleted(ctx context.Context, task domain.BonusTask) error {
	return n.publish(ctx, TopicBonusTaskCompleted, task.UserID, BonusTaskPayload{
		TaskID:    task.ID,
		Currency:  task.Currency,
		Wager:     task.Wager.String(),
		NeedWager: task.NeedWager.String(),
	})
}

func (n *Notifier) OrderCompleted(ctx context.Context, order domain.Order) error {
	return n.publish(ctx, TopicOrderCompleted, order.UserID, OrderPayload{
		OrderID:  order.ID,
		Currency: order.Currency,
		Amount:   order.Amount.String(),
		Payout:   order.Payout.String(),
		GameID:   order.GameID,
	})
}

func (n *Notifier) DepositCompleted(ctx context.Context, deposit domain.Deposit) error {
	return n.publish(ctx, TopicDepositCompleted, deposit.UserID, DepositPayload{
		DepositID: deposit.ID,
		Currency:  deposit.Currency,
		Amount:    deposit.Amount.String(),
	})
}

func (n *Notifier) CashbackClaimable(ctx context.Context, cashback domain.WeeklyCashback) error {
	return n.publish(ctx, TopicCashbackClaimable, cashback.UserID, CashbackPayload{
		CashbackID: cashback.ID,
		Period:     cashback.Period,
		Currency:   cashback.Currency,
		Amount:     cashback.Amount.String(),
	})
}

func (n *Notifier) VipUpgraded(ctx context.Context, upgrade domain.VipUpgrade) error {
	return n.publish(ctx, TopicVipUpgraded, upgrade.UserID, VipPayload{
		OldLevel: upgrade.OldLevel,
		NewLevel: upgrade.NewLevel,
	})
}

func (n *Notifier) publish(ctx context.Context, topic string, userID int64, payload any) error {
	envelope := Envelope{
		ID:         uuid.NewString(),
		UserID:     userID,
		OccurredAt: n.now().UTC(),
		Payload:    payload,
	}

	if n.writer == nil {
		zap.L().Info("notification", zap.String("topic", topic), zap.Int64("user_id", userID), zap.Any("payload", payload))
		return nil
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal %s notification: %w", topic, err)
	}
	err = n.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(strconv.FormatInt(userID, 10)),
		Value: value,
		Time:  envelope.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s notification: %w", topic, err)
	}
	return nil
}
