// Package consumer feeds completion signals from Kafka into the dispatcher.
package consumer

//go:generate mockgen -destination=mock_consumer.go -package=consumer . Reader,Dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/dto"
)

const (
	TopicOrdersCompleted   = "orders.completed"
	TopicDepositsCompleted = "deposits.completed"
	TopicVipUpgraded       = "vip.level_upgraded"
)

// maxInflight bounds the fetched messages per topic whose handlers have not
// finished yet.
const maxInflight = 128

type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Dispatcher queues a signal and returns a channel closed once all of its
// handlers have finished.
type Dispatcher interface {
	OrderCompleted(ctx context.Context, order domain.Order) (<-chan struct{}, error)
	DepositCompleted(ctx context.Context, deposit domain.Deposit) (<-chan struct{}, error)
	VipUpgraded(ctx context.Context, upgrade domain.VipUpgrade) (<-chan struct{}, error)
}

type inflight struct {
	msg  kafka.Message
	done <-chan struct{}
}

var finished = func() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

type Consumer struct {
	readers    map[string]Reader
	dispatcher Dispatcher
}

func New(brokers []string, groupID string, dispatcher Dispatcher) *Consumer {
	readers := make(map[string]Reader, 3)
	for _, topic := range []string{TopicOrdersCompleted, TopicDepositsCompleted, TopicVipUpgraded} {
		readers[topic] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
			MaxWait:  time.Second,
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
				zap.L().Error(fmt.Sprintf(msg, args...), zap.String("topic", topic))
			}),
		})
	}
	return &Consumer{readers: readers, dispatcher: dispatcher}
}

// Run consumes every topic until ctx is cancelled. An offset is committed
// only after every handler of its signal, and of all signals fetched before
// it on the topic, has finished. Anything unfinished at shutdown is fetched
// again on restart.
func (c *Consumer) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for topic, reader := range c.readers {
		topic, reader := topic, reader
		g.Go(func() error {
			return c.consume(ctx, topic, reader)
		})
	}
	return g.Wait()
}

func (c *Consumer) consume(ctx context.Context, topic string, reader Reader) error {
	zap.L().Info("Kafka consumer started", zap.String("topic", topic))

	g, ctx := errgroup.WithContext(ctx)
	pending := make(chan inflight, maxInflight)
	g.Go(func() error {
		defer close(pending)
		return c.fetch(ctx, topic, reader, pending)
	})
	g.Go(func() error {
		return c.commit(ctx, topic, reader, pending)
	})
	return g.Wait()
}

func (c *Consumer) fetch(ctx context.Context, topic string, reader Reader, pending chan<- inflight) error {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to fetch from %s: %w", topic, err)
		}

		done, err := c.handle(ctx, topic, msg.Value)
		if err != nil {
			if !errors.Is(err, domain.ErrInvalidEvent) {
				return err
			}
			zap.L().Error("Skipping malformed signal",
				zap.String("topic", topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			done = finished
		}

		select {
		case pending <- inflight{msg: msg, done: done}:
		case <-ctx.Done():
			return nil
		}
	}
}

// commit acknowledges messages in fetch order, each once its handlers are done.
func (c *Consumer) commit(ctx context.Context, topic string, reader Reader, pending <-chan inflight) error {
	for item := range pending {
		select {
		case <-item.done:
		case <-ctx.Done():
			return nil
		}
		if err := reader.CommitMessages(ctx, item.msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to commit %s offset %d: %w", topic, item.msg.Offset, err)
		}
	}
	return nil
}

func (c *Consumer) handle(ctx context.Context, topic string, value []byte) (<-chan struct{}, error) {
	switch topic {
	case TopicOrdersCompleted:
		var payload dto.OrderCompletedDTO
		if err := json.Unmarshal(value, &payload); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
		}
		order, err := payload.ToDomain()
		if err != nil {
			return nil, err
		}
		return c.dispatcher.OrderCompleted(ctx, order)
	case TopicDepositsCompleted:
		var payload dto.DepositCompletedDTO
		if err := json.Unmarshal(value, &payload); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
		}
		deposit, err := payload.ToDomain()
		if err != nil {
			return nil, err
		}
		return c.dispatcher.DepositCompleted(ctx, deposit)
	case TopicVipUpgraded:
		var payload dto.VipUpgradedDTO
		if err := json.Unmarshal(value, &payload); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
		}
		upgrade, err := payload.ToDomain()
		if err != nil {
			return nil, err
		}
		return c.dispatcher.VipUpgraded(ctx, upgrade)
	default:
		return nil, fmt.Errorf("%w: unknown topic %s", domain.ErrInvalidEvent, topic)
	}
}

func (c *Consumer) Close() error {
	var errs []error
	for topic, reader := range c.readers {
		if err := reader.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s reader: %w", topic, err))
		}
	}
	return errors.Join(errs...)
}
