package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/sethvargo/go-retry"

	"github.com/GlebRadaev/wagering/internal/domain"
)

// Dispatcher schedules every handler of a signal as its own task on the
// worker pool. Handlers of one signal run in parallel and a failing handler
// never affects its siblings. Each dispatch returns a channel that is closed
// once every handler of the signal has reached a terminal result.
type Dispatcher struct {
	table   *Table
	pool    WorkerPoolI
	backoff func() retry.Backoff
}

func NewDispatcher(table *Table, pool WorkerPoolI) *Dispatcher {
	return &Dispatcher{table: table, pool: pool, backoff: defaultBackoff}
}

func (d *Dispatcher) OrderCompleted(ctx context.Context, order domain.Order) (<-chan struct{}, error) {
	return dispatch(ctx, d, SignalOrderCompleted, d.table.OrderCompleted, order)
}

func (d *Dispatcher) DepositCompleted(ctx context.Context, deposit domain.Deposit) (<-chan struct{}, error) {
	return dispatch(ctx, d, SignalDepositCompleted, d.table.DepositCompleted, deposit)
}

func (d *Dispatcher) VipUpgraded(ctx context.Context, upgrade domain.VipUpgrade) (<-chan struct{}, error) {
	return dispatch(ctx, d, SignalVipUpgraded, d.table.VipUpgraded, upgrade)
}

// Close waits for queued handlers to finish.
func (d *Dispatcher) Close() {
	d.pool.Close()
}

// dispatch returns once every handler is queued. The returned channel is
// closed when all of them have finished. Handlers outlive ctx's cancellation
// but keep its values.
func dispatch[T any](ctx context.Context, d *Dispatcher, signal Signal, handlers []Handler[T], payload T) (<-chan struct{}, error) {
	taskCtx := context.WithoutCancel(ctx)
	var wg sync.WaitGroup
	for _, h := range handlers {
		h := h
		wg.Add(1)
		err := d.pool.AddTask(ctx, func() error {
			defer wg.Done()
			run(taskCtx, d.backoff(), signal, h, payload)
			return nil
		})
		if err != nil {
			wg.Done()
			return nil, fmt.Errorf("failed to enqueue %s handler %s: %w", signal, h.Name, err)
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	return done, nil
}
