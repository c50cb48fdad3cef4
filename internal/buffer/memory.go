package buffer

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/wagering/internal/domain"
)

type delta struct {
	wager  decimal.Decimal
	payout decimal.Decimal
}

// MemoryBuffer keeps deltas in process memory. Buffered deltas are lost on restart.
type MemoryBuffer struct {
	mu      sync.Mutex
	live    map[domain.CashbackKey]delta
	pending map[string]domain.BufferEntry
}

func NewMemory() *MemoryBuffer {
	return &MemoryBuffer{
		live:    make(map[domain.CashbackKey]delta),
		pending: make(map[string]domain.BufferEntry),
	}
}

func (b *MemoryBuffer) Add(_ context.Context, key domain.CashbackKey, wager, payout decimal.Decimal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.live[key]
	d.wager = d.wager.Add(wager)
	d.payout = d.payout.Add(payout)
	b.live[key] = d
	return nil
}

func (b *MemoryBuffer) Drain(_ context.Context) ([]domain.BufferEntry, error) {
	b.mu.Lock()
	live := b.live
	b.live = make(map[domain.CashbackKey]delta)
	for key, d := range live {
		token := member(key) + "|" + uuid.NewString()
		b.pending[token] = domain.BufferEntry{Token: token, Key: key, Wager: d.wager, Payout: d.payout}
	}
	entries := make([]domain.BufferEntry, 0, len(b.pending))
	for _, e := range b.pending {
		entries = append(entries, e)
	}
	b.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Token < entries[j].Token })
	return entries, nil
}

func (b *MemoryBuffer) Ack(_ context.Context, tokens ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, token := range tokens {
		delete(b.pending, token)
	}
	return nil
}
