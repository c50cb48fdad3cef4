// Package buffer accumulates cashback wager/payout deltas ahead of the
// durable weekly aggregate.
package buffer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/wagering/internal/domain"
)

// Buffer is a concurrently written delta store. Drain hands out every
// buffered entry under a unique token; an entry stays pending until it is
// acknowledged, so a failed flush gets it back on the next Drain.
type Buffer interface {
	Add(ctx context.Context, key domain.CashbackKey, wager, payout decimal.Decimal) error
	Drain(ctx context.Context) ([]domain.BufferEntry, error)
	Ack(ctx context.Context, tokens ...string) error
}

func member(key domain.CashbackKey) string {
	return fmt.Sprintf("%d:%d:%s", key.UserID, key.Period, key.Currency)
}

func parseMember(s string) (domain.CashbackKey, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return domain.CashbackKey{}, fmt.Errorf("malformed buffer key %q", s)
	}
	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return domain.CashbackKey{}, fmt.Errorf("malformed buffer key %q: %w", s, err)
	}
	period, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.CashbackKey{}, fmt.Errorf("malformed buffer key %q: %w", s, err)
	}
	return domain.CashbackKey{UserID: userID, Period: period, Currency: parts[2]}, nil
}

// tokenMember strips the drain id from a token of the form "<member>|<id>".
func tokenMember(token string) string {
	if i := strings.LastIndex(token, "|"); i >= 0 {
		return token[:i]
	}
	return token
}
