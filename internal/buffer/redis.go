package buffer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
)

const (
	keyPrefix  = "cashback:buf:"
	indexKey   = keyPrefix + "index"
	pendingKey = keyPrefix + "pending"

	deltaSep = "|"
)

var errMalformedEntry = errors.New("malformed buffer entry")

// drainScript moves one live list to its pending list. Running it as a
// script keeps the rename and both set updates atomic against writers.
var drainScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  redis.call('SREM', KEYS[3], ARGV[1])
  return 0
end
redis.call('RENAME', KEYS[1], KEYS[2])
redis.call('SREM', KEYS[3], ARGV[1])
redis.call('SADD', KEYS[4], ARGV[2])
return 1
`)

// deadLetterScript parks a pending entry that cannot be parsed so later
// drains stop returning it.
var deadLetterScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  redis.call('RENAME', KEYS[1], KEYS[2])
end
redis.call('SREM', KEYS[3], ARGV[1])
return 1
`)

// RedisBuffer appends every delta as an exact decimal string to a Redis list
// per key; a drained list is summed in process.
type RedisBuffer struct {
	client redis.UniversalClient
}

func NewRedis(client redis.UniversalClient) *RedisBuffer {
	return &RedisBuffer{client: client}
}

func liveKey(m string) string     { return keyPrefix + "live:" + m }
func pendingList(t string) string { return keyPrefix + "pending:" + t }
func deadKey(t string) string     { return keyPrefix + "dead:" + t }

func (b *RedisBuffer) Add(ctx context.Context, key domain.CashbackKey, wager, payout decimal.Decimal) error {
	m := member(key)
	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, liveKey(m), wager.String()+deltaSep+payout.String())
		pipe.SAdd(ctx, indexKey, m)
		return nil
	})
	if err != nil {
		zap.L().Error("failed to buffer cashback delta", zap.String("key", m), zap.Error(err))
		return err
	}
	return nil
}

func (b *RedisBuffer) Drain(ctx context.Context) ([]domain.BufferEntry, error) {
	members, err := b.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read buffer index: %w", err)
	}
	for _, m := range members {
		token := m + "|" + uuid.NewString()
		keys := []string{liveKey(m), pendingList(token), indexKey, pendingKey}
		if err := drainScript.Run(ctx, b.client, keys, m, token).Err(); err != nil {
			return nil, fmt.Errorf("drain buffer key %s: %w", m, err)
		}
	}

	tokens, err := b.client.SMembers(ctx, pendingKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read pending buffer entries: %w", err)
	}
	sort.Strings(tokens)

	entries := make([]domain.BufferEntry, 0, len(tokens))
	for _, token := range tokens {
		entry, err := b.readPending(ctx, token)
		if err != nil && !errors.Is(err, errMalformedEntry) {
			return nil, fmt.Errorf("read pending buffer entry %s: %w", token, err)
		}
		if err != nil {
			zap.L().Error("unreadable buffer entry moved to dead letters",
				zap.String("token", token),
				zap.String("key", deadKey(token)),
				zap.Error(err),
			)
			if err := b.deadLetter(ctx, token); err != nil {
				return nil, fmt.Errorf("dead letter buffer entry %s: %w", token, err)
			}
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (b *RedisBuffer) readPending(ctx context.Context, token string) (domain.BufferEntry, error) {
	key, err := parseMember(tokenMember(token))
	if err != nil {
		return domain.BufferEntry{}, fmt.Errorf("%w: %v", errMalformedEntry, err)
	}
	deltas, err := b.client.LRange(ctx, pendingList(token), 0, -1).Result()
	if err != nil {
		return domain.BufferEntry{}, err
	}
	entry := domain.BufferEntry{Token: token, Key: key, Wager: decimal.Zero, Payout: decimal.Zero}
	for _, delta := range deltas {
		wager, payout, err := parseDelta(delta)
		if err != nil {
			return domain.BufferEntry{}, err
		}
		entry.Wager = entry.Wager.Add(wager)
		entry.Payout = entry.Payout.Add(payout)
	}
	return entry, nil
}

func (b *RedisBuffer) deadLetter(ctx context.Context, token string) error {
	keys := []string{pendingList(token), deadKey(token), pendingKey}
	return deadLetterScript.Run(ctx, b.client, keys, token).Err()
}

func (b *RedisBuffer) Ack(ctx context.Context, tokens ...string) error {
	if len(tokens) == 0 {
		return nil
	}
	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, token := range tokens {
			pipe.Del(ctx, pendingList(token))
			pipe.SRem(ctx, pendingKey, token)
		}
		return nil
	})
	return err
}

func parseDelta(s string) (wager, payout decimal.Decimal, err error) {
	w, p, ok := strings.Cut(s, deltaSep)
	if !ok {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: delta %q", errMalformedEntry, s)
	}
	if wager, err = decimal.NewFromString(w); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: delta %q: %v", errMalformedEntry, s, err)
	}
	if payout, err = decimal.NewFromString(p); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: delta %q: %v", errMalformedEntry, s, err)
	}
	return wager, payout, nil
}
