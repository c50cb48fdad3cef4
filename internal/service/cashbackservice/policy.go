package cashbackservice

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/wagering/internal/domain"
)

type Tier struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// Policy decides which orders count towards cashback and what a week's
// aggregate pays out.
type Policy struct {
	tiers     []Tier
	maxAmount decimal.Decimal
	excluded  map[string]struct{}
}

// NewPolicy parses threshold:rate tiers keyed by minimum weekly wager. An
// empty maxAmount leaves the payout uncapped.
func NewPolicy(tiers map[string]string, maxAmount string, excludedGames []string) (*Policy, error) {
	p := &Policy{excluded: make(map[string]struct{}, len(excludedGames))}

	for threshold, rate := range tiers {
		t, err := decimal.NewFromString(threshold)
		if err != nil {
			return nil, fmt.Errorf("cashback tier threshold %q: %w", threshold, err)
		}
		r, err := decimal.NewFromString(rate)
		if err != nil {
			return nil, fmt.Errorf("cashback tier rate %q: %w", rate, err)
		}
		if r.IsNegative() || r.GreaterThan(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("cashback tier rate %s out of range", r)
		}
		p.tiers = append(p.tiers, Tier{Threshold: t, Rate: r})
	}
	sort.Slice(p.tiers, func(i, j int) bool { return p.tiers[i].Threshold.LessThan(p.tiers[j].Threshold) })

	if maxAmount != "" {
		m, err := decimal.NewFromString(maxAmount)
		if err != nil {
			return nil, fmt.Errorf("cashback max amount %q: %w", maxAmount, err)
		}
		p.maxAmount = m
	}
	for _, game := range excludedGames {
		p.excluded[game] = struct{}{}
	}
	return p, nil
}

func (p *Policy) Enabled() bool {
	return p != nil && len(p.tiers) > 0
}

func (p *Policy) Eligible(order domain.Order) bool {
	if order.Status != domain.OrderStatusCompleted || !order.Amount.IsPositive() {
		return false
	}
	_, excluded := p.excluded[order.GameID]
	return !excluded
}

// Calculate returns the rate of the highest tier reached by wager and the
// resulting amount: net loss times rate, rounded to cents and capped.
func (p *Policy) Calculate(wager, payout decimal.Decimal) (rate, amount decimal.Decimal) {
	rate = decimal.Zero
	for _, tier := range p.tiers {
		if wager.LessThan(tier.Threshold) {
			break
		}
		rate = tier.Rate
	}

	loss := wager.Sub(payout)
	if !loss.IsPositive() {
		return rate, decimal.Zero
	}
	amount = loss.Mul(rate).Round(2)
	if p.maxAmount.IsPositive() && amount.GreaterThan(p.maxAmount) {
		amount = p.maxAmount
	}
	return rate, amount
}
