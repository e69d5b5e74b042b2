// Package pointpolicy holds the immutable loyalty policy and the pure
// calculation rules applied to it. Nothing here touches storage.
package pointpolicy

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hanmall/pointledger/internal/domain"
)

// Config is the mutable input for building a Policy. Zero fields fall back to
// the defaults below.
type Config struct {
	MinimumUseAmount int64
	MaximumUseRate   decimal.Decimal // percent of order amount
	OrderEarnRate    decimal.Decimal // percent, used when tier is unknown
	TierEarnRates    map[domain.MembershipTier]decimal.Decimal
	SignupBonus      int64
	ReviewBonus      int64
	ExpirationDays   int
	NotifyDays       int
}

// Policy is validated once at construction and read-only afterwards.
type Policy struct {
	minimumUseAmount int64
	maximumUseRate   decimal.Decimal
	orderEarnRate    decimal.Decimal
	tierEarnRates    map[domain.MembershipTier]decimal.Decimal
	signupBonus      int64
	reviewBonus      int64
	expirationDays   int
	notifyDays       int
}

func DefaultConfig() Config {
	return Config{
		MinimumUseAmount: 1000,
		MaximumUseRate:   decimal.NewFromInt(50),
		OrderEarnRate:    decimal.NewFromInt(1),
		TierEarnRates: map[domain.MembershipTier]decimal.Decimal{
			domain.TierBronze: decimal.NewFromInt(1),
			domain.TierSilver: decimal.RequireFromString("1.5"),
			domain.TierGold:   decimal.NewFromInt(2),
			domain.TierVIP:    decimal.NewFromInt(3),
		},
		SignupBonus:    1000,
		ReviewBonus:    500,
		ExpirationDays: 365,
		NotifyDays:     30,
	}
}

func New(c Config) (*Policy, error) {
	def := DefaultConfig()
	if c.MinimumUseAmount == 0 {
		c.MinimumUseAmount = def.MinimumUseAmount
	}
	if c.MaximumUseRate.IsZero() {
		c.MaximumUseRate = def.MaximumUseRate
	}
	if c.OrderEarnRate.IsZero() {
		c.OrderEarnRate = def.OrderEarnRate
	}
	if c.TierEarnRates == nil {
		c.TierEarnRates = def.TierEarnRates
	}
	if c.SignupBonus == 0 {
		c.SignupBonus = def.SignupBonus
	}
	if c.ReviewBonus == 0 {
		c.ReviewBonus = def.ReviewBonus
	}
	if c.ExpirationDays == 0 {
		c.ExpirationDays = def.ExpirationDays
	}
	if c.NotifyDays == 0 {
		c.NotifyDays = def.NotifyDays
	}

	if err := validate(c); err != nil {
		return nil, fmt.Errorf("point policy: %w", err)
	}

	rates := make(map[domain.MembershipTier]decimal.Decimal, len(c.TierEarnRates))
	for tier, rate := range c.TierEarnRates {
		rates[tier] = rate
	}

	return &Policy{
		minimumUseAmount: c.MinimumUseAmount,
		maximumUseRate:   c.MaximumUseRate,
		orderEarnRate:    c.OrderEarnRate,
		tierEarnRates:    rates,
		signupBonus:      c.SignupBonus,
		reviewBonus:      c.ReviewBonus,
		expirationDays:   c.ExpirationDays,
		notifyDays:       c.NotifyDays,
	}, nil
}

func MustNew(c Config) *Policy {
	p, err := New(c)
	if err != nil {
		panic(err)
	}
	return p
}

func validate(c Config) error {
	if c.MinimumUseAmount < 0 {
		return errors.New("minimum use amount must not be negative")
	}
	if c.MaximumUseRate.IsNegative() || c.MaximumUseRate.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("maximum use rate must be within [0, 100]")
	}
	if c.OrderEarnRate.IsNegative() {
		return errors.New("order earn rate must not be negative")
	}
	for tier, rate := range c.TierEarnRates {
		if rate.IsNegative() {
			return fmt.Errorf("earn rate for tier %s must not be negative", tier)
		}
	}
	if c.SignupBonus < 0 || c.ReviewBonus < 0 {
		return errors.New("bonus amounts must not be negative")
	}
	if c.ExpirationDays <= 0 {
		return errors.New("expiration days must be positive")
	}
	if c.NotifyDays <= 0 || c.NotifyDays > c.ExpirationDays {
		return errors.New("notify days must be positive and not exceed expiration days")
	}
	return nil
}

func (p *Policy) MinimumUseAmount() int64 { return p.minimumUseAmount }
func (p *Policy) SignupBonus() int64      { return p.signupBonus }
func (p *Policy) ReviewBonus() int64      { return p.reviewBonus }
func (p *Policy) ExpirationDays() int     { return p.expirationDays }
func (p *Policy) NotifyDays() int         { return p.notifyDays }
