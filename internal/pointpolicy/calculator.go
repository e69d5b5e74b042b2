package pointpolicy

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hanmall/pointledger/internal/domain"
)

const hoursPerDay = 24

// Calculator answers policy questions from plain values. All methods are pure.
type Calculator struct {
	policy *Policy
}

func NewCalculator(p *Policy) *Calculator {
	return &Calculator{policy: p}
}

// EarnRate returns the percent rate for a membership tier, falling back to the
// default order earn rate for an empty or unknown tier.
func (c *Calculator) EarnRate(tier domain.MembershipTier) decimal.Decimal {
	if rate, ok := c.policy.tierEarnRates[tier]; ok {
		return rate
	}
	return c.policy.orderEarnRate
}

// EarnPoints computes floor(orderAmount * rate / 100). Floor, never round:
// repeated computation over the same order must always produce the same total.
func (c *Calculator) EarnPoints(orderAmount int64, rate decimal.Decimal) int64 {
	if orderAmount <= 0 {
		return 0
	}
	return decimal.NewFromInt(orderAmount).
		Mul(rate).
		Div(decimal.NewFromInt(100)). //nolint:mnd
		Floor().
		IntPart()
}

// EarnPointsForTier is EarnPoints with the tier's rate looked up.
func (c *Calculator) EarnPointsForTier(orderAmount int64, tier domain.MembershipTier) int64 {
	return c.EarnPoints(orderAmount, c.EarnRate(tier))
}

// MaxUsablePoints returns the largest amount spendable on an order: the order
// cap (maximumUseRate percent of the order), limited by the available balance,
// and zero outright while the balance is under the minimum use amount.
func (c *Calculator) MaxUsablePoints(orderAmount int64, availablePoints int64) int64 {
	if availablePoints < c.policy.minimumUseAmount {
		return 0
	}
	orderCap := decimal.NewFromInt(orderAmount).
		Mul(c.policy.maximumUseRate).
		Div(decimal.NewFromInt(100)). //nolint:mnd
		Floor().
		IntPart()
	if orderCap < availablePoints {
		return orderCap
	}
	return availablePoints
}

// ValidateSpend checks the balance-only spend rules: the policy minimum and
// the available balance. Used by the ledger itself, where no order amount is
// in play.
func (c *Calculator) ValidateSpend(amount int64, availablePoints int64) error {
	if amount < c.policy.minimumUseAmount {
		return &domain.BelowMinimumUseError{Amount: amount, Minimum: c.policy.minimumUseAmount}
	}
	if amount > availablePoints {
		return &domain.InsufficientBalanceError{Requested: amount, Available: availablePoints}
	}
	return nil
}

// CanUsePoints validates a spend request against an order: ValidateSpend plus
// the per-order usage cap. Returns nil when the amount is usable, otherwise
// one of the typed domain errors.
func (c *Calculator) CanUsePoints(amount int64, orderAmount int64, availablePoints int64) error {
	if err := c.ValidateSpend(amount, availablePoints); err != nil {
		return err
	}
	if maxUsable := c.MaxUsablePoints(orderAmount, availablePoints); amount > maxUsable {
		return domain.NewValidationError(
			"amount %d exceeds the maximum of %d usable on an order of %d", amount, maxUsable, orderAmount)
	}
	return nil
}

// ExpirationDate returns when points earned at earnedAt stop being spendable.
func (c *Calculator) ExpirationDate(earnedAt time.Time) time.Time {
	return earnedAt.AddDate(0, 0, c.policy.expirationDays)
}

// ShouldNotifyExpiration reports whether expiresAt falls inside the notify
// window: strictly in the future, at most notifyDays away.
func (c *Calculator) ShouldNotifyExpiration(expiresAt time.Time, now time.Time) bool {
	until := expiresAt.Sub(now)
	if until <= 0 {
		return false
	}
	return until <= time.Duration(c.policy.notifyDays)*hoursPerDay*time.Hour
}
