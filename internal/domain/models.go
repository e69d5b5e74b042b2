package domain

import (
	"time"
)

type EntryType string

const (
	EntryTypeEarned    EntryType = "EARNED"
	EntryTypeUsed      EntryType = "USED"
	EntryTypeExpired   EntryType = "EXPIRED"
	EntryTypeCancelled EntryType = "CANCELLED"
	EntryTypeAdjusted  EntryType = "ADJUSTED"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeEarned, EntryTypeUsed, EntryTypeExpired, EntryTypeCancelled, EntryTypeAdjusted:
		return true
	}
	return false
}

type ReasonCode string

const (
	ReasonSignup            ReasonCode = "SIGNUP"
	ReasonReviewWrite       ReasonCode = "REVIEW_WRITE"
	ReasonOrderComplete     ReasonCode = "ORDER_COMPLETE"
	ReasonOrderPayment      ReasonCode = "ORDER_PAYMENT"
	ReasonOrderCancelRefund ReasonCode = "ORDER_CANCEL_REFUND"
	ReasonEventReward       ReasonCode = "EVENT_REWARD"
	ReasonAdminGrant        ReasonCode = "ADMIN_GRANT"
	ReasonAdminDeduct       ReasonCode = "ADMIN_DEDUCT"
	ReasonAutoExpiration    ReasonCode = "AUTO_EXPIRATION"
)

type RelatedType string

const (
	RelatedTypeOrder  RelatedType = "ORDER"
	RelatedTypeReview RelatedType = "REVIEW"
	RelatedTypeEvent  RelatedType = "EVENT"
	RelatedTypeAdmin  RelatedType = "ADMIN"
)

type MembershipTier string

const (
	TierBronze MembershipTier = "BRONZE"
	TierSilver MembershipTier = "SILVER"
	TierGold   MembershipTier = "GOLD"
	TierVIP    MembershipTier = "VIP"
)

// PointAccount is the per-user balance aggregate. It is derived from the ledger
// and must only change in the same transaction that appends a ledger entry.
type PointAccount struct {
	UserID          int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	TotalPoints     int64
	AvailablePoints int64
	PendingPoints   int64
	UsedPoints      int64
	ExpiredPoints   int64
}

// PointLedgerEntry is one immutable balance mutation. The only field ever
// written after creation is ExpiredAt, the expiration job's watermark.
type PointLedgerEntry struct {
	ID           int64
	CreatedAt    time.Time
	UserID       int64
	Type         EntryType
	Amount       int64 // signed: credits positive, debits negative
	BalanceAfter int64
	Reason       string
	ReasonCode   ReasonCode
	RelatedID    *string
	RelatedType  *RelatedType
	ExpiresAt    *time.Time
	ExpiredAt    *time.Time
}
