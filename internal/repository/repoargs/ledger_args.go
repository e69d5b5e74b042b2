package repoargs

import (
	"time"

	"github.com/hanmall/pointledger/internal/domain"
)

type LedgerEntryCreate struct {
	UserID       int64
	Type         domain.EntryType
	Amount       int64
	BalanceAfter int64
	Reason       string
	ReasonCode   domain.ReasonCode
	RelatedID    *string
	RelatedType  *domain.RelatedType
	ExpiresAt    *time.Time
}

// HistoryFilter selects a reverse-chronological page of ledger entries.
type HistoryFilter struct {
	UserID int64
	Type   *domain.EntryType
	From   *time.Time
	To     *time.Time
	Offset uint
	Limit  uint
}

// UserDueAmount is the summed not-yet-expired EARNED amount due for one user.
type UserDueAmount struct {
	UserID int64
	Amount int64
}

// ExpiringUser aggregates a user's soon-to-expire points for notification.
type ExpiringUser struct {
	UserID         int64
	Amount         int64
	EarliestExpiry time.Time
}
