package service

import (
	"context"
	"time"

	"github.com/hanmall/pointledger/internal/domain"
	"github.com/hanmall/pointledger/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PointAccountRepository interface {
	GetOrCreate(ctx context.Context, userID int64) (*domain.PointAccount, error)
	Get(ctx context.Context, userID int64) (*domain.PointAccount, error)
	GetForUpdate(ctx context.Context, userID int64) (*domain.PointAccount, error)
	ApplyDeltas(ctx context.Context, userID int64, deltas repoargs.AccountDeltas) (*domain.PointAccount, error)
}

type PointLedgerRepository interface {
	Create(ctx context.Context, entry repoargs.LedgerEntryCreate) (*domain.PointLedgerEntry, error)
	FindLastByRelated(
		ctx context.Context,
		relatedID string,
		relatedType domain.RelatedType,
		entryType domain.EntryType,
	) (*domain.PointLedgerEntry, error)
	GetHistory(ctx context.Context, filter repoargs.HistoryFilter) ([]domain.PointLedgerEntry, int64, error)
	DueUserAmounts(ctx context.Context, now time.Time, limit uint) ([]repoargs.UserDueAmount, error)
	DueEntriesForUser(ctx context.Context, userID int64, now time.Time) ([]domain.PointLedgerEntry, error)
	MarkExpired(ctx context.Context, entryIDs []int64, expiredAt time.Time) error
	ExpiringSoon(ctx context.Context, from time.Time, to time.Time) ([]repoargs.ExpiringUser, error)
}
