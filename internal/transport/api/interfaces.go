package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/hanmall/pointledger/internal/domain"
	"github.com/hanmall/pointledger/internal/repository/repoargs"
	"github.com/hanmall/pointledger/internal/service"
)

type PointServicer interface {
	GetBalance(ctx context.Context, userID int64) (*domain.PointAccount, error)
	EarnPoints(ctx context.Context, args service.EarnPointsArgs) (*domain.PointLedgerEntry, error)
	UsePoints(ctx context.Context, userID int64, amount int64, orderID string) (*domain.PointLedgerEntry, error)
	CancelPoints(ctx context.Context, orderID string) (*domain.PointLedgerEntry, error)
	AdjustPoints(
		ctx context.Context,
		userID int64,
		amount int64,
		reason string,
		adminID string,
	) (*domain.PointLedgerEntry, error)
	GetHistory(ctx context.Context, args service.HistoryArgs) ([]domain.PointLedgerEntry, int64, error)
}

type ExpirationServicer interface {
	ExpiringUsers(ctx context.Context) ([]repoargs.ExpiringUser, error)
}
