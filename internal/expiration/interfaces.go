package expiration

import (
	"context"

	"github.com/hanmall/pointledger/internal/repository/repoargs"
	"github.com/hanmall/pointledger/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type Servicer interface {
	ProcessExpiredPoints(ctx context.Context, batchLimit uint) (*service.ExpirationRunResult, error)
	ExpiringUsers(ctx context.Context) ([]repoargs.ExpiringUser, error)
}
