package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hanmall/pointledger/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup    = "/api"
	BalanceRoute  = "/users/:userID/points/balance"
	HistoryRoute  = "/users/:userID/points/history"
	EarnRoute     = "/users/:userID/points/earn"
	UseRoute      = "/users/:userID/points/use"
	AdjustRoute   = "/users/:userID/points/adjust"
	CancelRoute   = "/points/cancel"
	ExpiringRoute = "/points/expiring"
)

type RouterArgs struct {
	Logger            *logrus.Logger
	PointService      PointServicer
	ExpirationService ExpirationServicer
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	pointsHandler := NewPointsHandler(args.PointService)
	expiringHandler := NewExpiringHandler(args.ExpirationService)

	api := r.Group(RouteGroup)

	api.GET(BalanceRoute, pointsHandler.Balance)
	api.GET(HistoryRoute, pointsHandler.History)
	api.POST(EarnRoute, pointsHandler.Earn)
	api.POST(UseRoute, pointsHandler.Use)
	api.POST(AdjustRoute, pointsHandler.Adjust)

	api.POST(CancelRoute, pointsHandler.Cancel)
	api.GET(ExpiringRoute, expiringHandler.Index)
	return r, nil
}
