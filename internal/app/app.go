package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for applying postgres migrations.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver reading migrations from *.sql files.
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive

	"github.com/hanmall/pointledger/internal/config"
	"github.com/hanmall/pointledger/internal/expiration"
	"github.com/hanmall/pointledger/internal/pointpolicy"
	"github.com/hanmall/pointledger/internal/repository/pgrepo"
	"github.com/hanmall/pointledger/internal/repository/repoargs"
	"github.com/hanmall/pointledger/internal/service"
	"github.com/hanmall/pointledger/internal/transport/api"
	"github.com/hanmall/pointledger/pkg/uow"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	policy, policyErr := pointpolicy.New(pointpolicy.DefaultConfig())
	if policyErr != nil {
		return fmt.Errorf("app run: %s", policyErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, policy)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:            a.Logger,
		PointService:      services.PointService,
		ExpirationService: services.ExpirationService,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	processor := expiration.New(services.ExpirationService, a.Logger).
		SetInterval(a.Config.ExpirationInterval).
		SetBatchLimit(a.Config.ExpirationBatchLimit)

	go processor.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// point account repo
	accountRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewPointAccountRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.PointAccountRepoName),
		accountRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// point ledger repo
	ledgerRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewPointLedgerRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.PointLedgerRepoName),
		ledgerRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
