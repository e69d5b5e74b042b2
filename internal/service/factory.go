package service

import (
	"fmt"

	"github.com/hanmall/pointledger/internal/pointpolicy"
	"github.com/hanmall/pointledger/pkg/uow"
)

type AppServices struct {
	PointService      *PointService
	ExpirationService *ExpirationService
}

func Factory(unitOfWork uow.UOW, policy *pointpolicy.Policy) (*AppServices, error) {
	pointService, pointServiceErr := NewPointService(unitOfWork, policy)
	if pointServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", pointServiceErr.Error())
	}

	expirationService, expirationServiceErr := NewExpirationService(unitOfWork, policy)
	if expirationServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", expirationServiceErr.Error())
	}

	return &AppServices{
		PointService:      pointService,
		ExpirationService: expirationService,
	}, nil
}
