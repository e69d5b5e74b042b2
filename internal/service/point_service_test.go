package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/hanmall/pointledger/internal/domain"
	"github.com/hanmall/pointledger/internal/pointpolicy"
	"github.com/hanmall/pointledger/internal/repository/repoargs"
	"github.com/hanmall/pointledger/internal/service/mocks"
	"github.com/hanmall/pointledger/pkg/uow"
	uowmocks "github.com/hanmall/pointledger/pkg/uow/mocks"
)

type PointServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	mockAcctRepo   *mocks.MockPointAccountRepository
	mockLedgerRepo *mocks.MockPointLedgerRepository
	service        *PointService
}

func TestPointServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PointServiceTestSuite))
}

func (s *PointServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.ctrl)
	s.mockTX = uowmocks.NewMockTX(s.ctrl)
	s.mockAcctRepo = mocks.NewMockPointAccountRepository(s.ctrl)
	s.mockLedgerRepo = mocks.NewMockPointLedgerRepository(s.ctrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.PointAccountRepoName)).
		Return(s.mockAcctRepo, nil).
		AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.PointLedgerRepoName)).
		Return(s.mockLedgerRepo, nil).
		AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.PointAccountRepoName)).
		Return(s.mockAcctRepo, nil).
		AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.PointLedgerRepoName)).
		Return(s.mockLedgerRepo, nil).
		AnyTimes()

	svc, err := NewPointService(s.mockUOW, pointpolicy.MustNew(pointpolicy.DefaultConfig()))
	s.Require().NoError(err)
	s.service = svc
}

func (s *PointServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectDo wires the unit of work to run the transaction closure against the
// mocked TX, n times.
func (s *PointServiceTestSuite) expectDo(n int) {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		}).
		Times(n)
}

func (s *PointServiceTestSuite) account(userID int64, available int64) *domain.PointAccount {
	return &domain.PointAccount{
		UserID:          userID,
		TotalPoints:     available,
		AvailablePoints: available,
	}
}

func (s *PointServiceTestSuite) TestGetBalance() {
	account := s.account(7, 1500)
	s.mockAcctRepo.EXPECT().GetOrCreate(gomock.Any(), int64(7)).Return(account, nil)

	got, err := s.service.GetBalance(s.T().Context(), 7)
	s.Require().NoError(err)
	s.Equal(account, got)
}

func (s *PointServiceTestSuite) TestGetBalanceInvalidUser() {
	_, err := s.service.GetBalance(s.T().Context(), 0)
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *PointServiceTestSuite) TestEarnPoints() {
	s.expectDo(1)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 0), nil)
	s.mockAcctRepo.EXPECT().
		ApplyDeltas(gomock.Any(), int64(1), repoargs.AccountDeltas{Total: 1000, Available: 1000}).
		Return(s.account(1, 1000), nil)
	s.mockLedgerRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c repoargs.LedgerEntryCreate) (*domain.PointLedgerEntry, error) {
			s.Equal(domain.EntryTypeEarned, c.Type)
			s.Equal(int64(1000), c.Amount)
			s.Equal(int64(1000), c.BalanceAfter)
			s.Require().NotNil(c.ExpiresAt)
			s.WithinDuration(time.Now().AddDate(0, 0, 365), *c.ExpiresAt, time.Minute)
			return &domain.PointLedgerEntry{ID: 10, UserID: 1, Type: c.Type, Amount: c.Amount, BalanceAfter: c.BalanceAfter}, nil
		})

	entry, err := s.service.EarnPoints(s.T().Context(), EarnPointsArgs{
		UserID:     1,
		Amount:     1000,
		Reason:     "event reward",
		ReasonCode: domain.ReasonEventReward,
	})
	s.Require().NoError(err)
	s.Equal(int64(1000), entry.BalanceAfter)
}

func (s *PointServiceTestSuite) TestEarnPointsValidation() {
	cases := []struct {
		name string
		args EarnPointsArgs
	}{
		{name: "missing user", args: EarnPointsArgs{Amount: 100, Reason: "r", ReasonCode: domain.ReasonEventReward}},
		{name: "non-positive amount", args: EarnPointsArgs{UserID: 1, Amount: 0, Reason: "r", ReasonCode: domain.ReasonEventReward}},
		{name: "missing reason", args: EarnPointsArgs{UserID: 1, Amount: 100, ReasonCode: domain.ReasonEventReward}},
		{name: "missing reason code", args: EarnPointsArgs{UserID: 1, Amount: 100, Reason: "r"}},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			_, err := s.service.EarnPoints(s.T().Context(), c.args)
			s.Require().ErrorIs(err, domain.ErrValidation)
		})
	}
}

func (s *PointServiceTestSuite) TestUsePoints() {
	s.expectDo(1)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 5000), nil)
	s.mockAcctRepo.EXPECT().
		ApplyDeltas(gomock.Any(), int64(1), repoargs.AccountDeltas{Available: -1000, Used: 1000}).
		Return(s.account(1, 4000), nil)
	s.mockLedgerRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c repoargs.LedgerEntryCreate) (*domain.PointLedgerEntry, error) {
			s.Equal(domain.EntryTypeUsed, c.Type)
			s.Equal(int64(-1000), c.Amount)
			s.Equal(int64(4000), c.BalanceAfter)
			s.Equal(domain.ReasonOrderPayment, c.ReasonCode)
			s.Require().NotNil(c.RelatedID)
			s.Equal("ORD-1", *c.RelatedID)
			return &domain.PointLedgerEntry{ID: 11, UserID: 1, Type: c.Type, Amount: c.Amount, BalanceAfter: c.BalanceAfter}, nil
		})

	entry, err := s.service.UsePoints(s.T().Context(), 1, 1000, "ORD-1")
	s.Require().NoError(err)
	s.Equal(int64(-1000), entry.Amount)
}

func (s *PointServiceTestSuite) TestUsePointsBelowMinimum() {
	s.expectDo(1)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 5000), nil)

	_, err := s.service.UsePoints(s.T().Context(), 1, 500, "ORD-1")
	s.Require().ErrorIs(err, domain.ErrBelowMinimumUse)
}

func (s *PointServiceTestSuite) TestUsePointsInsufficientBalance() {
	s.expectDo(1)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 1500), nil)

	_, err := s.service.UsePoints(s.T().Context(), 1, 2000, "ORD-1")
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)

	var balErr *domain.InsufficientBalanceError
	s.Require().ErrorAs(err, &balErr)
	s.Equal(int64(1500), balErr.Available)
}

func (s *PointServiceTestSuite) TestCancelPoints() {
	used := &domain.PointLedgerEntry{ID: 11, UserID: 1, Type: domain.EntryTypeUsed, Amount: -1000}

	s.expectDo(1)
	s.mockLedgerRepo.EXPECT().
		FindLastByRelated(gomock.Any(), "ORD-1", domain.RelatedTypeOrder, domain.EntryTypeUsed).
		Return(used, nil)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 0), nil)
	s.mockLedgerRepo.EXPECT().
		FindLastByRelated(gomock.Any(), "ORD-1", domain.RelatedTypeOrder, domain.EntryTypeCancelled).
		Return(nil, domain.ErrRecordNotFound)
	s.mockAcctRepo.EXPECT().
		ApplyDeltas(gomock.Any(), int64(1), repoargs.AccountDeltas{Available: 1000, Used: -1000}).
		Return(s.account(1, 1000), nil)
	s.mockLedgerRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c repoargs.LedgerEntryCreate) (*domain.PointLedgerEntry, error) {
			s.Equal(domain.EntryTypeCancelled, c.Type)
			s.Equal(int64(1000), c.Amount)
			s.Equal(int64(1000), c.BalanceAfter)
			s.Equal(domain.ReasonOrderCancelRefund, c.ReasonCode)
			return &domain.PointLedgerEntry{ID: 12, UserID: 1, Type: c.Type, Amount: c.Amount}, nil
		})

	entry, err := s.service.CancelPoints(s.T().Context(), "ORD-1")
	s.Require().NoError(err)
	s.Equal(int64(1000), entry.Amount)
}

func (s *PointServiceTestSuite) TestCancelPointsNoUsage() {
	s.expectDo(1)
	s.mockLedgerRepo.EXPECT().
		FindLastByRelated(gomock.Any(), "ORD-404", domain.RelatedTypeOrder, domain.EntryTypeUsed).
		Return(nil, domain.ErrRecordNotFound)

	entry, err := s.service.CancelPoints(s.T().Context(), "ORD-404")
	s.Require().NoError(err)
	s.Nil(entry)
}

func (s *PointServiceTestSuite) TestCancelPointsAlreadyRefunded() {
	used := &domain.PointLedgerEntry{ID: 11, UserID: 1, Type: domain.EntryTypeUsed, Amount: -1000}
	cancelled := &domain.PointLedgerEntry{ID: 12, UserID: 1, Type: domain.EntryTypeCancelled, Amount: 1000}

	s.expectDo(1)
	s.mockLedgerRepo.EXPECT().
		FindLastByRelated(gomock.Any(), "ORD-1", domain.RelatedTypeOrder, domain.EntryTypeUsed).
		Return(used, nil)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 1000), nil)
	s.mockLedgerRepo.EXPECT().
		FindLastByRelated(gomock.Any(), "ORD-1", domain.RelatedTypeOrder, domain.EntryTypeCancelled).
		Return(cancelled, nil)

	entry, err := s.service.CancelPoints(s.T().Context(), "ORD-1")
	s.Require().NoError(err)
	s.Equal(cancelled, entry)
}

func (s *PointServiceTestSuite) TestAdjustPointsDeduct() {
	s.expectDo(1)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 1000), nil)
	s.mockAcctRepo.EXPECT().
		ApplyDeltas(gomock.Any(), int64(1), repoargs.AccountDeltas{Total: -300, Available: -300}).
		Return(s.account(1, 700), nil)
	s.mockLedgerRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c repoargs.LedgerEntryCreate) (*domain.PointLedgerEntry, error) {
			s.Equal(domain.EntryTypeAdjusted, c.Type)
			s.Equal(int64(-300), c.Amount)
			s.Equal(int64(700), c.BalanceAfter)
			s.Equal(domain.ReasonAdminDeduct, c.ReasonCode)
			return &domain.PointLedgerEntry{ID: 13, UserID: 1, Type: c.Type, Amount: c.Amount}, nil
		})

	entry, err := s.service.AdjustPoints(s.T().Context(), 1, -300, "cs compensation rollback", "admin-9")
	s.Require().NoError(err)
	s.Equal(int64(-300), entry.Amount)
}

func (s *PointServiceTestSuite) TestAdjustPointsDeductInsufficient() {
	s.expectDo(1)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 200), nil)

	_, err := s.service.AdjustPoints(s.T().Context(), 1, -300, "cs compensation rollback", "admin-9")
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)
}

func (s *PointServiceTestSuite) TestAdjustPointsGrant() {
	s.expectDo(1)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 0), nil)
	s.mockAcctRepo.EXPECT().
		ApplyDeltas(gomock.Any(), int64(1), repoargs.AccountDeltas{Total: 500, Available: 500}).
		Return(s.account(1, 500), nil)
	s.mockLedgerRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c repoargs.LedgerEntryCreate) (*domain.PointLedgerEntry, error) {
			s.Equal(domain.EntryTypeEarned, c.Type)
			s.Equal(domain.ReasonAdminGrant, c.ReasonCode)
			s.Require().NotNil(c.RelatedType)
			s.Equal(domain.RelatedTypeAdmin, *c.RelatedType)
			return &domain.PointLedgerEntry{ID: 14, UserID: 1, Type: c.Type, Amount: c.Amount}, nil
		})

	_, err := s.service.AdjustPoints(s.T().Context(), 1, 500, "cs compensation", "admin-9")
	s.Require().NoError(err)
}

func (s *PointServiceTestSuite) TestAdjustPointsValidation() {
	_, err := s.service.AdjustPoints(s.T().Context(), 1, 0, "reason", "admin-9")
	s.Require().ErrorIs(err, domain.ErrValidation)

	_, err = s.service.AdjustPoints(s.T().Context(), 1, 100, "", "admin-9")
	s.Require().ErrorIs(err, domain.ErrValidation)

	_, err = s.service.AdjustPoints(s.T().Context(), 1, 100, "reason", "")
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *PointServiceTestSuite) TestGetHistoryDefaults() {
	s.mockLedgerRepo.EXPECT().
		GetHistory(gomock.Any(), repoargs.HistoryFilter{UserID: 1, Offset: 0, Limit: 20}).
		Return([]domain.PointLedgerEntry{{ID: 1}}, int64(1), nil)

	entries, total, err := s.service.GetHistory(s.T().Context(), HistoryArgs{UserID: 1})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Len(entries, 1)
}

func (s *PointServiceTestSuite) TestGetHistoryPagingAndCap() {
	s.mockLedgerRepo.EXPECT().
		GetHistory(gomock.Any(), repoargs.HistoryFilter{UserID: 1, Offset: 200, Limit: 100}).
		Return(nil, int64(0), nil)

	_, _, err := s.service.GetHistory(s.T().Context(), HistoryArgs{UserID: 1, Page: 3, Limit: 500})
	s.Require().NoError(err)
}

func (s *PointServiceTestSuite) TestGetHistoryUnknownType() {
	bad := domain.EntryType("REFUNDED")
	_, _, err := s.service.GetHistory(s.T().Context(), HistoryArgs{UserID: 1, Type: &bad})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *PointServiceTestSuite) TestGrantSignupBonus() {
	s.expectDo(1)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 0), nil)
	s.mockAcctRepo.EXPECT().
		ApplyDeltas(gomock.Any(), int64(1), repoargs.AccountDeltas{Total: 1000, Available: 1000}).
		Return(s.account(1, 1000), nil)
	s.mockLedgerRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c repoargs.LedgerEntryCreate) (*domain.PointLedgerEntry, error) {
			s.Equal(int64(1000), c.Amount)
			s.Equal(domain.ReasonSignup, c.ReasonCode)
			return &domain.PointLedgerEntry{ID: 15, UserID: 1, Amount: c.Amount}, nil
		})

	_, err := s.service.GrantSignupBonus(s.T().Context(), 1)
	s.Require().NoError(err)
}

func (s *PointServiceTestSuite) TestGrantReviewPoints() {
	s.expectDo(1)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 0), nil)
	s.mockAcctRepo.EXPECT().
		ApplyDeltas(gomock.Any(), int64(1), repoargs.AccountDeltas{Total: 500, Available: 500}).
		Return(s.account(1, 500), nil)
	s.mockLedgerRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c repoargs.LedgerEntryCreate) (*domain.PointLedgerEntry, error) {
			s.Equal(int64(500), c.Amount)
			s.Equal(domain.ReasonReviewWrite, c.ReasonCode)
			s.Require().NotNil(c.RelatedType)
			s.Equal(domain.RelatedTypeReview, *c.RelatedType)
			return &domain.PointLedgerEntry{ID: 16, UserID: 1, Amount: c.Amount}, nil
		})

	_, err := s.service.GrantReviewPoints(s.T().Context(), 1, "REV-3")
	s.Require().NoError(err)
}

func (s *PointServiceTestSuite) TestEarnOrderPoints() {
	s.expectDo(1)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 0), nil)
	// VIP rate is 3%: 25000 * 3 / 100 = 750
	s.mockAcctRepo.EXPECT().
		ApplyDeltas(gomock.Any(), int64(1), repoargs.AccountDeltas{Total: 750, Available: 750}).
		Return(s.account(1, 750), nil)
	s.mockLedgerRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c repoargs.LedgerEntryCreate) (*domain.PointLedgerEntry, error) {
			s.Equal(int64(750), c.Amount)
			s.Equal(domain.ReasonOrderComplete, c.ReasonCode)
			return &domain.PointLedgerEntry{ID: 17, UserID: 1, Amount: c.Amount}, nil
		})

	_, err := s.service.EarnOrderPoints(s.T().Context(), 1, "ORD-2", 25000, domain.TierVIP)
	s.Require().NoError(err)
}

func (s *PointServiceTestSuite) TestEarnOrderPointsRoundsToZero() {
	entry, err := s.service.EarnOrderPoints(s.T().Context(), 1, "ORD-2", 50, domain.TierBronze)
	s.Require().NoError(err)
	s.Nil(entry)
}

func (s *PointServiceTestSuite) TestConflictRetrySucceeds() {
	conflict := fmt.Errorf("locking account: %w", domain.ErrConcurrencyConflict)
	gomock.InOrder(
		s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Return(conflict).Times(2),
		s.mockUOW.EXPECT().
			Do(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(context.Context, uow.TX) error) error {
				return fn(s.T().Context(), s.mockTX)
			}),
	)
	s.mockAcctRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(s.account(1, 5000), nil)
	s.mockAcctRepo.EXPECT().
		ApplyDeltas(gomock.Any(), int64(1), gomock.Any()).
		Return(s.account(1, 4000), nil)
	s.mockLedgerRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&domain.PointLedgerEntry{ID: 18, UserID: 1}, nil)

	_, err := s.service.UsePoints(s.T().Context(), 1, 1000, "ORD-1")
	s.Require().NoError(err)
}

func (s *PointServiceTestSuite) TestConflictRetryExhausted() {
	conflict := fmt.Errorf("locking account: %w", domain.ErrConcurrencyConflict)
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Return(conflict).Times(4)

	_, err := s.service.UsePoints(s.T().Context(), 1, 1000, "ORD-1")
	s.Require().ErrorIs(err, domain.ErrConcurrencyConflict)
}
