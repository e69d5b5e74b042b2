package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/hanmall/pointledger/internal/domain"
	"github.com/hanmall/pointledger/internal/service"
	"github.com/hanmall/pointledger/internal/transport/api/mocks"
	"github.com/hanmall/pointledger/internal/transport/api/testutils"
)

type PointsHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPoints   *mocks.MockPointServicer
	mockExpiring *mocks.MockExpirationServicer
	router       *gin.Engine
}

func TestPointsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PointsHandlerTestSuite))
}

func (s *PointsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.mockPoints = mocks.NewMockPointServicer(s.ctrl)
	s.mockExpiring = mocks.NewMockExpirationServicer(s.ctrl)

	router, err := New(RouterArgs{
		PointService:      s.mockPoints,
		ExpirationService: s.mockExpiring,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *PointsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PointsHandlerTestSuite) entry() *domain.PointLedgerEntry {
	return &domain.PointLedgerEntry{
		ID:           42,
		CreatedAt:    time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		UserID:       1,
		Type:         domain.EntryTypeEarned,
		Amount:       1000,
		BalanceAfter: 1000,
		Reason:       "event reward",
		ReasonCode:   domain.ReasonEventReward,
	}
}

func (s *PointsHandlerTestSuite) TestBalance() {
	s.mockPoints.EXPECT().
		GetBalance(gomock.Any(), int64(1)).
		Return(&domain.PointAccount{UserID: 1, TotalPoints: 1500, AvailablePoints: 1200, UsedPoints: 300}, nil)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/api/users/1/points/balance",
	})
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body BalanceResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(int64(1), body.UserID)
	s.Equal(int64(1200), body.AvailablePoints)
	s.Equal(int64(300), body.UsedPoints)
}

func (s *PointsHandlerTestSuite) TestBalanceBadUserID() {
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/api/users/abc/points/balance",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *PointsHandlerTestSuite) TestEarn() {
	s.mockPoints.EXPECT().
		EarnPoints(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.EarnPointsArgs) (*domain.PointLedgerEntry, error) {
			s.Equal(int64(1), args.UserID)
			s.Equal(int64(1000), args.Amount)
			s.Equal(domain.ReasonEventReward, args.ReasonCode)
			return s.entry(), nil
		})

	body := `{"amount":1000,"reason":"event reward","reasonCode":"EVENT_REWARD"}`
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/users/1/points/earn",
		Body:   strings.NewReader(body),
	}, testutils.WithJSONBody())
	defer resp.Body.Close()

	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var entry EntryResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&entry))
	s.Equal(int64(42), entry.ID)
	s.Equal("EARNED", entry.Type)
}

func (s *PointsHandlerTestSuite) TestEarnUnknownReasonCode() {
	body := `{"amount":1000,"reason":"r","reasonCode":"BECAUSE"}`
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/users/1/points/earn",
		Body:   strings.NewReader(body),
	}, testutils.WithJSONBody())
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *PointsHandlerTestSuite) TestUse() {
	s.mockPoints.EXPECT().
		UsePoints(gomock.Any(), int64(1), int64(1000), "ORD-1").
		Return(s.entry(), nil)

	body := `{"amount":1000,"orderId":"ORD-1"}`
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/users/1/points/use",
		Body:   strings.NewReader(body),
	}, testutils.WithJSONBody())
	defer resp.Body.Close()

	s.Equal(http.StatusCreated, resp.StatusCode)
}

func (s *PointsHandlerTestSuite) TestUseBelowMinimum() {
	s.mockPoints.EXPECT().
		UsePoints(gomock.Any(), int64(1), int64(500), "ORD-1").
		Return(nil, fmt.Errorf("using points: %w",
			&domain.BelowMinimumUseError{Amount: 500, Minimum: 1000}))

	body := `{"amount":500,"orderId":"ORD-1"}`
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/users/1/points/use",
		Body:   strings.NewReader(body),
	}, testutils.WithJSONBody())
	defer resp.Body.Close()

	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *PointsHandlerTestSuite) TestUseInsufficientBalance() {
	s.mockPoints.EXPECT().
		UsePoints(gomock.Any(), int64(1), int64(2000), "ORD-1").
		Return(nil, fmt.Errorf("using points: %w",
			&domain.InsufficientBalanceError{Requested: 2000, Available: 1500}))

	body := `{"amount":2000,"orderId":"ORD-1"}`
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/users/1/points/use",
		Body:   strings.NewReader(body),
	}, testutils.WithJSONBody())
	defer resp.Body.Close()

	s.Equal(http.StatusPaymentRequired, resp.StatusCode)
}

func (s *PointsHandlerTestSuite) TestUseConcurrencyConflict() {
	s.mockPoints.EXPECT().
		UsePoints(gomock.Any(), int64(1), int64(1000), "ORD-1").
		Return(nil, fmt.Errorf("using points: %w", domain.ErrConcurrencyConflict))

	body := `{"amount":1000,"orderId":"ORD-1"}`
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/users/1/points/use",
		Body:   strings.NewReader(body),
	}, testutils.WithJSONBody())
	defer resp.Body.Close()

	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *PointsHandlerTestSuite) TestAdjust() {
	s.mockPoints.EXPECT().
		AdjustPoints(gomock.Any(), int64(1), int64(-300), "cs compensation rollback", "admin-9").
		Return(s.entry(), nil)

	body := `{"amount":-300,"reason":"cs compensation rollback","adminId":"admin-9"}`
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/users/1/points/adjust",
		Body:   strings.NewReader(body),
	}, testutils.WithJSONBody())
	defer resp.Body.Close()

	s.Equal(http.StatusCreated, resp.StatusCode)
}

func (s *PointsHandlerTestSuite) TestCancel() {
	s.mockPoints.EXPECT().
		CancelPoints(gomock.Any(), "ORD-1").
		Return(s.entry(), nil)

	body := `{"orderId":"ORD-1"}`
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/points/cancel",
		Body:   strings.NewReader(body),
	}, testutils.WithJSONBody())
	defer resp.Body.Close()

	s.Equal(http.StatusCreated, resp.StatusCode)
}

func (s *PointsHandlerTestSuite) TestCancelNoUsage() {
	s.mockPoints.EXPECT().
		CancelPoints(gomock.Any(), "ORD-404").
		Return(nil, nil)

	body := `{"orderId":"ORD-404"}`
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/points/cancel",
		Body:   strings.NewReader(body),
	}, testutils.WithJSONBody())
	defer resp.Body.Close()

	s.Equal(http.StatusNoContent, resp.StatusCode)
}

func (s *PointsHandlerTestSuite) TestHistory() {
	entries := []domain.PointLedgerEntry{*s.entry()}
	s.mockPoints.EXPECT().
		GetHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.HistoryArgs) ([]domain.PointLedgerEntry, int64, error) {
			s.Equal(int64(1), args.UserID)
			s.Require().NotNil(args.Type)
			s.Equal(domain.EntryTypeEarned, *args.Type)
			s.Equal(uint(2), args.Page)
			s.Equal(uint(10), args.Limit)
			return entries, 11, nil
		})

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/api/users/1/points/history?type=EARNED&page=2&limit=10",
	})
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body HistoryResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(int64(11), body.Total)
	s.Require().Len(body.Entries, 1)
	s.Equal(int64(42), body.Entries[0].ID)
}

func (s *PointsHandlerTestSuite) TestHistoryUnknownType() {
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/api/users/1/points/history?type=REFUNDED",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}
