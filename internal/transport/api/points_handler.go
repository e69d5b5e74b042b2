package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hanmall/pointledger/internal/domain"
	"github.com/hanmall/pointledger/internal/service"

	"net/http"
)

type PointsHandler struct {
	svs PointServicer
}

func NewPointsHandler(svs PointServicer) *PointsHandler {
	return &PointsHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	UserID          int64 `json:"userId"`
	TotalPoints     int64 `json:"totalPoints"`
	AvailablePoints int64 `json:"availablePoints"`
	PendingPoints   int64 `json:"pendingPoints"`
	UsedPoints      int64 `json:"usedPoints"`
	ExpiredPoints   int64 `json:"expiredPoints"`
}

func (h *PointsHandler) Balance(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.svs.GetBalance(reqCtx, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		UserID:          account.UserID,
		TotalPoints:     account.TotalPoints,
		AvailablePoints: account.AvailablePoints,
		PendingPoints:   account.PendingPoints,
		UsedPoints:      account.UsedPoints,
		ExpiredPoints:   account.ExpiredPoints,
	})
}

type EntryResponse struct {
	ID           int64   `json:"id"`
	Type         string  `json:"type"`
	Amount       int64   `json:"amount"`
	BalanceAfter int64   `json:"balanceAfter"`
	Reason       string  `json:"reason"`
	ReasonCode   string  `json:"reasonCode"`
	RelatedID    *string `json:"relatedId,omitempty"`
	RelatedType  *string `json:"relatedType,omitempty"`
	ExpiresAt    *string `json:"expiresAt,omitempty"`
	ExpiredAt    *string `json:"expiredAt,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

func newEntryResponse(entry *domain.PointLedgerEntry) *EntryResponse {
	resp := &EntryResponse{
		ID:           entry.ID,
		Type:         string(entry.Type),
		Amount:       entry.Amount,
		BalanceAfter: entry.BalanceAfter,
		Reason:       entry.Reason,
		ReasonCode:   string(entry.ReasonCode),
		RelatedID:    entry.RelatedID,
		CreatedAt:    entry.CreatedAt.Format(time.RFC3339),
	}
	if entry.RelatedType != nil {
		relatedType := string(*entry.RelatedType)
		resp.RelatedType = &relatedType
	}
	if entry.ExpiresAt != nil {
		expiresAt := entry.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &expiresAt
	}
	if entry.ExpiredAt != nil {
		expiredAt := entry.ExpiredAt.Format(time.RFC3339)
		resp.ExpiredAt = &expiredAt
	}
	return resp
}

type HistoryQuery struct {
	Type  string `form:"type" binding:"omitempty,oneof=EARNED USED EXPIRED CANCELLED ADJUSTED"`
	From  string `form:"from" binding:"omitempty"`
	To    string `form:"to" binding:"omitempty"`
	Page  uint   `form:"page" binding:"omitempty,gte=1"`
	Limit uint   `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

type HistoryResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int64           `json:"total"`
	Page    uint            `json:"page"`
	Limit   uint            `json:"limit"`
}

func (h *PointsHandler) History(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	var query HistoryQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	args := service.HistoryArgs{
		UserID: userID,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if query.Type != "" {
		entryType := domain.EntryType(query.Type)
		args.Type = &entryType
	}
	if query.From != "" {
		from, parseErr := time.Parse(time.RFC3339, query.From)
		if parseErr != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		args.From = &from
	}
	if query.To != "" {
		to, parseErr := time.Parse(time.RFC3339, query.To)
		if parseErr != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		args.To = &to
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, total, err := h.svs.GetHistory(reqCtx, args)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	resp := HistoryResponse{
		Entries: make([]EntryResponse, len(entries)),
		Total:   total,
		Page:    max(args.Page, 1),
		Limit:   args.Limit,
	}
	for i := range entries {
		resp.Entries[i] = *newEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, resp)
}

type EarnParams struct {
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	Reason      string  `json:"reason" binding:"required"`
	ReasonCode  string  `json:"reasonCode" binding:"required,reason_code"`
	RelatedID   *string `json:"relatedId"`
	RelatedType *string `json:"relatedType" binding:"omitempty,oneof=ORDER REVIEW EVENT ADMIN"`
	ExpiresAt   *string `json:"expiresAt"`
}

func (h *PointsHandler) Earn(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	var params EarnParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	args := service.EarnPointsArgs{
		UserID:     userID,
		Amount:     params.Amount,
		Reason:     params.Reason,
		ReasonCode: domain.ReasonCode(params.ReasonCode),
		RelatedID:  params.RelatedID,
	}
	if params.RelatedType != nil {
		relatedType := domain.RelatedType(*params.RelatedType)
		args.RelatedType = &relatedType
	}
	if params.ExpiresAt != nil {
		expiresAt, parseErr := time.Parse(time.RFC3339, *params.ExpiresAt)
		if parseErr != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		args.ExpiresAt = &expiresAt
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entry, err := h.svs.EarnPoints(reqCtx, args)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newEntryResponse(entry))
}

type UseParams struct {
	Amount  int64  `json:"amount" binding:"required,gt=0"`
	OrderID string `json:"orderId" binding:"required"`
}

func (h *PointsHandler) Use(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	var params UseParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entry, err := h.svs.UsePoints(reqCtx, userID, params.Amount, params.OrderID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newEntryResponse(entry))
}

type AdjustParams struct {
	Amount  int64  `json:"amount" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
	AdminID string `json:"adminId" binding:"required"`
}

func (h *PointsHandler) Adjust(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	var params AdjustParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entry, err := h.svs.AdjustPoints(reqCtx, userID, params.Amount, params.Reason, params.AdminID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newEntryResponse(entry))
}

type CancelParams struct {
	OrderID string `json:"orderId" binding:"required"`
}

func (h *PointsHandler) Cancel(c *gin.Context) {
	var params CancelParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entry, err := h.svs.CancelPoints(reqCtx, params.OrderID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	if entry == nil {
		// no points were used on this order
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, newEntryResponse(entry))
}
