package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hanmall/pointledger/internal/domain"
)

// abortWithDomainError maps typed domain errors to HTTP statuses. Errors are
// never classified by message text, only by errors.Is against the sentinels.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrBelowMinimumUse):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInsufficientBalance):
		_ = c.AbortWithError(http.StatusPaymentRequired, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrConcurrencyConflict):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

func userIDFromPath(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil || userID <= 0 {
		c.AbortWithStatus(http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}
