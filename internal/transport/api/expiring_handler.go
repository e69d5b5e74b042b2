package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"net/http"
)

type ExpiringHandler struct {
	svs ExpirationServicer
}

func NewExpiringHandler(svs ExpirationServicer) *ExpiringHandler {
	return &ExpiringHandler{
		svs: svs,
	}
}

type ExpiringUserResponse struct {
	UserID         int64  `json:"userId"`
	Amount         int64  `json:"amount"`
	EarliestExpiry string `json:"earliestExpiry"`
}

// Index reports users whose points expire inside the policy notify window.
// The notification collaborator polls this.
func (h *ExpiringHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.svs.ExpiringUsers(reqCtx)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	response := make([]ExpiringUserResponse, len(users))
	for i, user := range users {
		response[i] = ExpiringUserResponse{
			UserID:         user.UserID,
			Amount:         user.Amount,
			EarliestExpiry: user.EarliestExpiry.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, response)
}
