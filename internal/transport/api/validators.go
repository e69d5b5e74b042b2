package api

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"

	"github.com/hanmall/pointledger/internal/domain"
)

// validateReasonCode checks the field against the known reason codes.
func validateReasonCode(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch domain.ReasonCode(str) {
	case domain.ReasonSignup, domain.ReasonReviewWrite, domain.ReasonOrderComplete,
		domain.ReasonOrderPayment, domain.ReasonOrderCancelRefund, domain.ReasonEventReward,
		domain.ReasonAdminGrant, domain.ReasonAdminDeduct, domain.ReasonAutoExpiration:
		return true
	}
	return false
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("reason_code", validateReasonCode); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
