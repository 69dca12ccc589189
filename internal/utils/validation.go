package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/piresc/wheelshare/internal/pkg/apperror"
	"github.com/piresc/wheelshare/internal/pkg/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	validate.RegisterValidation("payment_method", validatePaymentMethod)
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return models.PaymentMethod(fl.Field().String()).Valid()
}

// ValidateStruct checks s against its validate tags and reports failures as a validation error
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.Validation("invalid request: %v", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return apperror.Validation("invalid request: %s", strings.Join(msgs, "; "))
}

// EchoValidator adapts ValidateStruct to echo's Validator interface
type EchoValidator struct{}

// Validate implements echo.Validator
func (EchoValidator) Validate(i interface{}) error {
	return ValidateStruct(i)
}
