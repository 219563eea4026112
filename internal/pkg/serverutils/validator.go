package serverutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"presentation-builder-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON keys instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateRequest runs the struct tags of req and reports failures as an
// invalid parameter error naming the offending JSON fields.
func ValidateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperr.InvalidParameter("invalid request: %v", err)
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return apperr.InvalidParameter("%s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required parameter: %s", fe.Field())
	case "required_without":
		return fmt.Sprintf("Missing required parameter: %s or %s", fe.Field(), fe.Param())
	case "min", "gte":
		return fmt.Sprintf("Parameter %s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("Parameter %s must be one of [%s]", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("Parameter %s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("Parameter %s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
