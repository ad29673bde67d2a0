package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/utils/rut"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// SetupValidator configures gin's validator: json field names in errors, decimals validated by value,
// and the custom tags rut, txtype, decimalgt0 and decimalgte0.
func SetupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return RegisterValidations(v)
}

// RegisterValidations installs the custom tags on v.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	// decimals reach the tag functions as their string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	validations := map[string]validator.Func{
		"rut": func(fl validator.FieldLevel) bool {
			return rut.Validate(fl.Field().String())
		},
		"txtype": func(fl validator.FieldLevel) bool {
			return domain.TransactionType(fl.Field().String()).IsValid()
		},
		"decimalgt0": func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			return err == nil && d.IsPositive()
		},
		"decimalgte0": func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			return err == nil && !d.IsNegative()
		},
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// FormatValidationErrors turns validator errors into per-field messages. It returns nil for other errors.
func FormatValidationErrors(err error) []dto.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	fields := make([]dto.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, dto.FieldError{
			Field:   e.Field(),
			Message: getValidationMessage(e),
		})
	}
	return fields
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "rut":
		return "Invalid RUT"
	case "txtype":
		return "Must be one of: income expense"
	case "decimalgt0":
		return "Must be a number greater than 0"
	case "decimalgte0":
		return "Must be a number greater than or equal to 0"
	default:
		return "Invalid value"
	}
}
