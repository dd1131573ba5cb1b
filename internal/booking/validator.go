package booking

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/nekogravitycat/dineflex-backend/internal/availability"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
)

// Validator checks a Request before it is submitted. Every violated field is
// reported, one error per field.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "trimmed_min", validateTrimmedMin)
	mustRegister(v, "email_domain", validateEmailDomain)
	mustRegister(v, "iso_date", func(fl validator.FieldLevel) bool {
		return availability.ValidDate(fl.Field().String())
	})
	mustRegister(v, "wall_time", func(fl validator.FieldLevel) bool {
		return availability.ValidTime(fl.Field().String())
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

func validateTrimmedMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

// validateEmailDomain requires a dotted domain such as example.com.
func validateEmailDomain(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	at := strings.LastIndexByte(s, '@')
	if at < 0 {
		return false
	}
	labels := strings.Split(s[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" {
			return false
		}
	}
	return len(labels[len(labels)-1]) >= 2
}

// Validate returns req with surrounding whitespace trimmed from the customer
// fields, or a VALIDATION_ERROR listing every violation.
func (v *Validator) Validate(req Request) (Request, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)

	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return Request{}, translate(validationErrs)
		}
		return Request{}, err
	}
	return req, nil
}

func translate(errs validator.ValidationErrors) *apperror.AppError {
	fields := make([]apperror.FieldError, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, apperror.FieldError{
			Field:   e.Field(),
			Code:    fieldCode(e),
			Message: fieldMessage(e),
		})
	}
	return apperror.Validation(fields...)
}

func fieldCode(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return apperror.FieldRequired
	case "min", "max":
		if e.Kind() == reflect.String {
			return apperror.FieldTooShort
		}
		return apperror.FieldOutOfRange
	case "trimmed_min":
		return apperror.FieldTooShort
	default:
		return apperror.FieldInvalidFormat
	}
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min", "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be between 1 and 12", e.Field())
	case "trimmed_min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "email", "email_domain":
		return "Email address format is invalid"
	case "iso_date":
		return "date must be formatted as YYYY-MM-DD"
	case "wall_time":
		return "time must be formatted as HH:MM"
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
