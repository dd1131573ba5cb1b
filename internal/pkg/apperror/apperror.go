package apperror

import (
	"errors"
	"net/http"
)

// Kind groups error codes into the categories callers branch on.
type Kind string

const (
	KindNotFound   Kind = "NOT_FOUND"
	KindValidation Kind = "VALIDATION_ERROR"
	KindNetwork    Kind = "NETWORK_ERROR"
	KindServer     Kind = "SERVER_ERROR"
	KindUnknown    Kind = "UNKNOWN"
)

// Machine-readable error codes carried on the wire.
const (
	CodeRestaurantNotFound = "RESTAURANT_NOT_FOUND"
	CodeBookingNotFound    = "BOOKING_NOT_FOUND"
	CodeNotFound           = "NOT_FOUND"
	CodeValidation         = "VALIDATION_ERROR"
	CodeNetwork            = "NETWORK_ERROR"
	CodeServer             = "SERVER_ERROR"
	CodeUnknown            = "UNKNOWN"
)

// Field-level violation codes.
const (
	FieldRequired        = "REQUIRED"
	FieldOutOfRange      = "OUT_OF_RANGE"
	FieldTooShort        = "TOO_SHORT"
	FieldInvalidFormat   = "INVALID_FORMAT"
	FieldSlotUnavailable = "SLOT_UNAVAILABLE"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AppError is a custom error type that includes an HTTP status code, a taxonomy code
// and, for validation failures, the offending fields.
type AppError struct {
	Status  int          // HTTP Status Code (e.g., 404, 422)
	Code    string       // Taxonomy code (e.g., RESTAURANT_NOT_FOUND)
	Message string       // User-facing error message
	Fields  []FieldError // Field violations, only for VALIDATION_ERROR
	Err     error        // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code, so sentinels
// still match errors decoded from a response body.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Kind returns the category of the error code.
func (e *AppError) Kind() Kind {
	switch e.Code {
	case CodeRestaurantNotFound, CodeBookingNotFound, CodeNotFound:
		return KindNotFound
	case CodeValidation:
		return KindValidation
	case CodeNetwork:
		return KindNetwork
	case CodeServer:
		return KindServer
	default:
		return KindUnknown
	}
}

// Retryable reports whether a new invocation may succeed where this one failed.
func (e *AppError) Retryable() bool {
	k := e.Kind()
	return k == KindNetwork || k == KindServer
}

// New creates a new AppError with a status code, taxonomy code and message.
func New(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation creates a VALIDATION_ERROR carrying the given field violations.
func Validation(fields ...FieldError) *AppError {
	return &AppError{
		Status:  http.StatusUnprocessableEntity,
		Code:    CodeValidation,
		Message: "The request contains invalid data",
		Fields:  fields,
	}
}

// Network wraps a transport failure.
func Network(err error) *AppError {
	return Wrap(err, 0, CodeNetwork, "network error, please try again")
}

// From returns err as an AppError. Errors outside the taxonomy become UNKNOWN
// with the original error kept as the cause.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, http.StatusInternalServerError, CodeUnknown, "unexpected error")
}

// KindOf returns the Kind of err, or the empty Kind for a nil error.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return From(err).Kind()
}

// FieldNames returns the violated field names in order, mostly for tests and logging.
func (e *AppError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}
