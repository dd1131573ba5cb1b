package apperror

import "net/http"

// Body is the JSON shape of an error response.
type Body struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details *Details `json:"details,omitempty"`
}

// Details holds the optional structured part of an error body.
type Details struct {
	Fields []FieldError `json:"fields,omitempty"`
}

// Body converts the error into its wire representation.
func (e *AppError) Body() Body {
	b := Body{Code: e.Code, Message: e.Message}
	if len(e.Fields) > 0 {
		b.Details = &Details{Fields: e.Fields}
	}
	return b
}

// FromBody rebuilds an AppError from a decoded error response.
// An empty code is classified from the HTTP status.
func FromBody(status int, b Body) *AppError {
	e := &AppError{
		Status:  status,
		Code:    b.Code,
		Message: b.Message,
	}
	if b.Details != nil {
		e.Fields = b.Details.Fields
	}
	if e.Code == "" {
		e.Code = codeForStatus(status)
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return CodeValidation
	case status >= 500:
		return CodeServer
	default:
		return CodeUnknown
	}
}
