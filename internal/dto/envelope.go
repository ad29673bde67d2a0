package dto

import "github.com/SscSPs/bookkeeping_app/internal/core/domain"

// Envelope is the body of every JSON response: Data on success, Error on failure.
type Envelope struct {
	Data       any                `json:"data,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
	Error      *ErrorBody         `json:"error,omitempty"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Kind    string       `json:"kind"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError is a single request field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewDataEnvelope(data any) Envelope {
	return Envelope{Data: data}
}

func NewPageEnvelope(data any, pagination domain.Pagination) Envelope {
	return Envelope{Data: data, Pagination: &pagination}
}

func NewErrorEnvelope(kind, message string) Envelope {
	return Envelope{Error: &ErrorBody{Kind: kind, Message: message}}
}
