// Package api defines the response envelope shared by every endpoint.
package api

// Envelope wraps responses for consistency: data on success, error on failure,
// never both.
type Envelope[T any] struct {
	Data  *T         `json:"data"`
	Error *ErrorBody `json:"error"`
}

// ErrorBody describes a failure in a predictable structured format.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewSuccessEnvelope constructs a success envelope.
func NewSuccessEnvelope[T any](data T) Envelope[T] {
	d := data
	return Envelope[T]{Data: &d}
}

// NewErrorEnvelope constructs an error envelope with no data.
func NewErrorEnvelope[T any](code, msg string) Envelope[T] {
	return Envelope[T]{Error: &ErrorBody{Code: code, Message: msg}}
}
