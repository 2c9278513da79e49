package dto

// ErrorResponse is the body of every error reply.
// Code is set for domain validation failures, e.g. "InvalidAmount".
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
