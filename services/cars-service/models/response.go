package models

// ErrorResponse is the error body shape shared by all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}
