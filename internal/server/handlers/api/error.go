package api

import "fmt"

// APIError is the JSON body of every error response.
type APIError struct {
	Code    string `json:"code" example:"E_NOT_FOUND"`
	Message string `json:"error" example:"not found"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: code=%s, message=%s", e.Code, e.Message)
}
