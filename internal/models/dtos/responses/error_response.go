package responses

// ErrorResponse is the fixed body returned for every error status.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
