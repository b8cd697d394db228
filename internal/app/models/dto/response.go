package dto

// MessageResponse is the standard success envelope; handlers attach the
// affected resource alongside it via gin.H.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the single-field error envelope all endpoints share.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
