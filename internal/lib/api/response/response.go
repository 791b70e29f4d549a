package response

// ErrorResponse is the error envelope for every non-2xx reply.
// Details carries the raw upstream error text and is omitted when empty.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func NewErrorWithDetails(msg, details string) ErrorResponse {
	return ErrorResponse{Error: msg, Details: details}
}
