package dto

// APIResponse is the uniform envelope every service operation returns.
// Each operation builds its own instance; envelopes are never shared
// across requests.
type APIResponse struct {
	StatusCode    int      `json:"statusCode"`
	Success       bool     `json:"success"`
	Result        any      `json:"result,omitempty"`
	ErrorMessages []string `json:"errorMessages,omitempty"`
}

// NewOKResponse wraps a successful result with the given status code.
func NewOKResponse(status int, result any) *APIResponse {
	return &APIResponse{
		StatusCode: status,
		Success:    true,
		Result:     result,
	}
}

// NewErrorResponse builds a failure envelope with the given messages.
func NewErrorResponse(status int, messages ...string) *APIResponse {
	return &APIResponse{
		StatusCode:    status,
		Success:       false,
		ErrorMessages: messages,
	}
}
