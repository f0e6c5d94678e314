package model

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}

type StatusResponse struct {
	Status string `json:"status"`
}

// OSResponse is served by GET /os. Env is null when the environment name is unset.
type OSResponse struct {
	OS  string  `json:"os"`
	Env *string `json:"env"`
}
