package handler

// ErrorResponse is the body of every failed request. Which keys are set
// depends on the route: account routes report under "error", login under
// "message", and unexpected failures add "details".
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
