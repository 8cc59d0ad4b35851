package api

// MessageResponse is the HTTP body for errors and confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}
