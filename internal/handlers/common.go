package handlers

import "time"

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a message for the visitor.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports the state of each backing service.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}
