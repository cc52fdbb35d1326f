package models

// Response is the uniform envelope returned by every API endpoint.
// Success is always present; exactly one of Data/Error is populated on
// non-trivial responses. Message carries a human-readable confirmation on
// writes ("Referral submitted successfully").
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Pagination describes one page of a list response. TotalPages is
// ceil(Total/Limit) and is computed by the store, not the client.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListResponse is the envelope for paginated list endpoints.
type ListResponse struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// LoginResponse is the payload returned by a successful login or verify.
type LoginResponse struct {
	Token       string      `json:"token,omitempty"`
	User        User        `json:"user"`
	Permissions Permissions `json:"permissions"`
}

// HealthStatus reports process liveness and store connectivity.
type HealthStatus struct {
	Success  bool   `json:"success"`
	Status   string `json:"status"`
	Database string `json:"database"`
}
