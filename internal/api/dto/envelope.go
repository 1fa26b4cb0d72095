package dto

// Envelope is the uniform response wrapper.
type Envelope struct {
	Status  int       `json:"status"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
	Meta    *PageMeta `json:"meta,omitempty"`
}

// PageMeta carries pagination totals for list responses.
type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
