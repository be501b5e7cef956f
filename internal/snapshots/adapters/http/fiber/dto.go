package fiber

import "time"

type EntryResponse struct {
	ID        string    `json:"id" example:"6f1c2a9e-4a53-4c1e-9d1b-2b8e0f1f6c11"`
	CreatedAt time.Time `json:"created_at"`
	Summary   any       `json:"summary"`
	Config    any       `json:"config,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"snapshot_not_found"`
	Message string `json:"message,omitempty"`
}
