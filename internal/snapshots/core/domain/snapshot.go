package domain

import (
	"encoding/json"
	"time"
)

// Entry is a cached query result. Payload is never modified after Save.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Payload   any       `json:"-"`
	Summary   any       `json:"summary"`
	Config    any       `json:"config,omitempty"`
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PageParams drive paginated retrieval. Nil Skip/Limit and an empty SortKey
// mean "not requested".
type PageParams struct {
	Skip      *int
	Limit     *int
	SortKey   string
	SortOrder SortOrder
}

func (p PageParams) IsZero() bool {
	return p.Skip == nil && p.Limit == nil && p.SortKey == "" && p.SortOrder == ""
}

type Pagination struct {
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

type Page struct {
	Data       []json.RawMessage `json:"data"`
	Pagination Pagination        `json:"pagination"`
}
