// Package pagepkg provides the canonical page type for paginated list
// endpoints.
//
// The backend answers list requests with either a bare JSON array or an
// envelope of the form {"data": [...], "pagination": {"totalPages": N}}.
// Both shapes are decoded here into a single Page value so nothing past
// the network boundary ever sees two shapes.
package pagepkg

import "encoding/json"

// Page is the canonical form of one fetched page.
type Page[T any] struct {
	Items      []T
	TotalPages int
	// HasTotal is true when the backend sent a pagination envelope.
	// Without it the end of data can only be inferred from a short page.
	HasTotal bool
}

type envelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		TotalPages int `json:"totalPages"`
	} `json:"pagination"`
}

// Decode unmarshals a list response body of either supported shape.
func Decode[T any](body []byte) (Page[T], error) {
	var page Page[T]

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, &page.Items); err != nil {
			return Page[T]{}, err
		}

		if env.Pagination != nil {
			page.TotalPages = env.Pagination.TotalPages
			page.HasTotal = true
		}

		return page, nil
	}

	if err := json.Unmarshal(body, &page.Items); err != nil {
		return Page[T]{}, err
	}

	return page, nil
}
