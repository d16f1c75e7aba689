package models

import "encoding/json"

// ValidationError is a per-record rejection reported by the server for a
// pushed batch.
type ValidationError struct {
	// ID is the identifier of the rejected record.
	ID string `json:"id"`

	// Messages are the human readable validation messages.
	Messages []string `json:"messages"`
}

// PushResponse is returned by the server for one pushed batch. Records whose
// ids are absent from ValidationErrors are treated as accepted.
type PushResponse struct {
	ValidationErrors []ValidationError `json:"errors"`
}

// InvalidIDs returns the ids of all rejected records in response order.
func (p PushResponse) InvalidIDs() []string {
	ids := make([]string, 0, len(p.ValidationErrors))
	for _, ve := range p.ValidationErrors {
		ids = append(ids, ve.ID)
	}
	return ids
}

// PullResponse is one page of remote payloads together with the opaque
// continuation token for the next page.
type PullResponse[P any] struct {
	Payloads     []P    `json:"records"`
	ProcessToken string `json:"process_token"`
}

// RawPullResponse is a pull page before payloads are decoded into a concrete
// entity type.
type RawPullResponse = PullResponse[json.RawMessage]

// PushRequest is the body of a push call.
type PushRequest struct {
	Records []json.RawMessage `json:"records"`
}
