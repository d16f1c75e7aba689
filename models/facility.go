package models

import "time"

// Facility is reference data pulled from the server. It is never edited on
// the device, so its unit only pulls.
type Facility struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	FacilityType string     `json:"facility_type"`
	District     string     `json:"district"`
	State        string     `json:"state"`
	Country      string     `json:"country"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// RecordID implements [Payload].
func (f Facility) RecordID() string { return f.ID }
