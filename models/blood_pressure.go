package models

import "time"

// BloodPressure is the reference payload for the "blood_pressures" entity, a
// single measurement taken for a patient.
type BloodPressure struct {
	ID         string     `json:"id"`
	PatientID  string     `json:"patient_id"`
	FacilityID string     `json:"facility_id"`
	Systolic   int        `json:"systolic"`
	Diastolic  int        `json:"diastolic"`
	RecordedAt time.Time  `json:"recorded_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// RecordID implements [Payload].
func (b BloodPressure) RecordID() string { return b.ID }
