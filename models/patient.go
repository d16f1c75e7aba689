// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Patient is the reference payload for the "patients" entity. It is pushed
// from and pulled into the device.
type Patient struct {
	ID          string     `json:"id"`
	FullName    string     `json:"full_name"`
	Gender      string     `json:"gender"`
	DateOfBirth *string    `json:"date_of_birth,omitempty"`
	Age         *int       `json:"age,omitempty"`
	Status      string     `json:"status"`
	FacilityID  string     `json:"registration_facility_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// RecordID implements [Payload].
func (p Patient) RecordID() string { return p.ID }
