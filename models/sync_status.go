// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// SyncStatus is the synchronization state of a single local record.
//
// Only [SyncStatusPending] records are candidates for push.
// [SyncStatusInvalid] is terminal: such records are never retried
// automatically. [SyncStatusDone] means the local copy and the server copy
// were reconciled as of the last successful exchange.
type SyncStatus string

const (
	// SyncStatusPending marks a record that carries a local edit not yet
	// acknowledged by the server.
	SyncStatusPending SyncStatus = "PENDING"

	// SyncStatusDone marks a record that is in sync with the server.
	SyncStatusDone SyncStatus = "DONE"

	// SyncStatusInvalid marks a record the server rejected with validation
	// errors.
	SyncStatusInvalid SyncStatus = "INVALID"
)

// Valid reports whether s is one of the known statuses.
func (s SyncStatus) Valid() bool {
	switch s {
	case SyncStatusPending, SyncStatusDone, SyncStatusInvalid:
		return true
	}
	return false
}

// ParseSyncStatus converts a stored column value into a [SyncStatus].
func ParseSyncStatus(raw string) (SyncStatus, error) {
	s := SyncStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown sync status %q", raw)
	}
	return s, nil
}

// Payload is implemented by every domain type that can be synchronized.
// RecordID must return the stable identifier assigned at creation; it is the
// key used by merges, so it must never be reused for another record.
type Payload interface {
	RecordID() string
}

// SyncRecord is a domain payload together with its local sync bookkeeping.
type SyncRecord[T any] struct {
	// ID is the stable record identifier (equal to Payload.RecordID()).
	ID string `json:"id"`

	// Payload is the domain value.
	Payload T `json:"payload"`

	// SyncStatus is the current synchronization state.
	SyncStatus SyncStatus `json:"sync_status"`

	// CreatedAt is the local creation time.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the local modification time. It never decreases for a
	// given ID.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPending reports whether the record still has to be pushed.
func (r SyncRecord[T]) IsPending() bool {
	return r.SyncStatus == SyncStatusPending
}
