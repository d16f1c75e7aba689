// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages the client shows for sync
// outcomes.
//
// Keeping them in one place ensures consistent wording between the status
// line, manual sync feedback and the log.
package app

import "github.com/MKhiriev/go-sync-keeper/models"

const (
	// MsgNetworkRelated is shown when the server could not be reached.
	MsgNetworkRelated = "no connection to the sync server, changes are kept on this device"

	// MsgUnauthenticated is shown when the session expired and the user has
	// to sign in again before data can sync.
	MsgUnauthenticated = "session expired, sign in again to sync"

	// MsgServerError is shown when the server rejected a request.
	MsgServerError = "sync server error, will retry later"

	// MsgUnexpected is shown for every other failure.
	MsgUnexpected = "sync failed unexpectedly"

	// MsgSyncInFlight is shown when a manual sync is requested while another
	// run is in progress.
	MsgSyncInFlight = "sync already in progress"
)

// MessageFor returns the message shown for an error of kind.
func MessageFor(kind models.ErrorKind) string {
	switch kind {
	case models.ErrorKindNetworkRelated:
		return MsgNetworkRelated
	case models.ErrorKindUnauthenticated:
		return MsgUnauthenticated
	case models.ErrorKindServerError:
		return MsgServerError
	default:
		return MsgUnexpected
	}
}
