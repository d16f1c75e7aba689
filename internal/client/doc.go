// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It restores the user session, then runs the sync scheduler, the per-group
// status indicators and the session watcher until shutdown.
package client
