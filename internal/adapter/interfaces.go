// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to exchange sync records with
// the remote server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// services from the protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are returned as [*HTTPError]; a 401 additionally matches
// [ErrUnauthorized] and transport failures match [ErrServerUnreachable], so
// callers can classify failures with [errors.Is] and [errors.As].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Ping checks that the server is reachable.
	Ping(ctx context.Context) error

	// Push sends one batch of encoded records of entity. The response lists
	// the records the server rejected; every other record was accepted.
	Push(ctx context.Context, entity string, records []json.RawMessage) (models.PushResponse, error)

	// Pull fetches up to limit records of entity changed after processToken.
	// An empty processToken starts from the beginning.
	Pull(ctx context.Context, entity, processToken string, limit int) (models.RawPullResponse, error)
}
