// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/session"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// ResolveError classifies err raised while syncing entity. Checks run in
// order: authentication first, so a 401 is never reported as a server
// error, then connectivity, then server responses.
func ResolveError(entity string, err error) models.ResolvedError {
	return models.ResolvedError{
		Kind:   classify(err),
		Entity: entity,
		Cause:  err,
	}
}

func classify(err error) models.ErrorKind {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, session.ErrNoSession):
		return models.ErrorKindUnauthenticated

	case isNetworkRelated(err):
		return models.ErrorKindNetworkRelated
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode >= http.StatusBadRequest {
		return classifyHTTP(httpErr)
	}

	return models.ErrorKindUnexpected
}

// classifyHTTP maps a 4xx/5xx response. Only responses carrying the sync
// server's error payload are server errors. A gateway status without one
// comes from a proxy that could not reach the server; any other bare
// response means the client talked to something that is not the sync API.
func classifyHTTP(httpErr *adapter.HTTPError) models.ErrorKind {
	if httpErr.Payload != nil {
		return models.ErrorKindServerError
	}

	switch httpErr.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return models.ErrorKindNetworkRelated
	default:
		return models.ErrorKindUnexpected
	}
}

func isNetworkRelated(err error) bool {
	if errors.Is(err, adapter.ErrServerUnreachable) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	// *url.Error and *net.OpError both implement net.Error.
	var netErr net.Error
	return errors.As(err, &netErr)
}
