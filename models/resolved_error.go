package models

import "fmt"

// ErrorKind classifies a failure raised during a sync run.
type ErrorKind string

const (
	// ErrorKindNetworkRelated covers connectivity failures and timeouts.
	ErrorKindNetworkRelated ErrorKind = "NETWORK_RELATED"
	// ErrorKindUnauthenticated covers rejected or missing sessions.
	ErrorKindUnauthenticated ErrorKind = "UNAUTHENTICATED"
	// ErrorKindServerError covers 4xx/5xx responses other than 401.
	ErrorKindServerError ErrorKind = "SERVER_ERROR"
	// ErrorKindUnexpected covers everything else, usually a client defect.
	ErrorKindUnexpected ErrorKind = "UNEXPECTED"
)

// ResolvedError is a classified sync failure. Entity is empty when the
// failure is not tied to a single unit.
type ResolvedError struct {
	Kind   ErrorKind
	Entity string
	Cause  error
}

func (e ResolvedError) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Kind, e.Entity, e.Cause)
}

func (e ResolvedError) Unwrap() error {
	return e.Cause
}
