// Package common defines shared constants and sentinel errors used across
// the portal's storage and admin layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Admin session errors.
	ErrorAccessDenied = errors.New("access denied")
	ErrorBusy         = errors.New("operation already in progress")
	ErrorNotConfirmed = errors.New("deletion not confirmed")
	ErrorKindMismatch = errors.New("record kind does not match active kind")
	ErrorKindReadOnly = errors.New("kind has no editable form")
	ErrorNotLoggedIn  = errors.New("not logged in")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
)
