// Package common defines shared constants and sentinel errors used across
// the client stores and the dev server. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAuthFailed       = errors.New("invalid email or password")

	// Transport-level errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")

	// Cart mutation errors.
	ErrMutationPending = errors.New("cart mutation already in progress")

	// Feed errors.
	ErrPostingNotAllowed = errors.New("posting requires a paid subscription tier")
)
