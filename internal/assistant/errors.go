package assistant

import "errors"

var (
	// ErrMissingAPIKey is returned when no completion API key is configured.
	// Startup does not require the key; the first request needing it fails.
	ErrMissingAPIKey = errors.New("assistant api key is not configured")

	// ErrEmptyMessage marks a request without a usable message; handlers
	// map it to a 400.
	ErrEmptyMessage = errors.New("message is required.")

	// ErrEmptyReply is returned when the upstream reply carries no content.
	ErrEmptyReply = errors.New("assistant returned an empty reply")
)
