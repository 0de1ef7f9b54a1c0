package ingestsvc

import (
	"errors"
	"fmt"
)

// ErrUnauthorized rejects a submission whose bearer token is missing or
// wrong. No entry is created and no counter moves.
var ErrUnauthorized = errors.New("ingest: unauthorized")

// ValidationError rejects a malformed submission before any store
// interaction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ingest: invalid %s: %s", e.Field, e.Reason)
}
