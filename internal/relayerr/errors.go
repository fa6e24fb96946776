// Package relayerr defines the error taxonomy shared across the relay.
package relayerr

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated means the shared bearer secret was missing or wrong.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrStoreDegraded marks profile store failures that were absorbed into a
// fallback context summary. It is logged, never returned past the hydrator.
var ErrStoreDegraded = errors.New("profile store degraded")

// ConfigError is a missing required secret or setting. Fatal at startup,
// fails the specific call fast otherwise.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required setting %s", e.Setting)
}

// UpstreamAuthError is a non-success status from the voice platform's token
// endpoint. Status and body are kept for diagnostics.
type UpstreamAuthError struct {
	Status int
	Body   string
}

func (e *UpstreamAuthError) Error() string {
	return fmt.Sprintf("upstream auth failed: status %d: %s", e.Status, e.Body)
}

// UpstreamTimeoutError means an upstream call exceeded its time-to-first-byte
// bound.
type UpstreamTimeoutError struct {
	Op string
}

func (e *UpstreamTimeoutError) Error() string {
	return fmt.Sprintf("upstream timeout: %s", e.Op)
}

// UpstreamStreamError wraps a completion backend failure.
type UpstreamStreamError struct {
	Op  string
	Err error
}

func (e *UpstreamStreamError) Error() string {
	return fmt.Sprintf("upstream stream error: %s: %v", e.Op, e.Err)
}

func (e *UpstreamStreamError) Unwrap() error { return e.Err }
