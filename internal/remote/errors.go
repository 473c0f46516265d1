// ABOUTME: Typed error taxonomy for the remote row store.
// ABOUTME: Distinguishes rate limiting (retryable) from auth, permission, and transport failures.
package remote

import "fmt"

// NetworkError is a transient transport or server failure. It is not
// retried; only the RateLimitedError subtype is.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RateLimitedError means the backend rejected the call with a rate limit.
// The retry wrapper recognizes this type and backs off before retrying.
type RateLimitedError struct {
	Op string
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%s: rate limited", e.Op)
}

// AuthorizationError means the caller is not permitted to write the target
// user's data. Fatal; never retried.
type AuthorizationError struct {
	Op     string
	UserID string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s: not authorized to modify data for user %s", e.Op, e.UserID)
}

// PermissionDeniedError is a backend-level row-security rejection.
// Surfaced to the caller as-is; never retried.
type PermissionDeniedError struct {
	Op      string
	Message string
}

func (e *PermissionDeniedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: permission denied", e.Op)
	}
	return fmt.Sprintf("%s: permission denied: %s", e.Op, e.Message)
}
