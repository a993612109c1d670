// Package apperr defines the business error kinds the service layer returns.
// Services never hand raw store errors upward; every expected violation maps
// to one of these sentinels and the handler layer translates them to HTTP.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrDuplicateCompany     = errors.New("company with this email or company name already exists")
	ErrDuplicateStudent     = errors.New("student with this email already exists")
	ErrDuplicateActiveJob   = errors.New("an active job with this title already exists for the company")
	ErrDuplicateApplication = errors.New("you have already applied to this job")
	ErrJobNotFound          = errors.New("job not found or no longer accepting applications")
	ErrNotFound             = errors.New("resource not found")
	ErrForbidden            = errors.New("you do not have access to this resource")
	ErrInvalidTransition    = errors.New("invalid application status change")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmptySkill           = errors.New("skill names must not be empty")
	ErrStoreUnavailable     = errors.New("storage temporarily unavailable")
)

// Cross-tenant probes answer ErrNotFound, never ErrForbidden, so an actor
// cannot confirm that somebody else's resource id exists. ErrForbidden is
// reserved for actor-kind mismatches (a student token on a company route).

var statuses = []struct {
	err    error
	status int
}{
	{ErrDuplicateCompany, http.StatusConflict},
	{ErrDuplicateStudent, http.StatusConflict},
	{ErrDuplicateActiveJob, http.StatusConflict},
	{ErrDuplicateApplication, http.StatusConflict},
	{ErrJobNotFound, http.StatusNotFound},
	{ErrNotFound, http.StatusNotFound},
	{ErrForbidden, http.StatusForbidden},
	{ErrInvalidTransition, http.StatusUnprocessableEntity},
	{ErrInvalidCredentials, http.StatusUnauthorized},
	{ErrEmptySkill, http.StatusBadRequest},
	{ErrStoreUnavailable, http.StatusServiceUnavailable},
}

// Public returns the HTTP status and user-facing message for err. Anything
// that is not a known kind reports as a plain 500 so store internals never
// leak to clients.
func Public(err error) (int, string) {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status, s.err.Error()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}

// Store wraps an infrastructure-level failure (connectivity, timeout) as
// ErrStoreUnavailable, keeping the cause for server-side logs.
func Store(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
