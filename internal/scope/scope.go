// Package scope carries the authenticated actor identity through a request.
// The identity comes from a verified session token; nothing in a request body
// is ever trusted to name the acting company or student.
package scope

import "github.com/campushire/campushire/internal/apperr"

type Kind string

const (
	KindCompany Kind = "company"
	KindStudent Kind = "student"
)

// Actor is an authenticated caller. ID is the company or student primary key
// depending on Kind.
type Actor struct {
	Kind Kind
	ID   uint
}

// Require checks that the actor is of the given kind. A mismatch is
// ErrForbidden: the caller is authenticated, just not the right kind of
// actor for the resource. Cross-tenant checks within a kind live in the
// services, which answer ErrNotFound instead so foreign ids stay
// unconfirmable.
func (a Actor) Require(kind Kind) error {
	if a.Kind != kind {
		return apperr.ErrForbidden
	}
	return nil
}
