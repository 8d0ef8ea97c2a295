// Package errors renders failures as RFC 7807 problem documents.
package errors

import (
	"fmt"
	"maps"
	"net/http"
)

// ProblemDetail is an RFC 7807 problem document
// (https://www.rfc-editor.org/rfc/rfc7807). It implements error, so
// application code may return one directly.
type ProblemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (p ProblemDetail) Error() string {
	if p.Detail == "" {
		return p.Title
	}
	return p.Title + ": " + p.Detail
}

// WithDetail returns a copy carrying detail.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithInstance returns a copy pointing at the request that failed.
func (p ProblemDetail) WithInstance(instance string) ProblemDetail {
	p.Instance = instance
	return p
}

// WithExtension returns a copy with key set. The receiver's extensions are
// never modified, so the package templates stay pristine.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	ext := make(map[string]any, len(p.Extensions)+1)
	maps.Copy(ext, p.Extensions)
	ext[key] = value
	p.Extensions = ext
	return p
}

// Problem type URIs, relative to the responder's base URI.
const (
	TypeValidation   = "/problems/validation-error"
	TypeNotFound     = "/problems/not-found"
	TypeConflict     = "/problems/conflict"
	TypeInternal     = "/problems/internal-error"
	TypeUnauthorized = "/problems/unauthorized"
	TypeForbidden    = "/problems/forbidden"
	TypeRateLimited  = "/problems/too-many-requests"
)

func template(typ, title string, status int) ProblemDetail {
	return ProblemDetail{Type: typ, Title: title, Status: status}
}

// Templates for every problem the API emits. Refine them with WithDetail and
// WithExtension.
var (
	// ErrNotFound: the addressed record or route does not exist.
	ErrNotFound = template(TypeNotFound, "Resource Not Found", http.StatusNotFound)
	// ErrValidation: the payload or query failed validation.
	ErrValidation = template(TypeValidation, "Validation Error", http.StatusBadRequest)
	// ErrConflict: the request clashes with the current state, e.g. a taken email.
	ErrConflict = template(TypeConflict, "Conflict", http.StatusConflict)
	// ErrInternal: anything unexpected. Never carries the cause.
	ErrInternal = template(TypeInternal, "Internal Server Error", http.StatusInternalServerError)
	// ErrUnauthorized: missing, invalid or revoked credentials.
	ErrUnauthorized = template(TypeUnauthorized, "Unauthorized", http.StatusUnauthorized)
	// ErrForbidden: authenticated, but not allowed.
	ErrForbidden = template(TypeForbidden, "Forbidden", http.StatusForbidden)
	// ErrTooManyRequests: the client exhausted its rate limit.
	ErrTooManyRequests = template(TypeRateLimited, "Too Many Requests", http.StatusTooManyRequests)
)

// NewValidationProblem lists per-field messages under the "fields" extension.
func NewValidationProblem(fieldErrors map[string]string) ProblemDetail {
	return ErrValidation.WithExtension("fields", fieldErrors)
}

// NewNotFoundProblem names the missing resource and its identifier.
func NewNotFoundProblem(resourceType string, identifier any) ProblemDetail {
	return ErrNotFound.
		WithDetail(fmt.Sprintf("%s with identifier '%v' not found", resourceType, identifier)).
		WithExtension("resourceType", resourceType).
		WithExtension("identifier", identifier)
}
