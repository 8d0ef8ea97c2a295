package errors

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// ContentTypeProblemJSON is the media type of problem documents.
	ContentTypeProblemJSON = "application/problem+json"
	// ContextRequestIDKey is the gin context key holding the request id. When
	// set, problems echo it under the "requestId" extension.
	ContextRequestIDKey = "request_id"
)

// Responder writes problem documents.
type Responder struct {
	// BaseURI is prepended to relative problem types.
	BaseURI string
}

func NewResponder(baseURI string) *Responder {
	return &Responder{BaseURI: baseURI}
}

// DefaultResponder uses relative problem types.
var DefaultResponder = NewResponder("")

// Respond writes problem and aborts the remaining handlers. The instance
// defaults to the request path.
func (r *Responder) Respond(c *gin.Context, problem ProblemDetail) {
	if r.BaseURI != "" && strings.HasPrefix(problem.Type, "/") {
		problem.Type = r.BaseURI + problem.Type
	}
	if problem.Instance == "" {
		problem = problem.WithInstance(c.Request.URL.Path)
	}
	if id := c.GetString(ContextRequestIDKey); id != "" {
		problem = problem.WithExtension("requestId", id)
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.AbortWithStatusJSON(problem.Status, problem)
}

// RespondError answers with err itself when it is a ProblemDetail. Anything
// else is attached to the gin context for the request logger and reported as
// a bare 500.
func (r *Responder) RespondError(c *gin.Context, err error) {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		r.Respond(c, problem)
		return
	}
	_ = c.Error(err)
	r.Respond(c, ErrInternal)
}

func (r *Responder) NotFound(c *gin.Context, resourceType string, identifier any) {
	r.Respond(c, NewNotFoundProblem(resourceType, identifier))
}

func (r *Responder) ValidationFailed(c *gin.Context, fieldErrors map[string]string) {
	r.Respond(c, NewValidationProblem(fieldErrors))
}

func (r *Responder) Unauthorized(c *gin.Context, detail string) {
	r.Respond(c, ErrUnauthorized.WithDetail(detail))
}

func (r *Responder) Forbidden(c *gin.Context, detail string) {
	r.Respond(c, ErrForbidden.WithDetail(detail))
}

// Respond writes problem with DefaultResponder.
func Respond(c *gin.Context, problem ProblemDetail) {
	DefaultResponder.Respond(c, problem)
}

// ErrorMapper translates an application error into a problem. It reports
// false for errors it does not recognise.
type ErrorMapper func(err error) (ProblemDetail, bool)

// ChainedResponder consults its mappers in order before falling back to
// Responder.RespondError.
type ChainedResponder struct {
	*Responder
	mappers []ErrorMapper
}

func NewChainedResponder(baseURI string, mappers ...ErrorMapper) *ChainedResponder {
	return &ChainedResponder{Responder: NewResponder(baseURI), mappers: mappers}
}

func (r *ChainedResponder) RespondError(c *gin.Context, err error) {
	for _, mapper := range r.mappers {
		if problem, ok := mapper(err); ok {
			r.Respond(c, problem)
			return
		}
	}
	r.Responder.RespondError(c, err)
}
