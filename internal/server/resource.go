package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"github.com/Apurer/storefront-api/internal/shared/pagination"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

const defaultPage = 1

// Codec converts between the wire payloads of one entity type and the domain.
type Codec[T resource.Entity, Create, Update, Out any] struct {
	// Name is the resource type reported in not-found problems, e.g. "User".
	Name     string
	ToEntity func(Create) (T, error)
	ToPatch  func(Update) resource.Patch[T]
	ToWire   func(projection.Projection[T]) Out
}

// ResourceAPI serves list, get, create, update and delete for one entity type.
type ResourceAPI[T resource.Entity, Create, Update, Out any] struct {
	service      resource.Service[T]
	codec        Codec[T, Create, Update, Out]
	defaultLimit int
}

func NewResourceAPI[T resource.Entity, Create, Update, Out any](service resource.Service[T], codec Codec[T, Create, Update, Out], defaultLimit int) *ResourceAPI[T, Create, Update, Out] {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &ResourceAPI[T, Create, Update, Out]{service: service, codec: codec, defaultLimit: defaultLimit}
}

// List answers GET /admin/<resource>?page=&limit=. Absent parameters take
// the defaults; non-integer values are rejected.
func (api *ResourceAPI[T, Create, Update, Out]) List(c *gin.Context) {
	page, limit := defaultPage, api.defaultLimit
	query := c.Request.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &page); err != nil {
		responder.ValidationFailed(c, map[string]string{"page": "must be an integer"})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &limit); err != nil {
		responder.ValidationFailed(c, map[string]string{"limit": "must be an integer"})
		return
	}
	result, err := api.service.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, api.codec.Name, "", err)
		return
	}
	c.JSON(http.StatusOK, fromPage(pagination.Map(result, api.codec.ToWire)))
}

func (api *ResourceAPI[T, Create, Update, Out]) Get(c *gin.Context) {
	id := c.Param("id")
	rec, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, api.codec.Name, id, err)
		return
	}
	c.JSON(http.StatusOK, api.codec.ToWire(rec))
}

func (api *ResourceAPI[T, Create, Update, Out]) Create(c *gin.Context) {
	var payload Create
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	entity, err := api.codec.ToEntity(payload)
	if err != nil {
		respondError(c, api.codec.Name, "", fmt.Errorf("%w: %w", resource.ErrInvalidInput, err))
		return
	}
	rec, err := api.service.Create(c.Request.Context(), entity)
	if err != nil {
		respondError(c, api.codec.Name, "", err)
		return
	}
	c.JSON(http.StatusCreated, api.codec.ToWire(rec))
}

// Update merges the supplied fields into the record. Keys the payload type
// does not declare are dropped by the decoder.
func (api *ResourceAPI[T, Create, Update, Out]) Update(c *gin.Context) {
	id := c.Param("id")
	var payload Update
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	rec, err := api.service.Update(c.Request.Context(), id, api.codec.ToPatch(payload))
	if err != nil {
		respondError(c, api.codec.Name, id, err)
		return
	}
	c.JSON(http.StatusOK, api.codec.ToWire(rec))
}

func (api *ResourceAPI[T, Create, Update, Out]) Delete(c *gin.Context) {
	id := c.Param("id")
	removed, err := api.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, api.codec.Name, id, err)
		return
	}
	if !removed {
		responder.NotFound(c, api.codec.Name, id)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Success: true})
}

// routes lists the CRUD routes of the resource under prefix.
func (api *ResourceAPI[T, Create, Update, Out]) routes(name, prefix string) Routes {
	return Routes{
		{Name: "List" + name, Method: http.MethodGet, Pattern: prefix, HandlerFunc: api.List},
		{Name: "Get" + name, Method: http.MethodGet, Pattern: prefix + "/:id", HandlerFunc: api.Get},
		{Name: "Create" + name, Method: http.MethodPost, Pattern: prefix, HandlerFunc: api.Create},
		{Name: "Update" + name, Method: http.MethodPut, Pattern: prefix + "/:id", HandlerFunc: api.Update},
		{Name: "Delete" + name, Method: http.MethodDelete, Pattern: prefix + "/:id", HandlerFunc: api.Delete},
	}
}
