package server

import (
	"github.com/Apurer/storefront-api/internal/shared/pagination"
)

// envelope wraps customer-facing responses.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok(data any) envelope {
	return envelope{Success: true, Data: data}
}

func okMessage(data any, message string) envelope {
	return envelope{Success: true, Data: data, Message: message}
}

// pageResponse is the wire form of a paginated listing.
type pageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

func fromPage[T any](p pagination.Page[T]) pageResponse[T] {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return pageResponse[T]{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit, Pages: p.Pages}
}

type deleteResponse struct {
	Success bool `json:"success"`
}
