// Package pagination computes page windows over ordered collections.
package pagination

// Window is the half-open range [Start, End) of a page within a collection,
// plus the number of pages the collection spans at the requested limit.
type Window struct {
	Start int
	End   int
	Pages int
}

// Len reports how many items fall inside the window.
func (w Window) Len() int { return w.End - w.Start }

// Page is one page of items together with the paging metadata echoed back
// to callers.
type Page[T any] struct {
	Items []T
	Total int
	Page  int
	Limit int
	Pages int
}

// Calculate derives the window for a 1-indexed page of size limit over total
// items.
//
// A non-positive limit yields an empty window and zero pages. A non-positive
// page yields an empty window but still reports the page count. Offsets past
// the end are clamped to total, so very large pages cannot overflow.
func Calculate(page, limit, total int) Window {
	if total < 0 {
		total = 0
	}
	if limit <= 0 {
		return Window{}
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	if page <= 0 {
		return Window{Pages: pages}
	}
	if page-1 > total/limit {
		return Window{Start: total, End: total, Pages: pages}
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := total
	if remaining := total - start; remaining > limit {
		end = start + limit
	}
	return Window{Start: start, End: end, Pages: pages}
}

// Slice returns the requested page of all. Items is never nil.
func Slice[T any](all []T, page, limit int) Page[T] {
	w := Calculate(page, limit, len(all))
	items := make([]T, w.Len())
	copy(items, all[w.Start:w.End])
	return Page[T]{
		Items: items,
		Total: len(all),
		Page:  page,
		Limit: limit,
		Pages: w.Pages,
	}
}

// Map converts the items of a page while keeping its metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[U]{
		Items: items,
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
		Pages: p.Pages,
	}
}
