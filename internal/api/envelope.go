// Package api defines the JSON envelopes exchanged with the dashboard backend.
package api

import (
	"encoding/json"
	"net/http"
)

// Response wraps every single-value reply.
type Response[T any] struct {
	Data    T      `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps data in a successful response.
func OK[T any](data T, message string) Response[T] {
	return Response[T]{Data: data, Success: true, Message: message}
}

// Fail builds an unsuccessful response. Data is left at its zero value.
func Fail[T any](err error, message string) Response[T] {
	r := Response[T]{Success: false, Message: message}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// Paginated is a page of a larger collection.
type Paginated[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// DefaultLimit is the page size used when none is requested.
const DefaultLimit = 10

// Paginate cuts items into pages of limit and returns the 1-based page. A page
// past the end has no data but still reports the totals.
func Paginate[T any](items []T, page, limit int) Paginated[T] {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	total := len(items)
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	out := Paginated[T]{
		Data:       []T{},
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pages,
	}
	// Compare page numbers first so huge pages cannot overflow the offset.
	if page > pages {
		return out
	}
	start := (page - 1) * limit
	end := min(start+limit, total)
	out.Data = append(out.Data, items[start:end]...)
	return out
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
