// Package listing implements the in-memory filter/sort/page pipeline used by
// every back-office list and export.
package listing

import (
	"sort"
	"strings"
	"time"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"

	// SortCreatedAt is the default sort key every resource supports.
	SortCreatedAt = "created_at"

	// StatusAll disables the status filter.
	StatusAll = "all"
)

// Query holds the user-facing list parameters.
// From and To are optional; To includes the whole day it falls on.
type Query struct {
	Search string
	Status string
	From   *time.Time
	To     *time.Time
	SortBy string
	Order  string
	Limit  int
	Offset int
}

// Accessors tell Apply how to read a record of type T.
type Accessors[T any] struct {
	// Fields returns the values searched by Query.Search.
	Fields func(T) []string
	// Status returns the value compared to Query.Status. Nil disables status filtering.
	Status func(T) string
	// Created returns the timestamp used for date filtering and default ordering.
	Created func(T) time.Time
	// Sorters maps a sort key to an ascending comparison.
	Sorters map[string]func(a, b T) int
}

// Page is a filtered window over a record set.
type Page[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

// Apply filters, sorts and pages items. The input slice is left untouched.
func Apply[T any](items []T, q Query, acc Accessors[T]) Page[T] {
	out := Filter(items, q, acc)
	Sort(out, q.SortBy, q.Order, acc)

	total := len(out)
	return Page[T]{Items: window(out, q.Limit, q.Offset), Total: total}
}

// Filter returns the records matching the search, status and date window of q.
func Filter[T any](items []T, q Query, acc Accessors[T]) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	status := strings.TrimSpace(q.Status)
	if strings.EqualFold(status, StatusAll) {
		status = ""
	}

	var to time.Time
	if q.To != nil {
		to = endOfDay(*q.To)
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if needle != "" && !matches(acc.Fields, it, needle) {
			continue
		}
		if status != "" && acc.Status != nil && acc.Status(it) != status {
			continue
		}
		if acc.Created != nil {
			created := acc.Created(it)
			if q.From != nil && created.Before(*q.From) {
				continue
			}
			if q.To != nil && created.After(to) {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// Sort orders items in place. Unknown keys fall back to created_at; the sort is stable.
func Sort[T any](items []T, by, order string, acc Accessors[T]) {
	cmp := acc.Sorters[by]
	if cmp == nil {
		cmp = acc.Sorters[SortCreatedAt]
	}
	if cmp == nil && acc.Created != nil {
		cmp = func(a, b T) int { return acc.Created(a).Compare(acc.Created(b)) }
	}
	if cmp == nil {
		return
	}

	asc := strings.EqualFold(order, OrderAsc)
	sort.SliceStable(items, func(i, j int) bool {
		if asc {
			return cmp(items[i], items[j]) < 0
		}
		return cmp(items[i], items[j]) > 0
	})
}

func matches[T any](fields func(T) []string, it T, needle string) bool {
	if fields == nil {
		return false
	}
	for _, f := range fields(it) {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func window[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// CompareStrings is a case-insensitive ascending comparison for Sorters.
func CompareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// CompareInts is an ascending comparison for Sorters.
func CompareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
