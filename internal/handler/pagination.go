package handler

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 50
)

// PaginatedResponse defines the structure for a page of any item type.
type PaginatedResponse[T any] struct {
	Items   []T   `json:"items"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"hasMore"`
}

// NewPaginatedResponse creates a new PaginatedResponse.
func NewPaginatedResponse[T any](items []T, total int64, page, limit int) PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedResponse[T]{
		Items:   items,
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: int64(page)*int64(limit) < total,
	}
}

// parsePage returns the 1-based page number, or DefaultPage when raw is
// missing, not a whole number, or below 1.
func parsePage(raw string) int {
	if n, ok := parseWholeNumber(raw); ok && n >= 1 {
		return n
	}
	return DefaultPage
}

// parseLimit returns the page size when it lies in [1, MaxLimit]. Anything
// else is replaced by DefaultLimit, not clamped.
func parseLimit(raw string) int {
	if n, ok := parseWholeNumber(raw); ok && n >= 1 && n <= MaxLimit {
		return n
	}
	return DefaultLimit
}

// parseWholeNumber accepts "3" as well as "3.0" or "3e0".
func parseWholeNumber(raw string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
