// Package query contains read operations following CQRS pattern.
// Queries never modify state - they only read and return data.
// Each query is a self-contained use case with its own request/response types.
package query

import (
	"context"
	"sort"

	"github.com/campus-hub/student-registry/internal/domain/student"
)

// SortOrder selects the ordering of a student listing.
type SortOrder string

const (
	// SortNone keeps insertion order, the display default.
	SortNone SortOrder = ""

	// SortByID orders ascending by student id.
	SortByID SortOrder = "id"

	// SortByName orders ascending by name, plain byte order. The
	// comparison is not locale-aware by design: the persisted format
	// has no locale either.
	SortByName SortOrder = "name"
)

// ListStudentsQuery requests a listing of the whole roster.
type ListStudentsQuery struct {
	SortBy SortOrder
}

// ListStudentsResult contains the ordered listing.
type ListStudentsResult struct {
	// Students are read-only copies; mutating them does not affect
	// the roster.
	Students []*student.Student

	// Total is the roster size.
	Total int
}

// ListStudentsHandler handles the ListStudentsQuery.
type ListStudentsHandler struct {
	repo student.Repository
}

// NewListStudentsHandler creates a new ListStudentsHandler.
func NewListStudentsHandler(repo student.Repository) *ListStudentsHandler {
	return &ListStudentsHandler{repo: repo}
}

// Handle executes the query.
func (h *ListStudentsHandler) Handle(ctx context.Context, q ListStudentsQuery) (*ListStudentsResult, error) {
	students := h.repo.List(ctx)

	switch q.SortBy {
	case SortByID:
		sort.SliceStable(students, func(i, j int) bool {
			return students[i].ID < students[j].ID
		})
	case SortByName:
		sort.SliceStable(students, func(i, j int) bool {
			return students[i].Name < students[j].Name
		})
	}

	return &ListStudentsResult{
		Students: students,
		Total:    len(students),
	}, nil
}
