package query

import (
	"context"
	"strings"

	"github.com/campus-hub/student-registry/internal/domain/student"
)

// SearchStudentsQuery requests a case-insensitive substring search over
// student names.
type SearchStudentsQuery struct {
	NameQuery string
}

// SearchStudentsResult contains the matches in roster order.
// No match is an empty result, not an error.
type SearchStudentsResult struct {
	Students []*student.Student
}

// SearchStudentsHandler handles the SearchStudentsQuery.
type SearchStudentsHandler struct {
	repo student.Repository
}

// NewSearchStudentsHandler creates a new SearchStudentsHandler.
func NewSearchStudentsHandler(repo student.Repository) *SearchStudentsHandler {
	return &SearchStudentsHandler{repo: repo}
}

// Handle executes the query.
func (h *SearchStudentsHandler) Handle(ctx context.Context, q SearchStudentsQuery) (*SearchStudentsResult, error) {
	needle := strings.ToLower(q.NameQuery)

	matches := make([]*student.Student, 0)
	for _, s := range h.repo.List(ctx) {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			matches = append(matches, s)
		}
	}

	return &SearchStudentsResult{Students: matches}, nil
}
