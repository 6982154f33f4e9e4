package query

import (
	"context"

	"github.com/campus-hub/student-registry/internal/domain/student"
)

// GetStudentQuery requests a single student by exact id.
type GetStudentQuery struct {
	ID int
}

// GetStudentResult contains the found record.
type GetStudentResult struct {
	Student *student.Student
}

// GetStudentHandler handles the GetStudentQuery.
type GetStudentHandler struct {
	repo student.Repository
}

// NewGetStudentHandler creates a new GetStudentHandler.
func NewGetStudentHandler(repo student.Repository) *GetStudentHandler {
	return &GetStudentHandler{repo: repo}
}

// Handle executes the query. A missing id yields ErrStudentNotFound.
func (h *GetStudentHandler) Handle(ctx context.Context, q GetStudentQuery) (*GetStudentResult, error) {
	s, err := h.repo.GetByID(ctx, student.StudentID(q.ID))
	if err != nil {
		return nil, err
	}

	return &GetStudentResult{Student: s}, nil
}
