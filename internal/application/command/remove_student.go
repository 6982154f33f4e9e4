package command

import (
	"context"

	"github.com/campus-hub/student-registry/internal/domain/shared"
	"github.com/campus-hub/student-registry/internal/domain/student"
	"github.com/campus-hub/student-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REMOVE STUDENT COMMAND
// Deletes a student. The remaining records keep their relative order.
// ══════════════════════════════════════════════════════════════════════════════

// RemoveStudentCommand identifies the student to delete.
type RemoveStudentCommand struct {
	ID int `validate:"required,gt=0"`
}

// Validate validates the command input.
func (c RemoveStudentCommand) Validate() error {
	return checkStruct(c)
}

// RemoveStudentResult reports whether a record was deleted.
// "Student not found" is a regular outcome here, not an error: the
// caller branches on Removed.
type RemoveStudentResult struct {
	Removed bool
}

// RemoveStudentHandler handles the RemoveStudentCommand.
type RemoveStudentHandler struct {
	repo student.Repository
	bus  student.Publisher
	log  *logger.Logger
}

// NewRemoveStudentHandler creates a new RemoveStudentHandler.
func NewRemoveStudentHandler(repo student.Repository, bus student.Publisher, log *logger.Logger) *RemoveStudentHandler {
	if log == nil {
		log = logger.Default()
	}
	return &RemoveStudentHandler{
		repo: repo,
		bus:  bus,
		log:  log.With(logger.Operation("remove_student")),
	}
}

// Handle executes the command.
func (h *RemoveStudentHandler) Handle(ctx context.Context, cmd RemoveStudentCommand) (*RemoveStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id := student.StudentID(cmd.ID)

	// Fetch first so the removal event can carry the student's name.
	s, err := h.repo.GetByID(ctx, id)
	if err != nil {
		if shared.IsNotFound(err) {
			return &RemoveStudentResult{Removed: false}, nil
		}
		return nil, err
	}

	removed := h.repo.Remove(ctx, id)
	if removed && h.bus != nil {
		h.bus.Publish(student.NewStudentRemovedEvent(s))
	}
	if removed {
		h.log.Info("student removed", logger.StudentID(cmd.ID), logger.StudentName(s.Name))
	}

	return &RemoveStudentResult{Removed: removed}, nil
}
