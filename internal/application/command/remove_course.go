package command

import (
	"context"

	"github.com/campus-hub/student-registry/internal/domain/student"
	"github.com/campus-hub/student-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REMOVE COURSE COMMAND
// Removes a course by its 1-based position and recomputes the GPA.
// ══════════════════════════════════════════════════════════════════════════════

// RemoveCourseCommand identifies the course to remove.
type RemoveCourseCommand struct {
	StudentID int `validate:"required,gt=0"`

	// Position is 1-based, as shown to the user in course listings.
	Position int `validate:"required,gte=1"`
}

// Validate validates the command input.
func (c RemoveCourseCommand) Validate() error {
	return checkStruct(c)
}

// RemoveCourseResult contains the record after the change.
type RemoveCourseResult struct {
	Student *student.Student

	// Removed is the course that was taken out.
	Removed student.Course

	// GPA is the recomputed grade point average.
	GPA float64
}

// RemoveCourseHandler handles the RemoveCourseCommand.
type RemoveCourseHandler struct {
	repo student.Repository
	bus  student.Publisher
	log  *logger.Logger
}

// NewRemoveCourseHandler creates a new RemoveCourseHandler.
func NewRemoveCourseHandler(repo student.Repository, bus student.Publisher, log *logger.Logger) *RemoveCourseHandler {
	if log == nil {
		log = logger.Default()
	}
	return &RemoveCourseHandler{
		repo: repo,
		bus:  bus,
		log:  log.With(logger.Operation("remove_course")),
	}
}

// Handle executes the command.
func (h *RemoveCourseHandler) Handle(ctx context.Context, cmd RemoveCourseCommand) (*RemoveCourseResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := h.repo.GetByID(ctx, student.StudentID(cmd.StudentID))
	if err != nil {
		return nil, err
	}

	removed, err := s.RemoveCourseAt(cmd.Position)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	if h.bus != nil {
		h.bus.Publish(student.NewCourseRemovedEvent(s, removed))
	}

	h.log.Info("course removed",
		logger.StudentID(cmd.StudentID),
		logger.CourseName(removed.Name),
		logger.GPA(s.GPA))

	return &RemoveCourseResult{Student: s, Removed: removed, GPA: s.GPA}, nil
}
