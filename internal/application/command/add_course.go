package command

import (
	"context"

	"github.com/campus-hub/student-registry/internal/domain/student"
	"github.com/campus-hub/student-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD COURSE COMMAND
// Appends a course to a student's record and recomputes the GPA.
// ══════════════════════════════════════════════════════════════════════════════

// AddCourseCommand contains the course to add.
type AddCourseCommand struct {
	StudentID  int     `validate:"required,gt=0"`
	CourseName string  `validate:"required"`
	Grade      float64 `validate:"gte=0,lte=100"`
}

// Validate validates the command input.
func (c AddCourseCommand) Validate() error {
	return checkStruct(c)
}

// AddCourseResult contains the record after the change.
type AddCourseResult struct {
	Student *student.Student

	// GPA is the recomputed grade point average.
	GPA float64
}

// AddCourseHandler handles the AddCourseCommand.
type AddCourseHandler struct {
	repo student.Repository
	bus  student.Publisher
	log  *logger.Logger
}

// NewAddCourseHandler creates a new AddCourseHandler.
func NewAddCourseHandler(repo student.Repository, bus student.Publisher, log *logger.Logger) *AddCourseHandler {
	if log == nil {
		log = logger.Default()
	}
	return &AddCourseHandler{
		repo: repo,
		bus:  bus,
		log:  log.With(logger.Operation("add_course")),
	}
}

// Handle executes the command.
func (h *AddCourseHandler) Handle(ctx context.Context, cmd AddCourseCommand) (*AddCourseResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := h.repo.GetByID(ctx, student.StudentID(cmd.StudentID))
	if err != nil {
		return nil, err
	}

	if err := s.AddCourse(cmd.CourseName, student.Grade(cmd.Grade)); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	if h.bus != nil {
		added := s.Courses[len(s.Courses)-1]
		h.bus.Publish(student.NewCourseAddedEvent(s, added))
	}

	h.log.Info("course added",
		logger.StudentID(cmd.StudentID),
		logger.CourseName(cmd.CourseName),
		logger.GradeValue(cmd.Grade),
		logger.GPA(s.GPA))

	return &AddCourseResult{Student: s, GPA: s.GPA}, nil
}
