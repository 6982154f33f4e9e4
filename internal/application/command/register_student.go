package command

import (
	"context"

	"github.com/campus-hub/student-registry/internal/domain/shared"
	"github.com/campus-hub/student-registry/internal/domain/student"
	"github.com/campus-hub/student-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER STUDENT COMMAND
// Adds a new student to the roster. Capacity, id uniqueness and the
// national-id format are all checked before anything is stored.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterStudentCommand contains the data for a new student record.
type RegisterStudentCommand struct {
	// ID is the unique numeric student id.
	ID int `validate:"required,gt=0"`

	// Name is the student's display name.
	Name string `validate:"required"`

	// NationalID is the 14-digit national identifier.
	NationalID string `validate:"required,len=14,numeric"`
}

// Validate validates the command input.
func (c RegisterStudentCommand) Validate() error {
	return checkStruct(c)
}

// RegisterStudentResult contains the outcome of the registration.
type RegisterStudentResult struct {
	// Student is the newly created record.
	Student *student.Student
}

// RegisterStudentHandler handles the RegisterStudentCommand.
type RegisterStudentHandler struct {
	repo student.Repository
	bus  student.Publisher
	log  *logger.Logger
}

// NewRegisterStudentHandler creates a new RegisterStudentHandler.
func NewRegisterStudentHandler(repo student.Repository, bus student.Publisher, log *logger.Logger) *RegisterStudentHandler {
	if log == nil {
		log = logger.Default()
	}
	return &RegisterStudentHandler{
		repo: repo,
		bus:  bus,
		log:  log.With(logger.Operation("register_student")),
	}
}

// Handle executes the command. The checks run in a fixed order:
// roster capacity, then id uniqueness, then field format. A request
// that trips several of them reports the earliest failure.
func (h *RegisterStudentHandler) Handle(ctx context.Context, cmd RegisterStudentCommand) (*RegisterStudentResult, error) {
	if h.repo.Count(ctx) >= student.MaxStudents {
		return nil, shared.ErrRosterFull
	}

	if _, err := h.repo.GetByID(ctx, student.StudentID(cmd.ID)); err == nil {
		return nil, shared.ErrDuplicateStudentID
	}

	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := student.NewStudent(student.NewStudentParams{
		ID:         student.StudentID(cmd.ID),
		Name:       cmd.Name,
		NationalID: student.NationalID(cmd.NationalID),
	})
	if err != nil {
		return nil, err
	}

	if err := h.repo.Add(ctx, s); err != nil {
		return nil, err
	}

	if h.bus != nil {
		h.bus.Publish(student.NewStudentRegisteredEvent(s))
	}

	h.log.Info("student registered",
		logger.StudentID(cmd.ID),
		logger.StudentName(s.Name))

	return &RegisterStudentResult{Student: s}, nil
}
