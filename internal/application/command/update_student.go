package command

import (
	"context"

	"github.com/campus-hub/student-registry/internal/domain/student"
	"github.com/campus-hub/student-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE STUDENT COMMAND
// Changes a student's name and/or national id. An empty field means
// "keep the current value" - it is the caller's press-enter-to-keep
// signal, never a write of an empty string.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateStudentCommand contains the fields to change.
type UpdateStudentCommand struct {
	ID int `validate:"required,gt=0"`

	// Name is the new name; empty keeps the current one.
	Name string

	// NationalID is the new national id; empty keeps the current one.
	NationalID string `validate:"omitempty,len=14,numeric"`
}

// Validate validates the command input.
func (c UpdateStudentCommand) Validate() error {
	return checkStruct(c)
}

// UpdateStudentResult contains the updated record.
type UpdateStudentResult struct {
	Student *student.Student

	// ChangedFields lists what was actually changed ("name",
	// "national_id"). Empty when the command was a full no-op.
	ChangedFields []string
}

// UpdateStudentHandler handles the UpdateStudentCommand.
type UpdateStudentHandler struct {
	repo student.Repository
	bus  student.Publisher
	log  *logger.Logger
}

// NewUpdateStudentHandler creates a new UpdateStudentHandler.
func NewUpdateStudentHandler(repo student.Repository, bus student.Publisher, log *logger.Logger) *UpdateStudentHandler {
	if log == nil {
		log = logger.Default()
	}
	return &UpdateStudentHandler{
		repo: repo,
		bus:  bus,
		log:  log.With(logger.Operation("update_student")),
	}
}

// Handle executes the command.
func (h *UpdateStudentHandler) Handle(ctx context.Context, cmd UpdateStudentCommand) (*UpdateStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := h.repo.GetByID(ctx, student.StudentID(cmd.ID))
	if err != nil {
		return nil, err
	}

	changed := make([]string, 0, 2)

	if cmd.Name != "" {
		if err := s.Rename(cmd.Name); err != nil {
			return nil, err
		}
		changed = append(changed, "name")
	}

	if cmd.NationalID != "" {
		if err := s.ChangeNationalID(student.NationalID(cmd.NationalID)); err != nil {
			return nil, err
		}
		changed = append(changed, "national_id")
	}

	if len(changed) == 0 {
		return &UpdateStudentResult{Student: s}, nil
	}

	if err := h.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	if h.bus != nil {
		h.bus.Publish(student.NewStudentUpdatedEvent(s, changed))
	}

	h.log.Info("student updated",
		logger.StudentID(cmd.ID),
		logger.F("changed", changed))

	return &UpdateStudentResult{Student: s, ChangedFields: changed}, nil
}
