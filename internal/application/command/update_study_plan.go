package command

import (
	"context"

	"github.com/campus-hub/student-registry/internal/domain/student"
	"github.com/campus-hub/student-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDY PLAN COMMANDS
// Adds or removes planned-course entries. The study plan follows the
// same bounds and shift-left discipline as the course list but never
// touches the GPA.
// ══════════════════════════════════════════════════════════════════════════════

// AddPlanItemCommand contains the plan entry to add.
type AddPlanItemCommand struct {
	StudentID int    `validate:"required,gt=0"`
	Item      string `validate:"required"`
}

// Validate validates the command input.
func (c AddPlanItemCommand) Validate() error {
	return checkStruct(c)
}

// RemovePlanItemCommand identifies the plan entry to remove.
type RemovePlanItemCommand struct {
	StudentID int `validate:"required,gt=0"`

	// Position is 1-based, as shown in plan listings.
	Position int `validate:"required,gte=1"`
}

// Validate validates the command input.
func (c RemovePlanItemCommand) Validate() error {
	return checkStruct(c)
}

// StudyPlanResult contains the record after a plan change.
type StudyPlanResult struct {
	Student *student.Student

	// Item is the plan entry that was added or removed.
	Item string
}

// StudyPlanHandler handles both study plan commands.
type StudyPlanHandler struct {
	repo student.Repository
	bus  student.Publisher
	log  *logger.Logger
}

// NewStudyPlanHandler creates a new StudyPlanHandler.
func NewStudyPlanHandler(repo student.Repository, bus student.Publisher, log *logger.Logger) *StudyPlanHandler {
	if log == nil {
		log = logger.Default()
	}
	return &StudyPlanHandler{
		repo: repo,
		bus:  bus,
		log:  log.With(logger.Operation("update_study_plan")),
	}
}

// HandleAdd executes the AddPlanItemCommand.
func (h *StudyPlanHandler) HandleAdd(ctx context.Context, cmd AddPlanItemCommand) (*StudyPlanResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := h.repo.GetByID(ctx, student.StudentID(cmd.StudentID))
	if err != nil {
		return nil, err
	}

	if err := s.AddPlanItem(cmd.Item); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	if h.bus != nil {
		h.bus.Publish(student.NewStudyPlanUpdatedEvent(s, student.PlanItemAdded, cmd.Item))
	}

	h.log.Info("study plan item added",
		logger.StudentID(cmd.StudentID),
		logger.CourseName(cmd.Item))

	return &StudyPlanResult{Student: s, Item: cmd.Item}, nil
}

// HandleRemove executes the RemovePlanItemCommand.
func (h *StudyPlanHandler) HandleRemove(ctx context.Context, cmd RemovePlanItemCommand) (*StudyPlanResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := h.repo.GetByID(ctx, student.StudentID(cmd.StudentID))
	if err != nil {
		return nil, err
	}

	item, err := s.RemovePlanItemAt(cmd.Position)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	if h.bus != nil {
		h.bus.Publish(student.NewStudyPlanUpdatedEvent(s, student.PlanItemRemoved, item))
	}

	h.log.Info("study plan item removed",
		logger.StudentID(cmd.StudentID),
		logger.CourseName(item))

	return &StudyPlanResult{Student: s, Item: item}, nil
}
