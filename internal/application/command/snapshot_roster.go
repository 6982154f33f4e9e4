package command

import (
	"context"

	"github.com/campus-hub/student-registry/internal/domain/student"
	"github.com/campus-hub/student-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER SNAPSHOT COMMANDS
// Load replaces the in-memory roster with the persisted file content;
// save writes the roster back. The presentation layer calls load once
// at startup and save on explicit exit.
// ══════════════════════════════════════════════════════════════════════════════

// RosterFiles is the persistence contract the snapshot commands need.
// The textfile store implements it.
type RosterFiles interface {
	// Load reads all persisted students; missing data means an empty
	// slice, never an error.
	Load(ctx context.Context) []*student.Student

	// Save overwrites the persisted roster.
	Save(ctx context.Context, students []*student.Student) error
}

// LoadRosterResult reports how many records were restored.
type LoadRosterResult struct {
	Loaded int
}

// SaveRosterResult reports how many records were written.
type SaveRosterResult struct {
	Saved int
}

// SnapshotHandler handles roster load and save.
type SnapshotHandler struct {
	repo  student.Repository
	files RosterFiles
	log   *logger.Logger
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(repo student.Repository, files RosterFiles, log *logger.Logger) *SnapshotHandler {
	if log == nil {
		log = logger.Default()
	}
	return &SnapshotHandler{
		repo:  repo,
		files: files,
		log:   log.With(logger.Operation("roster_snapshot")),
	}
}

// HandleLoad replaces the roster content with the persisted records.
func (h *SnapshotHandler) HandleLoad(ctx context.Context) (*LoadRosterResult, error) {
	students := h.files.Load(ctx)

	if err := h.repo.ReplaceAll(ctx, students); err != nil {
		return nil, err
	}

	h.log.Info("roster restored from file", logger.Count(len(students)))
	return &LoadRosterResult{Loaded: len(students)}, nil
}

// HandleSave persists the current roster content.
func (h *SnapshotHandler) HandleSave(ctx context.Context) (*SaveRosterResult, error) {
	students := h.repo.List(ctx)

	if err := h.files.Save(ctx, students); err != nil {
		return nil, err
	}

	h.log.Info("roster persisted", logger.Count(len(students)))
	return &SaveRosterResult{Saved: len(students)}, nil
}
