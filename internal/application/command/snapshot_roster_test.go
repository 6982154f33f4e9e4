package command

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/student-registry/internal/domain/student"
	"github.com/campus-hub/student-registry/internal/infrastructure/persistence/memory"
	"github.com/campus-hub/student-registry/internal/infrastructure/persistence/textfile"
	"github.com/campus-hub/student-registry/pkg/logger"
)

func TestSnapshot_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "students.txt")
	store := textfile.NewStore(path, logger.Nop())

	repo := seedRoster(t, 1, 2, 3)
	add := NewAddCourseHandler(repo, nil, logger.Nop())
	_, err := add.Handle(ctx, AddCourseCommand{StudentID: 2, CourseName: "Math", Grade: 93})
	require.NoError(t, err)

	snap := NewSnapshotHandler(repo, store, logger.Nop())
	saved, err := snap.HandleSave(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, saved.Saved)

	// Restore into a fresh roster and compare.
	fresh := memory.NewRoster()
	snap2 := NewSnapshotHandler(fresh, store, logger.Nop())
	loaded, err := snap2.HandleLoad(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Loaded)

	got, err := fresh.GetByID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got.Courses, 1)
	assert.Equal(t, "Math", got.Courses[0].Name)
	assert.InDelta(t, 4.00, got.GPA, 1e-9)
}

func TestSnapshot_LoadMissingFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")
	store := textfile.NewStore(path, logger.Nop())

	repo := memory.NewRoster()
	snap := NewSnapshotHandler(repo, store, logger.Nop())

	res, err := snap.HandleLoad(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.Loaded)
	assert.Zero(t, repo.Count(ctx))
}

func TestSnapshot_LoadReplacesCurrentRoster(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "students.txt")
	store := textfile.NewStore(path, logger.Nop())

	repo := seedRoster(t, 1)
	snap := NewSnapshotHandler(repo, store, logger.Nop())
	_, err := snap.HandleSave(ctx)
	require.NoError(t, err)

	// Mutate after the save, then load the snapshot back.
	reg := NewRegisterStudentHandler(repo, nil, logger.Nop())
	_, err = reg.Handle(ctx, RegisterStudentCommand{ID: 2, Name: "Extra", NationalID: "22222222222222"})
	require.NoError(t, err)
	require.Equal(t, 2, repo.Count(ctx))

	res, err := snap.HandleLoad(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Loaded)
	assert.Equal(t, 1, repo.Count(ctx))

	_, err = repo.GetByID(ctx, student.StudentID(2))
	assert.Error(t, err)
}
