package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/student-registry/internal/domain/shared"
	"github.com/campus-hub/student-registry/internal/domain/student"
)

func newStudent(t *testing.T, id int) *student.Student {
	t.Helper()
	s, err := student.NewStudent(student.NewStudentParams{
		ID:         student.StudentID(id),
		Name:       fmt.Sprintf("Student %d", id),
		NationalID: "12345678901234",
	})
	require.NoError(t, err)
	return s
}

func TestRoster_AddAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewRoster()

	s := newStudent(t, 7)
	require.NoError(t, r.Add(ctx, s))
	assert.Equal(t, 1, r.Count(ctx))

	got, err := r.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, s.Name, got.Name)

	_, err = r.GetByID(ctx, 8)
	assert.ErrorIs(t, err, shared.ErrStudentNotFound)
	assert.True(t, shared.IsNotFound(err))
}

func TestRoster_Add_DuplicateID(t *testing.T) {
	ctx := context.Background()
	r := NewRoster()

	require.NoError(t, r.Add(ctx, newStudent(t, 1)))

	err := r.Add(ctx, newStudent(t, 1))
	assert.ErrorIs(t, err, shared.ErrDuplicateStudentID)
	assert.Equal(t, 1, r.Count(ctx), "store must be unchanged after a rejected add")
}

func TestRoster_Add_CapacityExceeded(t *testing.T) {
	ctx := context.Background()
	r := NewRoster()

	for i := 1; i <= student.MaxStudents; i++ {
		require.NoError(t, r.Add(ctx, newStudent(t, i)))
	}

	err := r.Add(ctx, newStudent(t, student.MaxStudents+1))
	assert.ErrorIs(t, err, shared.ErrRosterFull)
	assert.ErrorIs(t, err, shared.ErrCapacityExceeded)
	assert.Equal(t, student.MaxStudents, r.Count(ctx))
}

func TestRoster_CapacityCheckedBeforeUniqueness(t *testing.T) {
	ctx := context.Background()
	r := NewRoster()

	for i := 1; i <= student.MaxStudents; i++ {
		require.NoError(t, r.Add(ctx, newStudent(t, i)))
	}

	// A duplicate id against a full roster reports the capacity error:
	// capacity is checked first.
	err := r.Add(ctx, newStudent(t, 1))
	assert.ErrorIs(t, err, shared.ErrRosterFull)
}

func TestRoster_Remove_PreservesOrder(t *testing.T) {
	ctx := context.Background()
	r := NewRoster()

	for _, id := range []int{10, 20, 30} {
		require.NoError(t, r.Add(ctx, newStudent(t, id)))
	}

	assert.True(t, r.Remove(ctx, 20))
	assert.False(t, r.Remove(ctx, 20), "second removal of the same id")

	list := r.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, student.StudentID(10), list[0].ID)
	assert.Equal(t, student.StudentID(30), list[1].ID)

	// Index map stays consistent after the shift.
	got, err := r.GetByID(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, student.StudentID(30), got.ID)
}

func TestRoster_Update(t *testing.T) {
	ctx := context.Background()
	r := NewRoster()

	require.NoError(t, r.Add(ctx, newStudent(t, 1)))
	require.NoError(t, r.Add(ctx, newStudent(t, 2)))

	s, err := r.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, s.Rename("Renamed"))
	require.NoError(t, r.Update(ctx, s))

	got, err := r.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	// Index-preserving: id 1 is still first.
	assert.Equal(t, student.StudentID(1), r.List(ctx)[0].ID)

	missing := newStudent(t, 99)
	assert.ErrorIs(t, r.Update(ctx, missing), shared.ErrStudentNotFound)
}

func TestRoster_ReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	r := NewRoster()

	s := newStudent(t, 1)
	require.NoError(t, s.AddCourse("Math", 90))
	require.NoError(t, r.Add(ctx, s))

	got, err := r.GetByID(ctx, 1)
	require.NoError(t, err)
	got.Courses[0].Name = "Mutated"
	got.Name = "Mutated"

	again, err := r.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Math", again.Courses[0].Name)
	assert.NotEqual(t, "Mutated", again.Name)
}

func TestRoster_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	r := NewRoster()
	require.NoError(t, r.Add(ctx, newStudent(t, 1)))

	require.NoError(t, r.ReplaceAll(ctx, []*student.Student{
		newStudent(t, 5),
		newStudent(t, 6),
	}))
	assert.Equal(t, 2, r.Count(ctx))
	_, err := r.GetByID(ctx, 1)
	assert.ErrorIs(t, err, shared.ErrStudentNotFound)

	// Duplicate ids reject the whole replacement.
	err = r.ReplaceAll(ctx, []*student.Student{newStudent(t, 9), newStudent(t, 9)})
	assert.ErrorIs(t, err, shared.ErrDuplicateStudentID)
	assert.Equal(t, 2, r.Count(ctx), "failed replace must leave the roster unchanged")
}
