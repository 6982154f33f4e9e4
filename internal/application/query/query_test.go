package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/student-registry/internal/domain/shared"
	"github.com/campus-hub/student-registry/internal/domain/student"
	"github.com/campus-hub/student-registry/internal/infrastructure/persistence/memory"
)

func rosterWith(t *testing.T, entries ...struct {
	id   int
	name string
}) *memory.Roster {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewRoster()
	for _, e := range entries {
		s, err := student.NewStudent(student.NewStudentParams{
			ID:         student.StudentID(e.id),
			Name:       e.name,
			NationalID: "12345678901234",
		})
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, s))
	}
	return repo
}

type entry = struct {
	id   int
	name string
}

func TestListStudents_Ordering(t *testing.T) {
	ctx := context.Background()
	repo := rosterWith(t,
		entry{3, "Carol"},
		entry{1, "alice"},
		entry{2, "Bob"},
	)
	h := NewListStudentsHandler(repo)

	res, err := h.Handle(ctx, ListStudentsQuery{SortBy: SortNone})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	ids := func(students []*student.Student) []int {
		out := make([]int, 0, len(students))
		for _, s := range students {
			out = append(out, int(s.ID))
		}
		return out
	}
	assert.Equal(t, []int{3, 1, 2}, ids(res.Students), "default keeps insertion order")

	res, err = h.Handle(ctx, ListStudentsQuery{SortBy: SortByID})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(res.Students))

	res, err = h.Handle(ctx, ListStudentsQuery{SortBy: SortByName})
	require.NoError(t, err)
	// Byte order: uppercase before lowercase.
	assert.Equal(t, []int{2, 3, 1}, ids(res.Students))

	// Sorting a view must not reorder the roster itself.
	res, err = h.Handle(ctx, ListStudentsQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids(res.Students))
}

func TestListStudents_CopiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := rosterWith(t, entry{1, "Alice"})
	h := NewListStudentsHandler(repo)

	res, err := h.Handle(ctx, ListStudentsQuery{})
	require.NoError(t, err)
	res.Students[0].Name = "Mallory"

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestGetStudent(t *testing.T) {
	ctx := context.Background()
	repo := rosterWith(t, entry{7, "Dana"})
	h := NewGetStudentHandler(repo)

	res, err := h.Handle(ctx, GetStudentQuery{ID: 7})
	require.NoError(t, err)
	assert.Equal(t, "Dana", res.Student.Name)

	_, err = h.Handle(ctx, GetStudentQuery{ID: 8})
	assert.ErrorIs(t, err, shared.ErrStudentNotFound)
}

func TestSearchStudents(t *testing.T) {
	ctx := context.Background()
	repo := rosterWith(t,
		entry{1, "Aliya Bekova"},
		entry{2, "Daniyar"},
		entry{3, "aliyev Marat"},
	)
	h := NewSearchStudentsHandler(repo)

	res, err := h.Handle(ctx, SearchStudentsQuery{NameQuery: "ALIY"})
	require.NoError(t, err)
	require.Len(t, res.Students, 2)
	assert.Equal(t, student.StudentID(1), res.Students[0].ID, "matches come in roster order")
	assert.Equal(t, student.StudentID(3), res.Students[1].ID)

	res, err = h.Handle(ctx, SearchStudentsQuery{NameQuery: "zzz"})
	require.NoError(t, err)
	assert.NotNil(t, res.Students)
	assert.Empty(t, res.Students)
}
