package student

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/student-registry/internal/domain/shared"
)

func mustStudent(t *testing.T, id StudentID) *Student {
	t.Helper()
	s, err := NewStudent(NewStudentParams{
		ID:         id,
		Name:       fmt.Sprintf("Student %d", id),
		NationalID: "12345678901234",
	})
	require.NoError(t, err)
	return s
}

func TestNationalID_IsValid(t *testing.T) {
	tests := []struct {
		id    NationalID
		valid bool
	}{
		{"12345678901234", true},
		{"00000000000000", true},
		{"123456", false},
		{"1234567890123A", false},
		{"123456789012345", false},
		{"", false},
		{"1234567890123 ", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.id.IsValid(), "national id %q", tt.id)
	}
}

func TestNewStudent_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  NewStudentParams
		wantErr error
	}{
		{
			name:   "valid",
			params: NewStudentParams{ID: 1, Name: "Aliya", NationalID: "12345678901234"},
		},
		{
			name:    "non-positive id",
			params:  NewStudentParams{ID: 0, Name: "Aliya", NationalID: "12345678901234"},
			wantErr: shared.ErrInvalidStudentID,
		},
		{
			name:    "blank name",
			params:  NewStudentParams{ID: 1, Name: "   ", NationalID: "12345678901234"},
			wantErr: shared.ErrInvalidName,
		},
		{
			name:    "short national id",
			params:  NewStudentParams{ID: 1, Name: "Aliya", NationalID: "123456"},
			wantErr: shared.ErrInvalidNationalID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStudent(tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.params.ID, s.ID)
			assert.Empty(t, s.Courses)
			assert.Empty(t, s.StudyPlan)
			assert.Equal(t, 0.0, s.GPA)
		})
	}
}

func TestStudent_AddCourse(t *testing.T) {
	s := mustStudent(t, 1)

	require.NoError(t, s.AddCourse("Math", 90))
	require.Len(t, s.Courses, 1)
	assert.Equal(t, "Math", s.Courses[0].Name)

	assert.ErrorIs(t, s.AddCourse("CS", 101), shared.ErrInvalidGrade)
	assert.ErrorIs(t, s.AddCourse("CS", -1), shared.ErrInvalidGrade)
	assert.ErrorIs(t, s.AddCourse(" ", 50), shared.ErrInvalidCourseName)
	assert.Len(t, s.Courses, 1, "failed adds must not change the course list")
}

func TestStudent_AddCourse_CapacityLimit(t *testing.T) {
	s := mustStudent(t, 1)
	for i := 0; i < MaxCourses; i++ {
		require.NoError(t, s.AddCourse(fmt.Sprintf("Course %d", i), 75))
	}

	err := s.AddCourse("One Too Many", 75)
	assert.ErrorIs(t, err, shared.ErrCourseLimitReached)
	assert.ErrorIs(t, err, shared.ErrCapacityExceeded)
	assert.Len(t, s.Courses, MaxCourses)
}

func TestStudent_RemoveCourseAt(t *testing.T) {
	s := mustStudent(t, 1)
	require.NoError(t, s.AddCourse("Math", 90))
	require.NoError(t, s.AddCourse("CS", 60))
	require.NoError(t, s.AddCourse("History", 80))

	removed, err := s.RemoveCourseAt(2)
	require.NoError(t, err)
	assert.Equal(t, "CS", removed.Name)

	// Shift-left semantics: order of the remaining courses preserved.
	require.Len(t, s.Courses, 2)
	assert.Equal(t, "Math", s.Courses[0].Name)
	assert.Equal(t, "History", s.Courses[1].Name)

	// GPA recomputed: (3.70 + 2.70) / 2.
	assert.InDelta(t, 3.20, s.GPA, 1e-9)

	_, err = s.RemoveCourseAt(0)
	assert.ErrorIs(t, err, shared.ErrInvalidPosition)
	_, err = s.RemoveCourseAt(3)
	assert.ErrorIs(t, err, shared.ErrInvalidPosition)
}

func TestStudent_StudyPlan(t *testing.T) {
	s := mustStudent(t, 1)

	require.NoError(t, s.AddPlanItem("Algorithms"))
	require.NoError(t, s.AddPlanItem("Databases"))
	assert.Equal(t, []string{"Algorithms", "Databases"}, s.StudyPlan)

	// Plan mutations never touch the GPA.
	assert.Equal(t, 0.0, s.GPA)

	item, err := s.RemovePlanItemAt(1)
	require.NoError(t, err)
	assert.Equal(t, "Algorithms", item)
	assert.Equal(t, []string{"Databases"}, s.StudyPlan)

	_, err = s.RemovePlanItemAt(2)
	assert.ErrorIs(t, err, shared.ErrInvalidPosition)
}

func TestStudent_StudyPlan_CapacityLimit(t *testing.T) {
	s := mustStudent(t, 1)
	for i := 0; i < MaxStudyPlan; i++ {
		require.NoError(t, s.AddPlanItem(fmt.Sprintf("Plan %d", i)))
	}

	assert.ErrorIs(t, s.AddPlanItem("Overflow"), shared.ErrStudyPlanFull)
	assert.Len(t, s.StudyPlan, MaxStudyPlan)
}

func TestStudent_Rename_And_ChangeNationalID(t *testing.T) {
	s := mustStudent(t, 1)

	require.NoError(t, s.Rename("  New Name  "))
	assert.Equal(t, "New Name", s.Name)
	assert.ErrorIs(t, s.Rename(""), shared.ErrInvalidName)

	require.NoError(t, s.ChangeNationalID("98765432109876"))
	assert.Equal(t, NationalID("98765432109876"), s.NationalID)
	assert.ErrorIs(t, s.ChangeNationalID("bad"), shared.ErrInvalidNationalID)
	assert.Equal(t, NationalID("98765432109876"), s.NationalID, "failed change must keep the old value")
}

func TestStudent_Clone_IsDeep(t *testing.T) {
	s := mustStudent(t, 1)
	require.NoError(t, s.AddCourse("Math", 90))
	require.NoError(t, s.AddPlanItem("Algorithms"))

	clone := s.Clone()
	clone.Courses[0].Name = "Mutated"
	clone.StudyPlan[0] = "Mutated"

	assert.Equal(t, "Math", s.Courses[0].Name)
	assert.Equal(t, "Algorithms", s.StudyPlan[0])
}
