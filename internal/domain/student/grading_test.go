package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradePoints_Thresholds(t *testing.T) {
	tests := []struct {
		grade Grade
		want  float64
	}{
		{100, 4.00},
		{93, 4.00},
		{92.9, 3.70},
		{90, 3.70},
		{89.9, 3.33},
		{87, 3.33},
		{83, 3.00},
		{80, 2.70},
		{77, 2.30},
		{73, 2.00},
		{70, 1.70},
		{67, 1.30},
		{63, 1.00},
		{60, 0.70},
		{59.9, 0.00},
		{0, 0.00},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.grade.Points(), "grade %v", tt.grade)
	}
}

func TestGradePoints_Monotonic(t *testing.T) {
	prev := Grade(0).Points()
	for g := 1; g <= 100; g++ {
		cur := Grade(g).Points()
		assert.GreaterOrEqual(t, cur, prev, "points must not decrease at grade %d", g)
		prev = cur
	}
}

func TestRecomputeGPA_EmptyCourses(t *testing.T) {
	s := mustStudent(t, 1)
	s.GPA = 3.0 // stale value

	got := s.RecomputeGPA()

	assert.Equal(t, 0.0, got)
	assert.Equal(t, 0.0, s.GPA)
}

func TestRecomputeGPA_Scenario(t *testing.T) {
	s := mustStudent(t, 1)

	err := s.AddCourse("Math", 90.0)
	require.NoError(t, err)
	assert.InDelta(t, 3.70, s.GPA, 1e-9)

	err = s.AddCourse("CS", 60.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.20, s.GPA, 1e-9)
}

func TestRecomputeGPA_Idempotent(t *testing.T) {
	s := mustStudent(t, 1)
	require.NoError(t, s.AddCourse("Math", 88.5))
	require.NoError(t, s.AddCourse("Physics", 71.0))

	first := s.RecomputeGPA()
	second := s.RecomputeGPA()

	assert.Equal(t, first, second)
}

func TestRecomputeGPA_ClampedAtFour(t *testing.T) {
	s := mustStudent(t, 1)
	for i := 0; i < MaxCourses; i++ {
		require.NoError(t, s.AddCourse("Course", 100))
	}

	assert.LessOrEqual(t, s.GPA, 4.0)
	assert.InDelta(t, 4.0, s.GPA, 1e-9)
}
