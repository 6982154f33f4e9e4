// Package textfile implements the delimited-text persistence format for
// the student roster: one line per student, fields separated by ',' and
// course entries by ':'.
//
// Line layout:
//
//	id,name,nationalId,numCourses,(courseName:courseGrade,)*,gpa,numStudyPlan,(planItem,)*
//
// The trailing field carries no trailing delimiter. The format does not
// escape delimiter characters inside names or plan items; a field
// containing ',' or ':' cannot round-trip. This limitation is kept on
// purpose for compatibility with existing roster files.
package textfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/campus-hub/student-registry/internal/domain/shared"
	"github.com/campus-hub/student-registry/internal/domain/student"
)

const (
	fieldSep  = ","
	courseSep = ":"
)

// EncodeLine renders one student as a single line, without the newline.
func EncodeLine(s *student.Student) string {
	fields := make([]string, 0, 6+len(s.Courses)+len(s.StudyPlan))

	fields = append(fields,
		strconv.Itoa(int(s.ID)),
		s.Name,
		string(s.NationalID),
		strconv.Itoa(len(s.Courses)),
	)

	for _, c := range s.Courses {
		fields = append(fields, c.Name+courseSep+formatFloat(float64(c.Grade)))
	}

	fields = append(fields,
		formatFloat(s.GPA),
		strconv.Itoa(len(s.StudyPlan)),
	)

	fields = append(fields, s.StudyPlan...)

	return strings.Join(fields, fieldSep)
}

// DecodeLine parses one line back into a student.
//
// Structural problems (non-numeric id, bad course count, counts above the
// domain limits, truncated sections) make the whole line malformed; the
// caller skips it and moves on. Numeric parse failures on the optional
// trailing values (course grade, gpa) default to 0.0 instead, preserving
// the rest of the record. A line that simply ends after the course block
// means "no gpa recorded, empty study plan".
//
// Field contents are taken as-is: the loader does not re-validate names
// or national ids, matching the original file reader's tolerance.
func DecodeLine(line string) (*student.Student, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 4 {
		return nil, malformed("too few fields")
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, malformed("non-numeric id")
	}

	numCourses, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil || numCourses < 0 {
		return nil, malformed("bad course count")
	}
	if numCourses > student.MaxCourses {
		return nil, malformed("course count above limit")
	}

	s := &student.Student{
		ID:         student.StudentID(id),
		Name:       fields[1],
		NationalID: student.NationalID(fields[2]),
		Courses:    make([]student.Course, 0, student.MaxCourses),
		StudyPlan:  make([]string, 0, student.MaxStudyPlan),
	}

	idx := 4
	for i := 0; i < numCourses; i++ {
		if idx >= len(fields) {
			return nil, malformed("truncated course list")
		}

		name, gradeStr, found := strings.Cut(fields[idx], courseSep)
		if !found || name == "" {
			return nil, malformed("bad course entry")
		}

		grade := 0.0
		if g, err := strconv.ParseFloat(strings.TrimSpace(gradeStr), 64); err == nil {
			grade = g
		}

		s.Courses = append(s.Courses, student.Course{
			Name:  name,
			Grade: student.Grade(grade),
		})
		idx++
	}

	// The original writer separated the course block from the gpa with
	// an extra comma, so a zero-course record carries an empty filler
	// field here ("...,0,,gpa,..."). Consume it, or the gpa and plan
	// sections shift by one.
	if numCourses == 0 && idx < len(fields) && strings.TrimSpace(fields[idx]) == "" {
		idx++
	}

	// The persisted gpa is read for format compatibility but never
	// trusted: callers recompute it from the parsed courses.
	if idx >= len(fields) {
		return s, nil
	}
	if g, err := strconv.ParseFloat(strings.TrimSpace(fields[idx]), 64); err == nil {
		s.GPA = g
	}
	idx++

	if idx >= len(fields) {
		return s, nil
	}

	planToken := strings.TrimSpace(fields[idx])
	idx++
	if planToken == "" {
		return s, nil
	}

	numPlan, err := strconv.Atoi(planToken)
	if err != nil || numPlan < 0 {
		return nil, malformed("bad study plan count")
	}
	if numPlan > student.MaxStudyPlan {
		return nil, malformed("study plan count above limit")
	}
	if idx+numPlan > len(fields) {
		return nil, malformed("truncated study plan")
	}

	s.StudyPlan = append(s.StudyPlan, fields[idx:idx+numPlan]...)

	// Fields beyond the declared plan count are ignored. The original
	// writer emitted a trailing comma for empty sections, which shows
	// up here as one extra empty field.
	return s, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func malformed(reason string) error {
	return fmt.Errorf("%w: %s", shared.ErrMalformedRecord, reason)
}
