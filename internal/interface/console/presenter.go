package console

import (
	"fmt"
	"strings"

	"github.com/campus-hub/student-registry/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// PRESENTER
// Formats domain records for terminal output. Pure functions, no state.
// ══════════════════════════════════════════════════════════════════════════════

// FormatStudent renders a full record card with courses and study plan.
func FormatStudent(s *student.Student) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ID: %d\n", s.ID)
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "National ID: %s\n", s.NationalID)
	fmt.Fprintf(&b, "GPA: %.2f\n", s.GPA)

	if len(s.Courses) == 0 {
		b.WriteString("Courses: none\n")
	} else {
		b.WriteString("Courses:\n")
		for i, c := range s.Courses {
			fmt.Fprintf(&b, "  %d. %s: %.1f (%.2f points)\n", i+1, c.Name, float64(c.Grade), c.Grade.Points())
		}
	}

	if len(s.StudyPlan) == 0 {
		b.WriteString("Study plan: empty\n")
	} else {
		b.WriteString("Study plan:\n")
		for i, item := range s.StudyPlan {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, item)
		}
	}

	return b.String()
}

// FormatStudentLine renders one compact listing row.
func FormatStudentLine(s *student.Student) string {
	return fmt.Sprintf("%-6d %-24s %-16s %5.2f  courses: %d",
		s.ID, s.Name, s.NationalID, s.GPA, len(s.Courses))
}

// FormatListing renders a table of records with a header row.
func FormatListing(students []*student.Student) string {
	if len(students) == 0 {
		return "No students registered.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-24s %-16s %5s  %s\n", "ID", "Name", "National ID", "GPA", "")
	for _, s := range students {
		b.WriteString(FormatStudentLine(s))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Total: %d\n", len(students))
	return b.String()
}
