// Package console implements the interactive terminal front end of the
// student registry. It owns the menu loop, input parsing, and output
// formatting; all state changes go through the application layer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/campus-hub/student-registry/internal/application/command"
	"github.com/campus-hub/student-registry/internal/application/query"
	"github.com/campus-hub/student-registry/internal/domain/shared"
	"github.com/campus-hub/student-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MENU
// ══════════════════════════════════════════════════════════════════════════════

// Handlers bundles the application layer entry points the menu drives.
type Handlers struct {
	Register     *command.RegisterStudentHandler
	Remove       *command.RemoveStudentHandler
	Update       *command.UpdateStudentHandler
	AddCourse    *command.AddCourseHandler
	RemoveCourse *command.RemoveCourseHandler
	StudyPlan    *command.StudyPlanHandler
	Snapshot     *command.SnapshotHandler

	Get    *query.GetStudentHandler
	List   *query.ListStudentsHandler
	Search *query.SearchStudentsHandler
}

// Menu is the interactive terminal loop.
type Menu struct {
	in  *bufio.Reader
	out io.Writer
	h   Handlers
	log *logger.Logger
}

// NewMenu creates a menu reading from in and writing to out.
func NewMenu(in io.Reader, out io.Writer, h Handlers, log *logger.Logger) *Menu {
	if log == nil {
		log = logger.Default()
	}
	return &Menu{
		in:  bufio.NewReader(in),
		out: out,
		h:   h,
		log: log.With(logger.Component("console")),
	}
}

// Run drives the menu until the user exits or input ends. The roster is
// saved once on the exit path; intermediate changes live in memory only.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		choice, err := m.readInt("Enter choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Input ended without an explicit exit. Save anyway
				// so a piped session does not lose its changes.
				return m.saveAndExit(ctx)
			}
			m.println("Invalid choice. Please try again.")
			continue
		}

		switch choice {
		case 1:
			m.addStudent(ctx)
		case 2:
			m.deleteStudent(ctx)
		case 3:
			m.modifyStudent(ctx)
		case 4:
			m.searchStudent(ctx)
		case 5:
			m.listStudents(ctx, query.SortByID)
		case 6:
			m.listStudents(ctx, query.SortByName)
		case 7:
			m.manageCourses(ctx)
		case 8:
			m.showGPA(ctx)
		case 9:
			m.updateStudyPlan(ctx)
		case 10:
			return m.saveAndExit(ctx)
		default:
			m.println("Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) printMenu() {
	m.println("")
	m.println("Student Information System")
	m.println("1. Add Student")
	m.println("2. Delete Student")
	m.println("3. Modify Student")
	m.println("4. Search Student")
	m.println("5. Display Students (Sorted by ID)")
	m.println("6. Display Students (Sorted by Name)")
	m.println("7. Manage Courses")
	m.println("8. Compute GPA")
	m.println("9. Update Study Plan")
	m.println("10. Save and Exit")
}

// ══════════════════════════════════════════════════════════════════════════════
// MENU ACTIONS
// ══════════════════════════════════════════════════════════════════════════════

func (m *Menu) addStudent(ctx context.Context) {
	id, err := m.readInt("Enter student ID: ")
	if err != nil {
		m.println("Invalid ID.")
		return
	}
	name, err := m.readLine("Enter name: ")
	if err != nil {
		m.println("Invalid input.")
		return
	}
	nationalID, err := m.readLine("Enter national ID (14 digits): ")
	if err != nil {
		m.println("Invalid input.")
		return
	}

	res, err := m.h.Register.Handle(ctx, command.RegisterStudentCommand{
		ID:         id,
		Name:       name,
		NationalID: nationalID,
	})
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Student %q added.\n", res.Student.Name)
}

func (m *Menu) deleteStudent(ctx context.Context) {
	id, err := m.readInt("Enter student ID: ")
	if err != nil {
		m.println("Invalid ID.")
		return
	}

	res, err := m.h.Remove.Handle(ctx, command.RemoveStudentCommand{ID: id})
	if err != nil {
		m.printError(err)
		return
	}
	if !res.Removed {
		m.println("Student not found!")
		return
	}
	m.println("Student deleted.")
}

func (m *Menu) modifyStudent(ctx context.Context) {
	id, err := m.readInt("Enter student ID: ")
	if err != nil {
		m.println("Invalid ID.")
		return
	}

	name, err := m.readLine("New name (leave empty to keep current): ")
	if err != nil {
		m.println("Invalid input.")
		return
	}
	nationalID, err := m.readLine("New national ID (leave empty to keep current): ")
	if err != nil {
		m.println("Invalid input.")
		return
	}

	res, err := m.h.Update.Handle(ctx, command.UpdateStudentCommand{
		ID:         id,
		Name:       name,
		NationalID: nationalID,
	})
	if err != nil {
		m.printError(err)
		return
	}
	if len(res.ChangedFields) == 0 {
		m.println("Nothing changed.")
		return
	}
	m.printf("Updated: %s.\n", strings.Join(res.ChangedFields, ", "))
}

func (m *Menu) searchStudent(ctx context.Context) {
	m.println("Search by:")
	m.println("1. ID")
	m.println("2. Name")
	mode, err := m.readInt("Enter choice: ")
	if err != nil {
		m.println("Invalid choice!")
		return
	}

	switch mode {
	case 1:
		id, err := m.readInt("Enter student ID: ")
		if err != nil {
			m.println("Invalid ID.")
			return
		}
		res, err := m.h.Get.Handle(ctx, query.GetStudentQuery{ID: id})
		if err != nil {
			m.printError(err)
			return
		}
		m.print(FormatStudent(res.Student))
	case 2:
		needle, err := m.readLine("Enter name: ")
		if err != nil {
			m.println("Invalid input.")
			return
		}
		res, err := m.h.Search.Handle(ctx, query.SearchStudentsQuery{NameQuery: needle})
		if err != nil {
			m.printError(err)
			return
		}
		if len(res.Students) == 0 {
			m.println("Student not found!")
			return
		}
		m.print(FormatListing(res.Students))
	default:
		m.println("Invalid choice!")
	}
}

func (m *Menu) listStudents(ctx context.Context, order query.SortOrder) {
	res, err := m.h.List.Handle(ctx, query.ListStudentsQuery{SortBy: order})
	if err != nil {
		m.printError(err)
		return
	}
	m.print(FormatListing(res.Students))
}

func (m *Menu) showGPA(ctx context.Context) {
	id, err := m.readInt("Enter student ID: ")
	if err != nil {
		m.println("Invalid ID.")
		return
	}
	res, err := m.h.Get.Handle(ctx, query.GetStudentQuery{ID: id})
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("GPA for %s: %.2f\n", res.Student.Name, res.Student.GPA)
}

// ══════════════════════════════════════════════════════════════════════════════
// COURSE SUBMENU
// ══════════════════════════════════════════════════════════════════════════════

func (m *Menu) manageCourses(ctx context.Context) {
	id, err := m.readInt("Enter student ID: ")
	if err != nil {
		m.println("Invalid ID.")
		return
	}
	if _, err := m.h.Get.Handle(ctx, query.GetStudentQuery{ID: id}); err != nil {
		m.printError(err)
		return
	}

	for {
		m.println("")
		m.println("1. Add Course")
		m.println("2. Remove Course")
		m.println("3. View Courses")
		m.println("4. Back")
		choice, err := m.readInt("Choice: ")
		if err != nil {
			m.println("Invalid choice!")
			return
		}

		switch choice {
		case 1:
			name, err := m.readLine("Course name: ")
			if err != nil {
				m.println("Invalid input.")
				return
			}
			grade, err := m.readFloat("Grade (0-100): ")
			if err != nil {
				m.println("Invalid grade.")
				continue
			}
			res, err := m.h.AddCourse.Handle(ctx, command.AddCourseCommand{
				StudentID:  id,
				CourseName: name,
				Grade:      grade,
			})
			if err != nil {
				m.printError(err)
				continue
			}
			m.printf("Course added. GPA is now %.2f\n", res.GPA)
		case 2:
			pos, err := m.readInt("Course number to remove: ")
			if err != nil {
				m.println("Invalid number.")
				continue
			}
			res, err := m.h.RemoveCourse.Handle(ctx, command.RemoveCourseCommand{
				StudentID: id,
				Position:  pos,
			})
			if err != nil {
				m.printError(err)
				continue
			}
			m.printf("Removed %q. GPA is now %.2f\n", res.Removed.Name, res.GPA)
		case 3:
			res, err := m.h.Get.Handle(ctx, query.GetStudentQuery{ID: id})
			if err != nil {
				m.printError(err)
				return
			}
			m.print(FormatStudent(res.Student))
		case 4:
			m.println("Returning to main menu.")
			return
		default:
			m.println("Invalid choice!")
		}
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// STUDY PLAN SUBMENU
// ══════════════════════════════════════════════════════════════════════════════

func (m *Menu) updateStudyPlan(ctx context.Context) {
	id, err := m.readInt("Enter student ID: ")
	if err != nil {
		m.println("Invalid ID.")
		return
	}
	if _, err := m.h.Get.Handle(ctx, query.GetStudentQuery{ID: id}); err != nil {
		m.printError(err)
		return
	}

	for {
		m.println("")
		m.println("1. Add Course to Plan")
		m.println("2. Remove Course from Plan")
		m.println("3. View Plan")
		m.println("4. Back")
		choice, err := m.readInt("Choice: ")
		if err != nil {
			m.println("Invalid choice!")
			return
		}

		switch choice {
		case 1:
			item, err := m.readLine("Course name: ")
			if err != nil {
				m.println("Invalid input.")
				return
			}
			if _, err := m.h.StudyPlan.HandleAdd(ctx, command.AddPlanItemCommand{
				StudentID: id,
				Item:      item,
			}); err != nil {
				m.printError(err)
				continue
			}
			m.println("Added to plan.")
		case 2:
			pos, err := m.readInt("Plan entry number to remove: ")
			if err != nil {
				m.println("Invalid number.")
				continue
			}
			res, err := m.h.StudyPlan.HandleRemove(ctx, command.RemovePlanItemCommand{
				StudentID: id,
				Position:  pos,
			})
			if err != nil {
				m.printError(err)
				continue
			}
			m.printf("Removed %q from plan.\n", res.Item)
		case 3:
			res, err := m.h.Get.Handle(ctx, query.GetStudentQuery{ID: id})
			if err != nil {
				m.printError(err)
				return
			}
			m.print(FormatStudent(res.Student))
		case 4:
			m.println("Returning to main menu.")
			return
		default:
			m.println("Invalid choice!")
		}
	}
}

func (m *Menu) saveAndExit(ctx context.Context) error {
	res, err := m.h.Snapshot.HandleSave(ctx)
	if err != nil {
		m.printError(err)
		return err
	}
	m.printf("Data saved (%d records). Exiting program.\n", res.Saved)
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// INPUT / OUTPUT HELPERS
// ══════════════════════════════════════════════════════════════════════════════

func (m *Menu) readLine(prompt string) (string, error) {
	m.print(prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) readInt(prompt string) (int, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}

func (m *Menu) readFloat(prompt string) (float64, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(line, 64)
}

func (m *Menu) print(s string)                 { fmt.Fprint(m.out, s) }
func (m *Menu) println(s string)               { fmt.Fprintln(m.out, s) }
func (m *Menu) printf(format string, a ...any) { fmt.Fprintf(m.out, format, a...) }

// printError translates domain errors into the short messages the
// terminal user expects. Unknown errors are shown as-is and logged.
func (m *Menu) printError(err error) {
	switch {
	case errors.Is(err, shared.ErrStudentNotFound):
		m.println("Student not found!")
	case errors.Is(err, shared.ErrDuplicateStudentID):
		m.println("A student with this ID already exists!")
	case errors.Is(err, shared.ErrRosterFull):
		m.println("The roster is full, cannot add more students.")
	case errors.Is(err, shared.ErrCourseLimitReached):
		m.println("This student already has the maximum number of courses.")
	case errors.Is(err, shared.ErrStudyPlanFull):
		m.println("The study plan is full.")
	case errors.Is(err, shared.ErrInvalidPosition):
		m.println("No entry at that position.")
	case shared.IsValidation(err):
		m.printf("Invalid input: %v\n", err)
	default:
		m.log.Error("unexpected error", logger.Err(err))
		m.printf("Error: %v\n", err)
	}
}
