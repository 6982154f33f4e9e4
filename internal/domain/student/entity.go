// Package student содержит доменную модель студенческого реестра.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package student

import (
	"fmt"
	"strings"
	"time"

	"github.com/campus-hub/student-registry/internal/domain/shared"
)

// Фиксированные пределы реестра. Они являются частью контракта формата
// данных и не настраиваются во время выполнения.
const (
	// MaxStudents - максимальное число студентов в реестре.
	MaxStudents = 100
	// MaxCourses - максимальное число курсов у одного студента.
	MaxCourses = 10
	// MaxStudyPlan - максимальное число пунктов в учебном плане.
	MaxStudyPlan = 20
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// StudentID представляет уникальный идентификатор студента.
type StudentID int

// IsValid проверяет, что идентификатор положительный.
func (id StudentID) IsValid() bool {
	return id > 0
}

// String возвращает строковое представление идентификатора.
func (id StudentID) String() string {
	return fmt.Sprintf("%d", int(id))
}

// NationalID представляет национальный идентификатор: ровно 14 цифр ASCII.
// Контрольная сумма не проверяется, только формат.
type NationalID string

// IsValid проверяет формат национального идентификатора.
func (n NationalID) IsValid() bool {
	if len(n) != 14 {
		return false
	}
	for _, c := range []byte(n) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// String возвращает строковое представление.
func (n NationalID) String() string {
	return string(n)
}

// Grade представляет процентную оценку за курс в диапазоне [0, 100].
type Grade float64

// IsValid проверяет, что оценка в допустимом диапазоне.
func (g Grade) IsValid() bool {
	return g >= 0 && g <= 100
}

// Course представляет курс, пройденный студентом. Курс принадлежит ровно
// одному студенту и не имеет собственного жизненного цикла.
type Course struct {
	Name  string
	Grade Grade
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - центральная сущность реестра.
type Student struct {
	// ID - уникальный числовой идентификатор.
	ID StudentID

	// Name - имя студента.
	Name string

	// NationalID - национальный идентификатор (14 цифр).
	NationalID NationalID

	// Courses - упорядоченный список курсов, не более MaxCourses.
	Courses []Course

	// GPA - средний балл по шкале 4.0. Производное значение:
	// пересчитывается при каждом изменении Courses и никогда
	// не задаётся извне.
	GPA float64

	// StudyPlan - упорядоченный список названий курсов, которые студент
	// планирует пройти. Не более MaxStudyPlan пунктов.
	StudyPlan []string

	// CreatedAt - время создания записи.
	CreatedAt time.Time

	// UpdatedAt - время последнего изменения.
	UpdatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewStudentParams содержит параметры для создания нового студента.
type NewStudentParams struct {
	ID         StudentID
	Name       string
	NationalID NationalID
}

// NewStudent создаёт нового студента с валидацией всех полей.
// Новый студент не имеет курсов, учебного плана и имеет GPA 0.0.
func NewStudent(params NewStudentParams) (*Student, error) {
	if !params.ID.IsValid() {
		return nil, shared.ErrInvalidStudentID
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, shared.ErrInvalidName
	}

	if !params.NationalID.IsValid() {
		return nil, shared.ErrInvalidNationalID
	}

	now := time.Now().UTC()

	return &Student{
		ID:         params.ID,
		Name:       name,
		NationalID: params.NationalID,
		Courses:    make([]Course, 0, MaxCourses),
		GPA:        0.0,
		StudyPlan:  make([]string, 0, MaxStudyPlan),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS (Business Logic)
// ══════════════════════════════════════════════════════════════════════════════

// Rename меняет имя студента. Пустое имя не допускается: семантика
// "оставить как есть" реализуется на уровне команды, а не сущности.
func (s *Student) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.ErrInvalidName
	}

	s.Name = name
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// ChangeNationalID меняет национальный идентификатор с проверкой формата.
func (s *Student) ChangeNationalID(id NationalID) error {
	if !id.IsValid() {
		return shared.ErrInvalidNationalID
	}

	s.NationalID = id
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// AddCourse добавляет курс и пересчитывает GPA.
// Проверки выполняются до любого изменения: при ошибке состояние
// студента не меняется.
func (s *Student) AddCourse(name string, grade Grade) error {
	if len(s.Courses) >= MaxCourses {
		return shared.ErrCourseLimitReached
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return shared.ErrInvalidCourseName
	}

	if !grade.IsValid() {
		return shared.ErrInvalidGrade
	}

	s.Courses = append(s.Courses, Course{Name: name, Grade: grade})
	s.RecomputeGPA()
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// RemoveCourseAt удаляет курс по позиции (нумерация с 1, как её видит
// пользователь) со сдвигом влево и пересчитывает GPA.
func (s *Student) RemoveCourseAt(position int) (Course, error) {
	if position < 1 || position > len(s.Courses) {
		return Course{}, shared.ErrInvalidPosition
	}

	idx := position - 1
	removed := s.Courses[idx]
	s.Courses = append(s.Courses[:idx], s.Courses[idx+1:]...)
	s.RecomputeGPA()
	s.UpdatedAt = time.Now().UTC()
	return removed, nil
}

// AddPlanItem добавляет пункт в учебный план. GPA не затрагивается.
func (s *Student) AddPlanItem(name string) error {
	if len(s.StudyPlan) >= MaxStudyPlan {
		return shared.ErrStudyPlanFull
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return shared.ErrInvalidCourseName
	}

	s.StudyPlan = append(s.StudyPlan, name)
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// RemovePlanItemAt удаляет пункт учебного плана по позиции (с 1).
func (s *Student) RemovePlanItemAt(position int) (string, error) {
	if position < 1 || position > len(s.StudyPlan) {
		return "", shared.ErrInvalidPosition
	}

	idx := position - 1
	removed := s.StudyPlan[idx]
	s.StudyPlan = append(s.StudyPlan[:idx], s.StudyPlan[idx+1:]...)
	s.UpdatedAt = time.Now().UTC()
	return removed, nil
}

// CourseCount возвращает число курсов студента.
func (s *Student) CourseCount() int {
	return len(s.Courses)
}

// PlanCount возвращает число пунктов учебного плана.
func (s *Student) PlanCount() int {
	return len(s.StudyPlan)
}

// String возвращает строковое представление студента для логирования.
func (s *Student) String() string {
	return fmt.Sprintf(
		"Student{ID: %d, Name: %s, Courses: %d, GPA: %.2f}",
		s.ID, s.Name, len(s.Courses), s.GPA,
	)
}

// Clone создаёт глубокую копию студента. Срезы копируются, чтобы
// читатели не могли менять состояние реестра через возвращённые данные.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}

	clone := *s
	clone.Courses = make([]Course, len(s.Courses))
	copy(clone.Courses, s.Courses)
	clone.StudyPlan = make([]string, len(s.StudyPlan))
	copy(clone.StudyPlan, s.StudyPlan)
	return &clone
}
