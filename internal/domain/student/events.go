package student

import (
	"time"

	"github.com/google/uuid"
)

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN EVENTS
// События, которые происходят в реестре и на которые могут реагировать
// другие части системы (журналирование, аудит и т.д.). Доставка строго
// синхронная: подписчики выполняются на горутине вызывающего кода.
// ══════════════════════════════════════════════════════════════════════════════

// EventName идентифицирует тип доменного события.
type EventName string

const (
	EventStudentRegistered EventName = "student.registered"
	EventStudentRemoved    EventName = "student.removed"
	EventStudentUpdated    EventName = "student.updated"
	EventCourseAdded       EventName = "student.course_added"
	EventCourseRemoved     EventName = "student.course_removed"
	EventStudyPlanUpdated  EventName = "student.study_plan_updated"
)

// Event представляет базовый интерфейс доменного события.
type Event interface {
	// Name возвращает имя события.
	Name() EventName

	// OccurredAt возвращает время события.
	OccurredAt() time.Time

	// AggregateID возвращает идентификатор студента.
	AggregateID() StudentID
}

// BaseEvent содержит общие поля для всех событий.
type BaseEvent struct {
	// EventID - уникальный идентификатор события.
	EventID string

	// Timestamp - время события (UTC).
	Timestamp time.Time

	// StudentID - идентификатор студента-агрегата.
	StudentID StudentID

	// StudentName - имя студента на момент события.
	StudentName string
}

// OccurredAt возвращает время события.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID возвращает идентификатор студента.
func (e BaseEvent) AggregateID() StudentID {
	return e.StudentID
}

func newBaseEvent(s *Student) BaseEvent {
	return BaseEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		StudentID:   s.ID,
		StudentName: s.Name,
	}
}

// StudentRegisteredEvent - студент добавлен в реестр.
type StudentRegisteredEvent struct {
	BaseEvent
	NationalID NationalID
}

// Name возвращает имя события.
func (e StudentRegisteredEvent) Name() EventName {
	return EventStudentRegistered
}

// NewStudentRegisteredEvent создаёт событие регистрации студента.
func NewStudentRegisteredEvent(s *Student) StudentRegisteredEvent {
	return StudentRegisteredEvent{
		BaseEvent:  newBaseEvent(s),
		NationalID: s.NationalID,
	}
}

// StudentRemovedEvent - студент удалён из реестра.
type StudentRemovedEvent struct {
	BaseEvent
}

// Name возвращает имя события.
func (e StudentRemovedEvent) Name() EventName {
	return EventStudentRemoved
}

// NewStudentRemovedEvent создаёт событие удаления студента.
func NewStudentRemovedEvent(s *Student) StudentRemovedEvent {
	return StudentRemovedEvent{BaseEvent: newBaseEvent(s)}
}

// StudentUpdatedEvent - изменены имя или национальный идентификатор.
type StudentUpdatedEvent struct {
	BaseEvent

	// ChangedFields перечисляет изменённые поля ("name", "national_id").
	ChangedFields []string
}

// Name возвращает имя события.
func (e StudentUpdatedEvent) Name() EventName {
	return EventStudentUpdated
}

// NewStudentUpdatedEvent создаёт событие изменения данных студента.
func NewStudentUpdatedEvent(s *Student, changed []string) StudentUpdatedEvent {
	return StudentUpdatedEvent{
		BaseEvent:     newBaseEvent(s),
		ChangedFields: changed,
	}
}

// CourseAddedEvent - студенту добавлен курс.
type CourseAddedEvent struct {
	BaseEvent
	CourseName string
	Grade      Grade
	NewGPA     float64
}

// Name возвращает имя события.
func (e CourseAddedEvent) Name() EventName {
	return EventCourseAdded
}

// NewCourseAddedEvent создаёт событие добавления курса.
func NewCourseAddedEvent(s *Student, c Course) CourseAddedEvent {
	return CourseAddedEvent{
		BaseEvent:  newBaseEvent(s),
		CourseName: c.Name,
		Grade:      c.Grade,
		NewGPA:     s.GPA,
	}
}

// CourseRemovedEvent - у студента удалён курс.
type CourseRemovedEvent struct {
	BaseEvent
	CourseName string
	NewGPA     float64
}

// Name возвращает имя события.
func (e CourseRemovedEvent) Name() EventName {
	return EventCourseRemoved
}

// NewCourseRemovedEvent создаёт событие удаления курса.
func NewCourseRemovedEvent(s *Student, c Course) CourseRemovedEvent {
	return CourseRemovedEvent{
		BaseEvent:  newBaseEvent(s),
		CourseName: c.Name,
		NewGPA:     s.GPA,
	}
}

// PlanAction описывает вид изменения учебного плана.
type PlanAction string

const (
	PlanItemAdded   PlanAction = "added"
	PlanItemRemoved PlanAction = "removed"
)

// StudyPlanUpdatedEvent - изменён учебный план студента.
type StudyPlanUpdatedEvent struct {
	BaseEvent
	Action PlanAction
	Item   string
}

// Name возвращает имя события.
func (e StudyPlanUpdatedEvent) Name() EventName {
	return EventStudyPlanUpdated
}

// NewStudyPlanUpdatedEvent создаёт событие изменения учебного плана.
func NewStudyPlanUpdatedEvent(s *Student, action PlanAction, item string) StudyPlanUpdatedEvent {
	return StudyPlanUpdatedEvent{
		BaseEvent: newBaseEvent(s),
		Action:    action,
		Item:      item,
	}
}

// Publisher определяет интерфейс публикации доменных событий.
type Publisher interface {
	// Publish синхронно доставляет событие подписчикам.
	Publish(event Event)
}
