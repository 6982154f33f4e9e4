package student

import (
	"context"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Эти интерфейсы определяют контракт для работы с хранилищем записей.
// Реализации находятся в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository - контракт хранилища студентов. Хранилище упорядоченное
// (порядок вставки сохраняется), ограниченное MaxStudents записями,
// с уникальными идентификаторами.
//
// Все методы чтения возвращают копии: вызывающий код не может изменить
// состояние хранилища через возвращённые сущности.
type Repository interface {
	// Add добавляет студента. Порядок проверок фиксирован: сначала
	// вместимость (ErrRosterFull), затем уникальность идентификатора
	// (ErrDuplicateStudentID). Частичная запись невозможна.
	Add(ctx context.Context, s *Student) error

	// Remove удаляет студента по идентификатору, сдвигая последующие
	// записи влево (порядок остальных сохраняется). Возвращает false,
	// если студент не найден. Идентификаторы не переиспользуются.
	Remove(ctx context.Context, id StudentID) bool

	// GetByID возвращает копию студента или ErrStudentNotFound.
	GetByID(ctx context.Context, id StudentID) (*Student, error)

	// Update заменяет запись с тем же идентификатором, сохраняя её
	// позицию в порядке вставки. Возвращает ErrStudentNotFound, если
	// записи нет.
	Update(ctx context.Context, s *Student) error

	// List возвращает копии всех студентов в порядке вставки.
	List(ctx context.Context) []*Student

	// ReplaceAll атомарно заменяет всё содержимое хранилища.
	// Используется загрузчиком файла. Входной срез должен удовлетворять
	// инвариантам (не больше MaxStudents, уникальные идентификаторы),
	// иначе возвращается ошибка и хранилище не меняется.
	ReplaceAll(ctx context.Context, students []*Student) error

	// Count возвращает число студентов в хранилище.
	Count(ctx context.Context) int
}
