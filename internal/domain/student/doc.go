// Package student содержит доменную модель студенческого реестра.
//
// Пакет определяет:
//
//   - Сущности: Student, Course
//   - Value Objects: StudentID, NationalID, Grade
//   - Шкалу перевода процентной оценки в балл 4.0 и пересчёт GPA
//   - Доменные события: StudentRegistered, CourseAdded и др.
//   - Контракт хранилища: Repository
//
// Пакет не зависит от инфраструктуры: хранилище и сериализация
// реализуются в internal/infrastructure и подключаются через интерфейсы.
// Все изменения списка курсов проходят через методы сущности, поэтому
// GPA всегда является функцией текущего списка курсов.
package student
