package student

// ══════════════════════════════════════════════════════════════════════════════
// GRADE CONVERSION & GPA
// Перевод процентной оценки в балл по шкале 4.0 и пересчёт GPA.
// ══════════════════════════════════════════════════════════════════════════════

// gradeBand описывает одну ступень шкалы: нижняя граница включительно.
type gradeBand struct {
	threshold Grade
	point     float64
}

// Ступени проверяются сверху вниз, побеждает первая подходящая.
// Граничные значения относятся к верхней ступени, потому что сравнение
// нестрогое ("больше или равно").
var gradeScale = []gradeBand{
	{93, 4.00},
	{90, 3.70},
	{87, 3.33},
	{83, 3.00},
	{80, 2.70},
	{77, 2.30},
	{73, 2.00},
	{70, 1.70},
	{67, 1.30},
	{63, 1.00},
	{60, 0.70},
}

// Points переводит процентную оценку в балл по шкале 4.0.
// Функция детерминированная и тотальная: значения вне [0, 100] не
// отвергаются, валидация происходит при вводе курса.
func (g Grade) Points() float64 {
	for _, band := range gradeScale {
		if g >= band.threshold {
			return band.point
		}
	}
	return 0.00
}

// RecomputeGPA пересчитывает GPA студента из списка курсов и записывает
// результат в поле GPA. Возвращает новое значение.
//
// Пустой список курсов даёт 0.0 (деления на ноль нет). Результат
// ограничивается сверху значением 4.0 на случай накопленной ошибки
// плавающей точки.
func (s *Student) RecomputeGPA() float64 {
	if len(s.Courses) == 0 {
		s.GPA = 0.0
		return s.GPA
	}

	total := 0.0
	for _, c := range s.Courses {
		total += c.Grade.Points()
	}

	gpa := total / float64(len(s.Courses))
	if gpa > 4.0 {
		gpa = 4.0
	}

	s.GPA = gpa
	return s.GPA
}
