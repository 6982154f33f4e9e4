// Package memory implements the in-memory student roster.
//
// The roster is an ordered, bounded collection: insertion order is the
// default display order, capacity is student.MaxStudents, and student ids
// are unique at all times. The core contract is single-threaded, but the
// store carries a mutex so that embedding it in a concurrent host does
// not make it immediately unsafe; operations are otherwise not
// coordinated with each other.
package memory

import (
	"context"
	"sync"

	"github.com/campus-hub/student-registry/internal/domain/shared"
	"github.com/campus-hub/student-registry/internal/domain/student"
)

// Roster is the in-memory implementation of student.Repository.
type Roster struct {
	mu       sync.RWMutex
	students []*student.Student
	byID     map[student.StudentID]int // id -> index in students
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		students: make([]*student.Student, 0, student.MaxStudents),
		byID:     make(map[student.StudentID]int, student.MaxStudents),
	}
}

// Add appends a student to the roster.
// The check order is part of the contract: capacity first, then
// uniqueness. On any failure nothing is stored.
func (r *Roster) Add(ctx context.Context, s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.students) >= student.MaxStudents {
		return shared.ErrRosterFull
	}

	if _, exists := r.byID[s.ID]; exists {
		return shared.ErrDuplicateStudentID
	}

	r.byID[s.ID] = len(r.students)
	r.students = append(r.students, s.Clone())
	return nil
}

// Remove deletes the student with the given id, shifting subsequent
// entries left by one. Returns false when the id is not present.
func (r *Roster) Remove(ctx context.Context, id student.StudentID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, exists := r.byID[id]
	if !exists {
		return false
	}

	r.students = append(r.students[:idx], r.students[idx+1:]...)
	delete(r.byID, id)
	for i := idx; i < len(r.students); i++ {
		r.byID[r.students[i].ID] = i
	}
	return true
}

// GetByID returns a copy of the student with the given id.
func (r *Roster) GetByID(ctx context.Context, id student.StudentID) (*student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, exists := r.byID[id]
	if !exists {
		return nil, shared.ErrStudentNotFound
	}
	return r.students[idx].Clone(), nil
}

// Update replaces the stored record with the same id, keeping its
// position in insertion order.
func (r *Roster) Update(ctx context.Context, s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, exists := r.byID[s.ID]
	if !exists {
		return shared.ErrStudentNotFound
	}

	r.students[idx] = s.Clone()
	return nil
}

// List returns copies of all students in insertion order.
func (r *Roster) List(ctx context.Context) []*student.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*student.Student, len(r.students))
	for i, s := range r.students {
		out[i] = s.Clone()
	}
	return out
}

// ReplaceAll swaps the whole roster content in one step. The input must
// already satisfy the roster invariants; otherwise the roster is left
// unchanged and an error is returned.
func (r *Roster) ReplaceAll(ctx context.Context, students []*student.Student) error {
	if len(students) > student.MaxStudents {
		return shared.ErrRosterFull
	}

	byID := make(map[student.StudentID]int, len(students))
	copied := make([]*student.Student, len(students))
	for i, s := range students {
		if _, exists := byID[s.ID]; exists {
			return shared.ErrDuplicateStudentID
		}
		byID[s.ID] = i
		copied[i] = s.Clone()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.students = copied
	r.byID = byID
	return nil
}

// Count returns the number of students in the roster.
func (r *Roster) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.students)
}

var _ student.Repository = (*Roster)(nil)
