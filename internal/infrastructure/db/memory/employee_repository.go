// Package memory holds the process-local adapters: the authoritative
// in-memory employee collection and a single-slot token store. State lives
// for the lifetime of the process and resets on restart.
package memory

import (
	"context"
	"sync"

	"github.com/staffdir/employee-directory/internal/core/domain"
)

// EmployeeRepository keeps the employee collection in insertion order and
// assigns ids from a monotonic counter seeded at max existing id + 1.
// All reads hand out copies; callers never hold a writable reference.
type EmployeeRepository struct {
	mu     sync.RWMutex
	items  []domain.Employee
	nextID int
}

func NewEmployeeRepository(seed []domain.Employee) *EmployeeRepository {
	items := make([]domain.Employee, len(seed))
	copy(items, seed)

	next := 1
	for _, e := range items {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	return &EmployeeRepository{items: items, nextID: next}
}

func (r *EmployeeRepository) All(_ context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Employee, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *EmployeeRepository) ByID(_ context.Context, id int) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, &domain.EmployeeNotFoundError{ID: id}
	}
	record := r.items[i]
	return &record, nil
}

func (r *EmployeeRepository) Insert(_ context.Context, e domain.Employee) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++
	r.items = append(r.items, e)

	record := e
	return &record, nil
}

func (r *EmployeeRepository) Update(_ context.Context, id int, u domain.EmployeeUpdate) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, &domain.EmployeeNotFoundError{ID: id}
	}
	r.items[i].Apply(u)

	record := r.items[i]
	return &record, nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return &domain.EmployeeNotFoundError{ID: id}
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *EmployeeRepository) Search(_ context.Context, query string) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Employee, 0, len(r.items))
	for _, e := range r.items {
		if e.MatchesQuery(query) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EmployeeRepository) ByDepartment(_ context.Context, d domain.Department) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Employee, 0, len(r.items))
	for _, e := range r.items {
		if e.Department == d {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EmployeeRepository) ByStatus(_ context.Context, s domain.EmployeeStatus) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Employee, 0, len(r.items))
	for _, e := range r.items {
		if e.Status == s {
			out = append(out, e)
		}
	}
	return out, nil
}

// indexOf returns the position of id, or -1. Callers hold the lock.
func (r *EmployeeRepository) indexOf(id int) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
