package ports

import (
	"context"

	"github.com/staffdir/employee-directory/internal/core/domain"
)

// CreateEmployeeInput carries all data needed to add a new record; the id
// is assigned by the store.
type CreateEmployeeInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Department domain.Department
	Position   string
	Status     domain.EmployeeStatus
	HireDate   string
	Salary     float64
	ImageURL   string
}

// DirectoryService defines the use-case operations over the employee
// collection. Every call completes after a configured simulated latency to
// preserve the remote-API contract callers must accommodate; a mutation,
// once applied, completes even when the caller stops waiting.
type DirectoryService interface {
	GetAll(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int) (*domain.Employee, error)
	Add(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id int, update domain.EmployeeUpdate) (*domain.Employee, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string) ([]domain.Employee, error)

	// FilterByDepartment and FilterByStatus treat nil as "no filter" and
	// return the full set in insertion order.
	FilterByDepartment(ctx context.Context, d *domain.Department) ([]domain.Employee, error)
	FilterByStatus(ctx context.Context, s *domain.EmployeeStatus) ([]domain.Employee, error)
}
