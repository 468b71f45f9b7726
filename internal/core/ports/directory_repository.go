package ports

import (
	"context"

	"github.com/staffdir/employee-directory/internal/core/domain"
)

// EmployeeRepository is the authoritative employee collection. All reads
// return copies in insertion order; lookups and mutations on a missing id
// fail with *domain.EmployeeNotFoundError.
type EmployeeRepository interface {
	All(ctx context.Context) ([]domain.Employee, error)
	ByID(ctx context.Context, id int) (*domain.Employee, error)

	// Insert assigns the next unused id and appends the record.
	Insert(ctx context.Context, e domain.Employee) (*domain.Employee, error)

	// Update shallow-merges the partial over the existing record and
	// returns the result.
	Update(ctx context.Context, id int, u domain.EmployeeUpdate) (*domain.Employee, error)

	Delete(ctx context.Context, id int) error

	// Search matches query case-insensitively as a substring of first name,
	// last name, email or position. An empty query matches everything.
	Search(ctx context.Context, query string) ([]domain.Employee, error)

	ByDepartment(ctx context.Context, d domain.Department) ([]domain.Employee, error)
	ByStatus(ctx context.Context, s domain.EmployeeStatus) ([]domain.Employee, error)
}
