package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by login when no seeded credential pair
// matches exactly. It is the only failure login reports for a bad pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmployeeNotFound is the sentinel all directory lookups and mutations on
// a missing id match via errors.Is.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeNotFoundError carries the id of the missing record.
type EmployeeNotFoundError struct {
	ID int
}

func (e *EmployeeNotFoundError) Error() string {
	return fmt.Sprintf("employee with id %d not found", e.ID)
}

// Is makes the typed error match ErrEmployeeNotFound under errors.Is.
func (e *EmployeeNotFoundError) Is(target error) bool {
	return target == ErrEmployeeNotFound
}
