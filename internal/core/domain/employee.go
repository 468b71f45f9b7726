package domain

import "strings"

// Department is the organizational unit an employee belongs to.
type Department string

const (
	DepartmentIT         Department = "IT"
	DepartmentHR         Department = "HR"
	DepartmentFinance    Department = "Finance"
	DepartmentMarketing  Department = "Marketing"
	DepartmentSales      Department = "Sales"
	DepartmentOperations Department = "Operations"
)

// Valid reports whether d is one of the known departments.
func (d Department) Valid() bool {
	switch d {
	case DepartmentIT, DepartmentHR, DepartmentFinance, DepartmentMarketing, DepartmentSales, DepartmentOperations:
		return true
	}
	return false
}

// EmployeeStatus represents the employment state of a record.
type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "Active"
	StatusInactive EmployeeStatus = "Inactive"
	StatusOnLeave  EmployeeStatus = "On Leave"
)

// Valid reports whether s is one of the known statuses.
func (s EmployeeStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave:
		return true
	}
	return false
}

// Employee is the core directory record. IDs are assigned by the repository
// and are unique for the lifetime of the process.
type Employee struct {
	ID         int            `json:"id"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name,omitempty"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone,omitempty"`
	Department Department     `json:"department"`
	Position   string         `json:"position"`
	Status     EmployeeStatus `json:"status"`
	HireDate   string         `json:"hire_date"` // ISO date, yyyy-mm-dd
	Salary     float64        `json:"salary"`
	ImageURL   string         `json:"image_url,omitempty"`
}

// EmployeeUpdate is a partial record. Nil fields are preserved when the
// update is merged over an existing employee.
type EmployeeUpdate struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	Department *Department
	Position   *string
	Status     *EmployeeStatus
	HireDate   *string
	Salary     *float64
	ImageURL   *string
}

// Apply shallow-merges the update into e: fields set in u override, nil
// fields keep their prior values. The ID is never touched.
func (e *Employee) Apply(u EmployeeUpdate) {
	if u.FirstName != nil {
		e.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		e.LastName = *u.LastName
	}
	if u.Email != nil {
		e.Email = *u.Email
	}
	if u.Phone != nil {
		e.Phone = *u.Phone
	}
	if u.Department != nil {
		e.Department = *u.Department
	}
	if u.Position != nil {
		e.Position = *u.Position
	}
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.HireDate != nil {
		e.HireDate = *u.HireDate
	}
	if u.Salary != nil {
		e.Salary = *u.Salary
	}
	if u.ImageURL != nil {
		e.ImageURL = *u.ImageURL
	}
}

// MatchesQuery reports whether the record matches a case-insensitive
// substring search over first name, last name, email and position.
// A missing last name is treated as the empty string.
func (e *Employee) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.FirstName), q) ||
		strings.Contains(strings.ToLower(e.LastName), q) ||
		strings.Contains(strings.ToLower(e.Email), q) ||
		strings.Contains(strings.ToLower(e.Position), q)
}
