// Package fixtures bundles the read-only seed data the service boots from:
// the mocked credential list and the initial employee collection. The files
// are compiled into the binary and never written back.
package fixtures

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/staffdir/employee-directory/internal/core/domain"
)

//go:embed credentials.json
var credentialsJSON []byte

//go:embed employees.json
var employeesJSON []byte

// Credentials returns the seeded credential list.
func Credentials() ([]domain.Credential, error) {
	var creds []domain.Credential
	if err := json.Unmarshal(credentialsJSON, &creds); err != nil {
		return nil, fmt.Errorf("decode credentials fixture: %w", err)
	}
	for _, c := range creds {
		if !c.Role.Valid() {
			return nil, fmt.Errorf("credentials fixture: unknown role %q for %q", c.Role, c.Username)
		}
	}
	return creds, nil
}

// Employees returns the seeded employee collection in fixture order.
func Employees() ([]domain.Employee, error) {
	var employees []domain.Employee
	if err := json.Unmarshal(employeesJSON, &employees); err != nil {
		return nil, fmt.Errorf("decode employees fixture: %w", err)
	}
	seen := make(map[int]struct{}, len(employees))
	for _, e := range employees {
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("employees fixture: duplicate id %d", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return employees, nil
}
