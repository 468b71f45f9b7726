package fixtures

import (
	"testing"
	"time"

	"github.com/staffdir/employee-directory/internal/core/domain"
)

func TestCredentials(t *testing.T) {
	creds, err := Credentials()
	if err != nil {
		t.Fatalf("Credentials failed: %v", err)
	}
	if len(creds) == 0 {
		t.Fatalf("expected seeded credentials")
	}

	roles := make(map[domain.Role]bool)
	for _, c := range creds {
		if c.Username == "" || c.Password == "" {
			t.Fatalf("credential with empty fields: %+v", c)
		}
		if !c.Role.Valid() {
			t.Fatalf("credential with unknown role: %+v", c)
		}
		roles[c.Role] = true
	}
	for _, r := range []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleUser} {
		if !roles[r] {
			t.Fatalf("expected a seeded credential for role %s", r)
		}
	}
}

func TestEmployees(t *testing.T) {
	employees, err := Employees()
	if err != nil {
		t.Fatalf("Employees failed: %v", err)
	}
	if len(employees) == 0 {
		t.Fatalf("expected seeded employees")
	}

	for _, e := range employees {
		if e.ID <= 0 {
			t.Fatalf("employee with non-positive id: %+v", e)
		}
		if e.FirstName == "" || e.Email == "" {
			t.Fatalf("employee missing required fields: %+v", e)
		}
		if !e.Department.Valid() {
			t.Fatalf("employee %d has unknown department %q", e.ID, e.Department)
		}
		if !e.Status.Valid() {
			t.Fatalf("employee %d has unknown status %q", e.ID, e.Status)
		}
		if _, err := time.Parse("2006-01-02", e.HireDate); err != nil {
			t.Fatalf("employee %d has malformed hire date %q", e.ID, e.HireDate)
		}
	}
}
