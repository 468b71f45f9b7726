package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffdir/employee-directory/internal/core/domain"
	"github.com/staffdir/employee-directory/internal/core/ports"
	"github.com/staffdir/employee-directory/internal/infrastructure/db/memory"
)

func seedEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: 1, FirstName: "Ann", LastName: "Kovacs", Email: "ann@corp.io", Department: domain.DepartmentIT, Position: "Engineer", Status: domain.StatusActive, HireDate: "2020-01-01", Salary: 90000},
		{ID: 2, FirstName: "Bo", Email: "bo@corp.io", Department: domain.DepartmentHR, Position: "Recruiter", Status: domain.StatusActive, HireDate: "2021-06-15", Salary: 60000},
	}
}

func newTestDirectory(seed []domain.Employee) *DirectoryService {
	return NewDirectoryService(memory.NewEmployeeRepository(seed), Latency{}, zerolog.Nop())
}

func TestDirectoryService_AddAndGet(t *testing.T) {
	svc := newTestDirectory(seedEmployees())

	before, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}

	added, err := svc.Add(context.Background(), ports.CreateEmployeeInput{
		FirstName:  "Cleo",
		LastName:   "Marsh",
		Email:      "cleo@corp.io",
		Department: domain.DepartmentFinance,
		Position:   "Analyst",
		Status:     domain.StatusActive,
		HireDate:   "2024-02-12",
		Salary:     72000,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added.ID != 3 {
		t.Fatalf("expected next id 3, got %d", added.ID)
	}

	got, err := svc.GetByID(context.Background(), added.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if *got != *added {
		t.Fatalf("GetByID mismatch: %+v vs %+v", got, added)
	}

	after, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d records, got %d", len(before)+1, len(after))
	}
}

func TestDirectoryService_Update_ShallowMerge(t *testing.T) {
	svc := newTestDirectory(seedEmployees())

	salary := 999999.0
	updated, err := svc.Update(context.Background(), 1, domain.EmployeeUpdate{Salary: &salary})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Salary != 999999 {
		t.Fatalf("expected salary 999999, got %v", updated.Salary)
	}
	// Everything not in the partial is preserved.
	if updated.FirstName != "Ann" || updated.LastName != "Kovacs" || updated.Email != "ann@corp.io" ||
		updated.Department != domain.DepartmentIT || updated.Position != "Engineer" ||
		updated.Status != domain.StatusActive || updated.HireDate != "2020-01-01" {
		t.Fatalf("shallow merge clobbered unrelated fields: %+v", updated)
	}
}

func TestDirectoryService_Update_NotFound(t *testing.T) {
	svc := newTestDirectory(seedEmployees())

	salary := 1.0
	_, err := svc.Update(context.Background(), 9999, domain.EmployeeUpdate{Salary: &salary})
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	var nf *domain.EmployeeNotFoundError
	if !errors.As(err, &nf) || nf.ID != 9999 {
		t.Fatalf("expected typed not-found carrying id 9999, got %v", err)
	}
}

func TestDirectoryService_Delete(t *testing.T) {
	svc := newTestDirectory(seedEmployees())

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), 1); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), 9999); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound for missing id, got %v", err)
	}
}

func TestDirectoryService_Search(t *testing.T) {
	svc := newTestDirectory(seedEmployees())

	if got, err := svc.Search(context.Background(), "xyz-no-match"); err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v (err %v)", got, err)
	}

	// Case-insensitive, matching across first name, last name, email, position.
	for _, q := range []string{"ann", "ANN", "kovacs", "ann@corp", "engineer"} {
		got, err := svc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("Search(%q) failed: %v", q, err)
		}
		if len(got) == 0 || got[0].ID != 1 {
			t.Fatalf("Search(%q): expected to find Ann, got %v", q, got)
		}
	}

	// Empty query returns the full set.
	got, err := svc.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("Search(\"\") failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("empty query should match everything, got %d records", len(got))
	}
}

func TestDirectoryService_Filters(t *testing.T) {
	svc := newTestDirectory(seedEmployees())

	all, err := svc.FilterByDepartment(context.Background(), nil)
	if err != nil {
		t.Fatalf("FilterByDepartment(nil) failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("nil filter should return everything, got %d", len(all))
	}

	it := domain.DepartmentIT
	got, err := svc.FilterByDepartment(context.Background(), &it)
	if err != nil {
		t.Fatalf("FilterByDepartment failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only the IT record, got %v", got)
	}

	active := domain.StatusActive
	got, err = svc.FilterByStatus(context.Background(), &active)
	if err != nil {
		t.Fatalf("FilterByStatus failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both active records, got %v", got)
	}
}

// Mirrors the two-employee walkthrough: filter, search, delete, list.
func TestDirectoryService_Scenario(t *testing.T) {
	svc := newTestDirectory(seedEmployees())
	ctx := context.Background()

	it := domain.DepartmentIT
	got, err := svc.FilterByDepartment(ctx, &it)
	if err != nil || len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("FilterByDepartment(IT): got %v (err %v)", got, err)
	}

	got, err = svc.Search(ctx, "bo")
	if err != nil || len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("Search(bo): got %v (err %v)", got, err)
	}

	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err = svc.GetAll(ctx)
	if err != nil || len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("GetAll after delete: got %v (err %v)", got, err)
	}
}

// A mutation, once triggered, completes even when the caller stops waiting.
func TestDirectoryService_AbandonedMutationCommits(t *testing.T) {
	repo := memory.NewEmployeeRepository(seedEmployees())
	svc := NewDirectoryService(repo, Latency{Write: 30 * time.Millisecond}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Add(ctx, ports.CreateEmployeeInput{
		FirstName:  "Dana",
		Email:      "dana@corp.io",
		Department: domain.DepartmentSales,
		Position:   "Rep",
		Status:     domain.StatusActive,
		HireDate:   "2025-01-01",
		Salary:     50000,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	all, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("abandoned add should still have committed, got %d records", len(all))
	}
}
