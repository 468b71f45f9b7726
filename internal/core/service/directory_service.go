package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffdir/employee-directory/internal/core/domain"
	"github.com/staffdir/employee-directory/internal/core/ports"
)

// Latency is the simulated remote-API delay applied to directory
// operations. Zero values disable the wait (tests).
type Latency struct {
	Read  time.Duration
	Write time.Duration
}

// DirectoryService implements the employee use cases over the repository,
// adding the latency contract and structured logging.
type DirectoryService struct {
	repo ports.EmployeeRepository
	lat  Latency
	log  zerolog.Logger
}

func NewDirectoryService(repo ports.EmployeeRepository, lat Latency, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, lat: lat, log: log}
}

func (s *DirectoryService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	records, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	if err := wait(ctx, s.lat.Read); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *DirectoryService) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := wait(ctx, s.lat.Read); err != nil {
		return nil, err
	}
	return record, nil
}

// Add appends a new record. The insert happens before the latency wait, so
// an abandoned call still commits.
func (s *DirectoryService) Add(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	record, err := s.repo.Insert(ctx, domain.Employee{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		Department: input.Department,
		Position:   input.Position,
		Status:     input.Status,
		HireDate:   input.HireDate,
		Salary:     input.Salary,
		ImageURL:   input.ImageURL,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to add employee")
		return nil, err
	}

	s.log.Info().Int("id", record.ID).Str("email", record.Email).Msg("employee added")

	if err := wait(ctx, s.lat.Write); err != nil {
		return nil, err
	}
	return record, nil
}

// Update shallow-merges the partial over the existing record: fields absent
// from the update keep their prior values.
func (s *DirectoryService) Update(ctx context.Context, id int, update domain.EmployeeUpdate) (*domain.Employee, error) {
	record, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("id", id).Msg("employee updated")

	if err := wait(ctx, s.lat.Write); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *DirectoryService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int("id", id).Msg("employee deleted")

	return wait(ctx, s.lat.Write)
}

func (s *DirectoryService) Search(ctx context.Context, query string) ([]domain.Employee, error) {
	records, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if err := wait(ctx, s.lat.Read); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *DirectoryService) FilterByDepartment(ctx context.Context, d *domain.Department) ([]domain.Employee, error) {
	if d == nil {
		return s.GetAll(ctx)
	}
	records, err := s.repo.ByDepartment(ctx, *d)
	if err != nil {
		return nil, err
	}
	if err := wait(ctx, s.lat.Read); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *DirectoryService) FilterByStatus(ctx context.Context, st *domain.EmployeeStatus) ([]domain.Employee, error) {
	if st == nil {
		return s.GetAll(ctx)
	}
	records, err := s.repo.ByStatus(ctx, *st)
	if err != nil {
		return nil, err
	}
	if err := wait(ctx, s.lat.Read); err != nil {
		return nil, err
	}
	return records, nil
}

// wait blocks for the simulated latency or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
