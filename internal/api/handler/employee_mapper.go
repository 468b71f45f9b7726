package handler

import (
	"github.com/staffdir/employee-directory/internal/core/domain"
	"github.com/staffdir/employee-directory/internal/core/ports"
)

func toEmployeeResponse(e domain.Employee) employeeResponse {
	return employeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: string(e.Department),
		Position:   e.Position,
		Status:     string(e.Status),
		HireDate:   e.HireDate,
		Salary:     e.Salary,
		ImageURL:   e.ImageURL,
	}
}

func toEmployeeListResponse(records []domain.Employee) employeeListResponse {
	items := make([]employeeResponse, 0, len(records))
	for _, e := range records {
		items = append(items, toEmployeeResponse(e))
	}
	return employeeListResponse{Items: items, Total: len(items)}
}

func toCreateInput(req createEmployeeRequest) ports.CreateEmployeeInput {
	return ports.CreateEmployeeInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: domain.Department(req.Department),
		Position:   req.Position,
		Status:     domain.EmployeeStatus(req.Status),
		HireDate:   req.HireDate,
		Salary:     req.Salary,
		ImageURL:   req.ImageURL,
	}
}

// toEmployeeUpdate carries only the fields the client sent; the id in the
// URL is authoritative and a body can never reassign it.
func toEmployeeUpdate(req updateEmployeeRequest) domain.EmployeeUpdate {
	u := domain.EmployeeUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		HireDate:  req.HireDate,
		Salary:    req.Salary,
		ImageURL:  req.ImageURL,
	}
	if req.Department != nil {
		d := domain.Department(*req.Department)
		u.Department = &d
	}
	if req.Status != nil {
		s := domain.EmployeeStatus(*req.Status)
		u.Status = &s
	}
	return u
}
