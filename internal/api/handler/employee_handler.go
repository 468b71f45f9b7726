package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdir/employee-directory/internal/api/metrics"
	"github.com/staffdir/employee-directory/internal/core/domain"
	"github.com/staffdir/employee-directory/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for the employee directory.
type EmployeeHandler struct {
	directory ports.DirectoryService
}

func NewEmployeeHandler(directory ports.DirectoryService) *EmployeeHandler {
	return &EmployeeHandler{directory: directory}
}

// List returns employees, optionally narrowed by free-text search and
// equality filters.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        q           query  string  false  "Substring match on first name, last name, email or position"
// @Param        department  query  string  false  "Department equality filter"
// @Param        status      query  string  false  "Status equality filter"
// @Success      200  {object}  employeeListResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	start := time.Now()

	q := c.QueryParam("q")
	deptParam := c.QueryParam("department")
	statusParam := c.QueryParam("status")

	var dept *domain.Department
	if deptParam != "" {
		d := domain.Department(deptParam)
		if !d.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown department: "+deptParam)
		}
		dept = &d
	}

	var status *domain.EmployeeStatus
	if statusParam != "" {
		s := domain.EmployeeStatus(statusParam)
		if !s.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status: "+statusParam)
		}
		status = &s
	}

	records, err := h.list(c, q, dept, status)
	observe("list", start, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEmployeeListResponse(records))
}

// list composes the store operations the way the dashboard does: a single
// filter goes straight to the store; a search result set is narrowed by any
// filters that accompany it.
func (h *EmployeeHandler) list(c echo.Context, q string, dept *domain.Department, status *domain.EmployeeStatus) ([]domain.Employee, error) {
	ctx := c.Request().Context()

	if q == "" && status == nil {
		return h.directory.FilterByDepartment(ctx, dept)
	}
	if q == "" && dept == nil {
		return h.directory.FilterByStatus(ctx, status)
	}

	records, err := h.directory.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	out := records[:0]
	for _, e := range records {
		if dept != nil && e.Department != *dept {
			continue
		}
		if status != nil && e.Status != *status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// GetByID returns a single employee.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) GetByID(c echo.Context) error {
	start := time.Now()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	record, err := h.directory.GetByID(c.Request().Context(), id)
	observe("get", start, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEmployeeResponse(*record))
}

// Create adds a new employee record.
//
// @Summary      Add an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Security     BearerAuth
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	start := time.Now()

	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	record, err := h.directory.Add(c.Request().Context(), toCreateInput(req))
	observe("create", start, err)
	if err != nil {
		return err
	}

	c.Logger().Debugf("employee %d added by %s", record.ID, username)
	return c.JSON(http.StatusCreated, toEmployeeResponse(*record))
}

// Update merges the provided fields into an existing record.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Employee id"
// @Param        body  body      updateEmployeeRequest  true  "Fields to change"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /employees/{id} [patch]
func (h *EmployeeHandler) Update(c echo.Context) error {
	start := time.Now()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.Update(c.Request().Context(), id, toEmployeeUpdate(req))
	observe("update", start, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEmployeeResponse(*record))
}

// Delete removes an employee record.
//
// @Summary      Delete an employee
// @Tags         employees
// @Param        id   path  int  true  "Employee id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	start := time.Now()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.directory.Delete(c.Request().Context(), id)
	observe("delete", start, err)
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return id, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrEmployeeNotFound)
}

func observe(op string, start time.Time, err error) {
	result := "success"
	switch {
	case err == nil:
	case isNotFound(err):
		result = "not_found"
	default:
		result = "error"
	}
	metrics.EmployeeOperationsTotal.WithLabelValues(op, result).Inc()
	metrics.EmployeeOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
