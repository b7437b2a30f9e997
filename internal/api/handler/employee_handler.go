package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hrm-api/internal/core/domain"
	"github.com/peoplehub/hrm-api/internal/core/ports"
)

const hireDateLayout = "2006-01-02"

// EmployeeHandler handles HTTP requests for employee CRUD.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type employeeRequest struct {
	FirstName    string  `json:"first_name" validate:"required"`
	LastName     string  `json:"last_name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        string  `json:"phone,omitempty"`
	HireDate     string  `json:"hire_date" validate:"required,datetime=2006-01-02"`
	Salary       float64 `json:"salary" validate:"required,gt=0"`
	DepartmentID string  `json:"department_id" validate:"required"`
	RoleID       string  `json:"role_id" validate:"required"`
}

func (r employeeRequest) toInput() ports.CreateEmployeeInput {
	hireDate, _ := time.Parse(hireDateLayout, r.HireDate)
	return ports.CreateEmployeeInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		HireDate:     hireDate,
		Salary:       r.Salary,
		DepartmentID: r.DepartmentID,
		RoleID:       r.RoleID,
	}
}

// employeeWriteError maps the errors an employee mutation can produce.
func employeeWriteError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "employee not found"})
	case errors.Is(err, domain.ErrDepartmentNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "department not found"})
	case errors.Is(err, domain.ErrJobRoleNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "job role not found"})
	case errors.Is(err, domain.ErrDuplicateEmployee):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return err
}

// List handles GET /api/employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.EmployeeDetail
// @Failure      401  {object}  map[string]string
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	emps, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emps)
}

// Get handles GET /api/employees/:id.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  ports.EmployeeDetail
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	emp, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "employee not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, emp)
}

// Create handles POST /api/employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      201   {object}  ports.EmployeeDetail
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	emp, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return employeeWriteError(c, err)
	}
	return c.JSON(http.StatusCreated, emp)
}

// Update handles PUT /api/employees/:id.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Employee id"
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      200   {object}  ports.EmployeeDetail
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	emp, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return employeeWriteError(c, err)
	}
	return c.JSON(http.StatusOK, emp)
}

// Delete handles DELETE /api/employees/:id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "employee not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
