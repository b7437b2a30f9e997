package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hrm-api/internal/core/domain"
	"github.com/peoplehub/hrm-api/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for department CRUD.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

type departmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// List handles GET /api/departments.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Department
// @Failure      401  {object}  map[string]string
// @Router       /api/departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	depts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, depts)
}

// Get handles GET /api/departments/:id.
//
// @Summary      Get a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Department id"
// @Success      200  {object}  domain.Department
// @Failure      404  {object}  map[string]string
// @Router       /api/departments/{id} [get]
func (h *DepartmentHandler) Get(c echo.Context) error {
	dept, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrDepartmentNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "department not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, dept)
}

// Create handles POST /api/departments.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      departmentRequest  true  "Department details"
// @Success      201   {object}  domain.Department
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	dept, err := h.service.Create(c.Request().Context(), ports.CreateDepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateDepartment) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusCreated, dept)
}

// Update handles PUT /api/departments/:id.
//
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Department id"
// @Param        body  body      departmentRequest  true  "Department details"
// @Success      200   {object}  domain.Department
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/departments/{id} [put]
func (h *DepartmentHandler) Update(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	dept, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.CreateDepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDepartmentNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "department not found"})
		case errors.Is(err, domain.ErrDuplicateDepartment):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, dept)
}

// Delete handles DELETE /api/departments/:id.
//
// @Summary      Delete a department
// @Tags         departments
// @Security     BearerAuth
// @Param        id  path  string  true  "Department id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrDepartmentNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "department not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
