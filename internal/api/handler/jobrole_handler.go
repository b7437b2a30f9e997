package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hrm-api/internal/core/domain"
	"github.com/peoplehub/hrm-api/internal/core/ports"
)

// JobRoleHandler handles HTTP requests for job-title CRUD under /api/roles.
type JobRoleHandler struct {
	service ports.JobRoleService
}

func NewJobRoleHandler(service ports.JobRoleService) *JobRoleHandler {
	return &JobRoleHandler{service: service}
}

type jobRoleRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
}

// List handles GET /api/roles.
//
// @Summary      List job roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.JobRole
// @Failure      401  {object}  map[string]string
// @Router       /api/roles [get]
func (h *JobRoleHandler) List(c echo.Context) error {
	roles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Get handles GET /api/roles/:id.
//
// @Summary      Get a job role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job role id"
// @Success      200  {object}  domain.JobRole
// @Failure      404  {object}  map[string]string
// @Router       /api/roles/{id} [get]
func (h *JobRoleHandler) Get(c echo.Context) error {
	role, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrJobRoleNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "job role not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Create handles POST /api/roles.
//
// @Summary      Create a job role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jobRoleRequest  true  "Job role details"
// @Success      201   {object}  domain.JobRole
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/roles [post]
func (h *JobRoleHandler) Create(c echo.Context) error {
	var req jobRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	role, err := h.service.Create(c.Request().Context(), ports.CreateJobRoleInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateJobRole) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusCreated, role)
}

// Update handles PUT /api/roles/:id.
//
// @Summary      Update a job role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Job role id"
// @Param        body  body      jobRoleRequest  true  "Job role details"
// @Success      200   {object}  domain.JobRole
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/roles/{id} [put]
func (h *JobRoleHandler) Update(c echo.Context) error {
	var req jobRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	role, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.CreateJobRoleInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobRoleNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "job role not found"})
		case errors.Is(err, domain.ErrDuplicateJobRole):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Delete handles DELETE /api/roles/:id.
//
// @Summary      Delete a job role
// @Tags         roles
// @Security     BearerAuth
// @Param        id  path  string  true  "Job role id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/roles/{id} [delete]
func (h *JobRoleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrJobRoleNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "job role not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
