package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hrm-api/internal/api/metrics"
	"github.com/peoplehub/hrm-api/internal/api/middleware"
	"github.com/peoplehub/hrm-api/internal/core/domain"
	"github.com/peoplehub/hrm-api/internal/core/ports"
)

// invalidCredentialsMsg is the only message credential failures ever produce;
// it never says which field was wrong.
const invalidCredentialsMsg = "Invalid username or password"

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	// Roles is honored only when the caller is an authenticated ADMIN;
	// self-service registration always gets the default role.
	Roles []string `json:"roles,omitempty"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type meResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Email    string   `json:"email,omitempty"`
}

// Register creates a new user account and logs it in.
//
// @Summary      Register a new user
// @Description  Self-service registration gets the EMPLOYEE role; the roles field is applied only when the request carries an ADMIN bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	// Only an authenticated ADMIN may assign roles; anyone else registers
	// with the default role regardless of what the payload asks for.
	roles := req.Roles
	callerRoles, _ := c.Get(middleware.CtxRoles).([]domain.Role)
	if !domain.Allowed(callerRoles, []domain.Role{domain.RoleAdmin}) {
		roles = nil
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Email, roles)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrEmailTaken):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "username and password are required"})
		default:
			metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
			return err
		}
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{
		Token:    token,
		Username: user.Username,
		Roles:    domain.RoleStrings(user.Roles),
	})
}

// Login authenticates a user and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": invalidCredentialsMsg})
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{
		Token:    token,
		Username: user.Username,
		Roles:    domain.RoleStrings(user.Roles),
	})
}

// Me returns the profile of the authenticated caller.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	username, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown principal"})
		}
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		Username: user.Username,
		Roles:    domain.RoleStrings(user.Roles),
		Email:    user.Email,
	})
}
