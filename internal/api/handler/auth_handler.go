package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

type AuthHandler struct {
	auth    ports.AuthService
	cookies CookieConfig
}

func NewAuthHandler(auth ports.AuthService, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      429   {object}  map[string]any
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.cookies.sessionCookie(result.Token))

	return c.JSON(http.StatusOK, loginResponse{User: loginUserResponse{
		ID:           result.User.ID,
		Username:     result.User.Username,
		GlobalRole:   string(result.User.Role),
		AssignedApps: result.AssignedApps,
	}})
}

// Logout clears the session cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]any
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := identity(c); err != nil {
		return err
	}
	c.SetCookie(h.cookies.expiredCookie())
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

// Me returns the caller's live profile and active assigned apps.
//
// @Summary      Current session profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]any
// @Router       /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	user, apps, err := h.auth.Me(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{User: meUserResponse{
		ID:         user.ID,
		Username:   user.Username,
		GlobalRole: string(user.Role),
		IsActive:   user.IsActive,
		Apps:       toAppResponses(apps),
	}})
}

// ChangePassword lets the caller rotate their own password.
//
// @Summary      Change own password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /api/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.auth.ChangePassword(c.Request().Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Password updated"})
}
