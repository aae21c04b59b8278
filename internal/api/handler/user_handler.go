package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

type UserHandler struct {
	users ports.UserAdminService
}

func NewUserHandler(users ports.UserAdminService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns all users with their assignment counts.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	summaries, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listUsersResponse{Users: make([]userSummaryResponse, 0, len(summaries))}
	for _, s := range summaries {
		resp.Users = append(resp.Users, toUserSummaryResponse(s))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create provisions a new user, optionally with app assignments.
//
// @Summary      Create user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  userEnvelope
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.GlobalRole),
		IsActive: req.IsActive,
		AppIDs:   req.AppIDs,
		ActorID:  claims.UserID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userEnvelope{User: toUserResponse(user)})
}

// Update patches a user's role, active flag, or assignment set.
//
// @Summary      Update user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/admin/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.UpdateUserInput{IsActive: req.IsActive, ActorID: claims.UserID}
	if req.GlobalRole != nil {
		role := domain.Role(*req.GlobalRole)
		in.Role = &role
	}
	if req.AppIDs != nil {
		in.AppIDs = *req.AppIDs
		if in.AppIDs == nil {
			in.AppIDs = []uint{}
		}
	}

	user, err := h.users.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{User: toUserResponse(user)})
}

// SetPassword overrides a user's password without knowing the current one.
//
// @Summary      Set user password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "User ID"
// @Param        body  body      setPasswordRequest  true  "New password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/admin/users/{id}/password [post]
func (h *UserHandler) SetPassword(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req setPasswordRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.users.SetPassword(c.Request().Context(), id, req.Password, claims.UserID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Password updated"})
}
