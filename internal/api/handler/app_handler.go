package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

type AppHandler struct {
	apps ports.AppAdminService
}

func NewAppHandler(apps ports.AppAdminService) *AppHandler {
	return &AppHandler{apps: apps}
}

// List returns every app, active and deactivated.
//
// @Summary      List apps
// @Tags         admin
// @Produce      json
// @Success      200  {object}  listAppsResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /api/admin/apps [get]
func (h *AppHandler) List(c echo.Context) error {
	apps, err := h.apps.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listAppsResponse{Apps: toAppResponses(apps)})
}

// Get returns a single app by id.
//
// @Summary      Get app
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "App ID"
// @Success      200  {object}  appEnvelope
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/apps/{id} [get]
func (h *AppHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	app, err := h.apps.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appEnvelope{App: toAppResponse(*app)})
}

// Create registers a new launchable app.
//
// @Summary      Create app
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createAppRequest  true  "New app"
// @Success      201   {object}  appEnvelope
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/admin/apps [post]
func (h *AppHandler) Create(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	var req createAppRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	icon, supplied := req.iconValue()
	app, err := h.apps.Create(c.Request().Context(), ports.CreateAppInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Type:         domain.AppType(req.Type),
		InternalPath: req.InternalPath,
		ExternalURL:  req.ExternalURL,
		Icon:         icon,
		IconSupplied: supplied,
		Version:      req.Version,
		IsActive:     req.IsActive,
		ActorID:      claims.UserID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, appEnvelope{App: toAppResponse(*app)})
}

// Update patches an app in place, including routing-type switches.
//
// @Summary      Update app
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "App ID"
// @Param        body  body      updateAppRequest  true  "Fields to change"
// @Success      200   {object}  appEnvelope
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/admin/apps/{id} [patch]
func (h *AppHandler) Update(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAppRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.UpdateAppInput{
		Name:         req.Name,
		Slug:         req.Slug,
		InternalPath: req.InternalPath,
		ExternalURL:  req.ExternalURL,
		Icon:         req.iconValue(),
		Version:      req.Version,
		IsActive:     req.IsActive,
		ActorID:      claims.UserID,
	}
	if req.Type != nil {
		t := domain.AppType(*req.Type)
		in.Type = &t
	}

	app, err := h.apps.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, appEnvelope{App: toAppResponse(*app)})
}

// Deactivate soft-disables an app. DELETE never removes the row.
//
// @Summary      Deactivate app
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "App ID"
// @Success      200  {object}  appEnvelope
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/apps/{id} [delete]
func (h *AppHandler) Deactivate(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	app, err := h.apps.Deactivate(c.Request().Context(), id, claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, appEnvelope{App: toAppResponse(*app)})
}
