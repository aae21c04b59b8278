package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/core-platform/launchpad/internal/api/middleware"
	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

// ZohoHandler proxies CRM reads and writes to the Zoho connector service,
// forwarding the caller's session token for downstream auth.
type ZohoHandler struct {
	zoho ports.ZohoClient
}

func NewZohoHandler(zoho ports.ZohoClient) *ZohoHandler {
	return &ZohoHandler{zoho: zoho}
}

func sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(middleware.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Leads proxies the connector's lead listing.
//
// @Summary      List CRM leads
// @Tags         zoho
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      502  {object}  map[string]any
// @Router       /api/zoho/leads [get]
func (h *ZohoHandler) Leads(c echo.Context) error {
	body, err := h.zoho.GetLeads(c.Request().Context(), sessionToken(c))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, body)
}

// Accounts proxies the connector's account listing.
//
// @Summary      List CRM accounts
// @Tags         zoho
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      502  {object}  map[string]any
// @Router       /api/zoho/accounts [get]
func (h *ZohoHandler) Accounts(c echo.Context) error {
	body, err := h.zoho.GetAccounts(c.Request().Context(), sessionToken(c))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, body)
}

// CreateLead forwards a lead payload to the connector verbatim.
//
// @Summary      Create CRM lead
// @Tags         zoho
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      502  {object}  map[string]any
// @Router       /api/zoho/create-lead [post]
func (h *ZohoHandler) CreateLead(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	if !json.Valid(raw) {
		return domain.NewValidationError("Invalid request body")
	}

	body, err := h.zoho.CreateLead(c.Request().Context(), raw, sessionToken(c))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusCreated, body)
}
