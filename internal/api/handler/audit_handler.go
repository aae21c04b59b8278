package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/core-platform/launchpad/internal/core/ports"
)

type AuditHandler struct {
	audit ports.AuditService
}

func NewAuditHandler(audit ports.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

type auditLogResponse struct {
	ID        uint           `json:"id"`
	UserID    *uint          `json:"userId"`
	Username  string         `json:"username"`
	Action    string         `json:"action"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
}

type auditPagination struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

type listAuditResponse struct {
	Logs       []auditLogResponse `json:"logs"`
	Pagination auditPagination    `json:"pagination"`
}

// List pages through the audit trail, newest first.
//
// @Summary      List audit logs
// @Tags         admin
// @Produce      json
// @Param        limit   query     int  false  "Page size (max 500)"
// @Param        offset  query     int  false  "Rows to skip"
// @Success      200     {object}  listAuditResponse
// @Failure      401     {object}  map[string]any
// @Failure      403     {object}  map[string]any
// @Router       /api/admin/audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	limit := queryInt(c, "limit", 100)
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	entries, total, err := h.audit.List(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}

	resp := listAuditResponse{
		Logs: make([]auditLogResponse, 0, len(entries)),
		Pagination: auditPagination{
			Limit:  limit,
			Offset: offset,
			Total:  total,
		},
	}
	for _, e := range entries {
		resp.Logs = append(resp.Logs, auditLogResponse{
			ID:        e.ID,
			UserID:    e.UserID,
			Username:  e.Username,
			Action:    e.Action,
			Metadata:  e.Metadata,
			CreatedAt: e.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// queryInt parses an integer query parameter, falling back on garbage.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
