package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MetaHandler serves build metadata. Responses are cacheable: the values
// only change on redeploy.
type MetaHandler struct {
	version string
	build   string
	commit  string
}

func NewMetaHandler(version, build, commit string) *MetaHandler {
	return &MetaHandler{version: version, build: build, commit: commit}
}

type metaResponse struct {
	Version string `json:"version"`
	Build   string `json:"build,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

// Version returns the deployed version and, when configured, the build
// identifier and commit hash.
//
// @Summary      Build metadata
// @Tags         system
// @Produce      json
// @Success      200  {object}  metaResponse
// @Router       /api/meta/version [get]
func (h *MetaHandler) Version(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "public, max-age=300, stale-while-revalidate=300")
	return c.JSON(http.StatusOK, metaResponse{
		Version: h.version,
		Build:   h.build,
		Commit:  h.commit,
	})
}
