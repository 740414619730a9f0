package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AppHandler serves the single page front end.
type AppHandler struct {
	indexFile string
}

// NewAppHandler creates a handler serving indexFile at "/".
func NewAppHandler(indexFile string) *AppHandler {
	return &AppHandler{indexFile: indexFile}
}

// ServeIndex godoc
// @Summary Serve the HTML app
// @Tags app
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func (h *AppHandler) ServeIndex(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return c.File(h.indexFile)
}

// Health godoc
// @Summary Liveness probe
// @Tags app
// @Produce plain
// @Success 200 {string} string
// @Router /healthz [get]
func (h *AppHandler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
