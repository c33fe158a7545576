// SPDX-License-Identifier: MIT

package web

import (
	"embed"
	"html/template"
	"log/slog"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Routes served by NewRouter.
const (
	RouteHome     = "/"
	RouteMultiply = "/multiply"
	RouteHealthz  = "/healthz"
)

// ParseTemplates parses the embedded page templates.
func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

// Register mounts the handler's routes on r.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET(RouteHome, h.Home)
	r.POST(RouteMultiply, h.Multiply)
	r.GET(RouteHealthz, h.Healthz)
}

// NewRouter returns a gin engine with recovery, request logging, the page
// template and the handler's routes. The caller picks the gin mode.
func NewRouter(h *Handler, logger *slog.Logger) (*gin.Engine, error) {
	tmpl, err := ParseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))
	r.SetHTMLTemplate(tmpl)
	h.Register(r)

	return r, nil
}
