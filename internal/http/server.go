// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcraft/internal/http/handlers"
	"tripcraft/internal/http/middleware"
	"tripcraft/internal/modules/planner"
	"tripcraft/internal/modules/quota"
)

type ServerDeps struct {
	Planner *planner.Service
	Quota   *quota.Service
	Logger  *slog.Logger
}

// NewRouter wires the gin engine with middleware and all routes.
func NewRouter(deps ServerDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(deps.Logger), middleware.Recovery(deps.Logger))

	planHandler := handlers.NewPlanHandler(deps.Planner, deps.Quota)
	api := r.Group("/api")
	api.POST("/plans", planHandler.Create)
	api.GET("/plans/:id", planHandler.Get)
	api.GET("/users/:uid/plans", planHandler.ListRecent)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
