// Package router registers the HTTP routes of the rental manager.
package router

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/zizaimai/rental-manager/internal/config"
	"github.com/zizaimai/rental-manager/internal/handler"
	"github.com/zizaimai/rental-manager/internal/middleware"
	"github.com/zizaimai/rental-manager/internal/route"
)

// Deps are the collaborators the routes need.
type Deps struct {
	Config    config.Config
	RateLimit config.RateLimitConfig
	Redis     *redis.Client // optional
	Table     *route.Table
	Pages     *handler.PageHandler
	Viewport  *handler.ViewportHandler
	Ready     handler.Pinger // optional
	Logger    *slog.Logger
}

// RegisterRoutes registers the health probes outside the base path.
func RegisterRoutes(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)
	if d.Ready != nil {
		e.GET("/readyz", handler.Ready(d.Ready))
	}
}

// RegisterPages mounts the console under the configured base path.  Every
// request there is rate limited and passes the navigation hook before the
// page dispatcher renders it.  Paths the echo router cannot place, such as a
// base path spelled in another case, take the same chain so they still get a
// page and a title.
func RegisterPages(e *echo.Echo, d Deps) {
	chain := []echo.MiddlewareFunc{
		middleware.Navigation(middleware.NavigationConfig{
			Table:    d.Table,
			BasePath: d.Config.BasePath,
			Owner:    d.Config.SiteOwner,
			Logger:   d.Logger,
		}),
		middleware.RateLimit(d.RateLimit, d.Redis, d.Logger),
	}

	g := e.Group(d.Config.BasePath, chain...)
	g.GET("/viewport", d.Viewport.Get)
	g.POST("/viewport", d.Viewport.Update)
	g.GET("", d.Pages.Dispatch)
	g.GET("/*", d.Pages.Dispatch)

	e.RouteNotFound("/*", d.Pages.Dispatch, chain...)
}
