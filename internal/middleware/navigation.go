// Package middleware holds the echo middleware of the rental manager.
package middleware

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/zizaimai/rental-manager/internal/route"
)

// Context keys set by Navigation.
const (
	keyMatch = "navigation.match"
	keyTitle = "navigation.title"
)

// NavigationConfig configures the navigation hook.
type NavigationConfig struct {
	Table    *route.Table
	BasePath string
	Owner    string
	// Title overrides the title formula; nil uses route.TitleFor(Owner).
	Title  route.TitleFunc
	Logger *slog.Logger
}

// Navigation resolves the request path against the route table and derives
// the document title before the view runs.  It never blocks or rejects a
// request: an unmatched path continues with no match stored, and a failing
// title computation falls back to the base title.
func Navigation(cfg NavigationConfig) echo.MiddlewareFunc {
	if cfg.Title == nil {
		cfg.Title = route.TitleFor(cfg.Owner)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var matched *route.Match
			if rel, ok := route.StripBase(cfg.BasePath, c.Request().URL.Path); ok {
				if m, ok := cfg.Table.Resolve(rel); ok {
					matched = &m
				}
			}
			if matched != nil {
				c.Set(keyMatch, *matched)
			}
			c.Set(keyTitle, documentTitle(cfg, matched))
			return next(c)
		}
	}
}

func documentTitle(cfg NavigationConfig, m *route.Match) (title string) {
	defer func() {
		if r := recover(); r != nil {
			cfg.Logger.Warn("navigation: title computation failed", "panic", fmt.Sprint(r))
			title = route.BaseTitle(cfg.Owner)
		}
	}()
	if m == nil {
		return cfg.Title(nil)
	}
	r := m.Route
	return cfg.Title(&r)
}

// MatchFrom returns the route matched by Navigation for this request.
func MatchFrom(c echo.Context) (route.Match, bool) {
	m, ok := c.Get(keyMatch).(route.Match)
	return m, ok
}

// TitleFrom returns the document title computed by Navigation, or "" when
// the middleware did not run.
func TitleFrom(c echo.Context) string {
	t, _ := c.Get(keyTitle).(string)
	return t
}
