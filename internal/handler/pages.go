package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zizaimai/rental-manager/internal/middleware"
	"github.com/zizaimai/rental-manager/internal/queue"
	"github.com/zizaimai/rental-manager/internal/route"
	"github.com/zizaimai/rental-manager/internal/viewport"
)

// Template names besides the route views.
const (
	viewNotFound = "notFound"
	viewError    = "error"
)

const publishTimeout = 5 * time.Second

// EventPublisher receives a navigation event after each page render.
type EventPublisher interface {
	PublishNavigation(ctx context.Context, ev queue.NavigationEvent) error
}

// PageHandler renders every page of the console.  The navigation middleware
// must run first; Dispatch reads the route match and title it stores.
type PageHandler struct {
	Catalog   Catalog
	Table     *route.Table
	Viewport  *viewport.Store
	BasePath  string
	Owner     string
	Publisher EventPublisher // optional
	Logger    *slog.Logger

	views map[route.View]viewFunc
}

// viewFunc loads the data for one view.  A not-found error from the catalog
// turns into the not-found page; any other error into the error page.
type viewFunc func(c echo.Context, m route.Match) (any, error)

// NewPageHandler wires the view table.
func NewPageHandler(cat Catalog, table *route.Table, vp *viewport.Store, basePath, owner string, pub EventPublisher, log *slog.Logger) *PageHandler {
	if log == nil {
		log = slog.Default()
	}
	h := &PageHandler{
		Catalog:   cat,
		Table:     table,
		Viewport:  vp,
		BasePath:  basePath,
		Owner:     owner,
		Publisher: pub,
		Logger:    log,
	}
	h.views = map[route.View]viewFunc{
		route.ViewHome:           h.home,
		route.ViewFilmList:       h.filmList,
		route.ViewFilmDetail:     h.filmDetail,
		route.ViewActorList:      h.actorList,
		route.ViewActorDetail:    h.actorDetail,
		route.ViewRentalList:     h.rentalList,
		route.ViewRentalDetail:   h.rentalDetail,
		route.ViewCustomerDetail: h.customerDetail,
	}
	return h
}

// pageData is what every template receives.
type pageData struct {
	Title   string
	Base    string
	Layout  viewport.Snapshot
	Route   string
	Status  int
	Message string
	Content any
}

// Dispatch renders the view of the matched route.  Unmatched paths render
// the not-found page with the base title.
func (h *PageHandler) Dispatch(c echo.Context) error {
	m, ok := middleware.MatchFrom(c)
	if !ok {
		return h.render(c, http.StatusNotFound, viewNotFound, "", nil, "page not found")
	}
	view, ok := h.views[m.Route.View]
	if !ok {
		h.Logger.Error("page: no view for route", "route", m.Route.Name, "view", string(m.Route.View))
		return h.render(c, http.StatusNotFound, viewNotFound, m.Route.Name, nil, "page not found")
	}

	content, err := view(c, m)
	switch {
	case err == nil:
		return h.render(c, http.StatusOK, string(m.Route.View), m.Route.Name, content, "")
	case isNotFound(err):
		return h.render(c, http.StatusNotFound, viewNotFound, m.Route.Name, nil, m.Route.Title+" not found")
	default:
		h.Logger.Error("page: catalog request failed", "route", m.Route.Name, "path", c.Request().URL.Path, "err", err)
		return h.render(c, http.StatusBadGateway, viewError, m.Route.Name, nil, "the catalog is unavailable, try again later")
	}
}

func (h *PageHandler) render(c echo.Context, status int, tmpl, routeName string, content any, msg string) error {
	title := middleware.TitleFrom(c)
	if title == "" {
		title = route.BaseTitle(h.Owner)
	}
	data := pageData{
		Title:   title,
		Base:    h.BasePath,
		Route:   routeName,
		Status:  status,
		Message: msg,
		Content: content,
	}
	if h.Viewport != nil {
		data.Layout = h.Viewport.Snapshot()
	}
	err := c.Render(status, tmpl, data)
	sent := c.Response().Status
	if err != nil {
		// Nothing was written; the HTTP error handler answers instead.
		sent = http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			sent = he.Code
		}
	}
	h.publish(c, routeName, title, sent)
	return err
}

func (h *PageHandler) publish(c echo.Context, routeName, title string, status int) {
	if h.Publisher == nil {
		return
	}
	ev := queue.NavigationEvent{
		Path:      c.Request().URL.Path,
		Route:     routeName,
		Title:     title,
		Status:    status,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		ViewedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := h.Publisher.PublishNavigation(ctx, ev); err != nil {
			h.Logger.Warn("page: publish navigation failed", "path", ev.Path, "err", err)
		}
	}()
}
