package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizaimai/rental-manager/internal/config"
	"github.com/zizaimai/rental-manager/internal/handler"
	"github.com/zizaimai/rental-manager/internal/route"
	"github.com/zizaimai/rental-manager/internal/viewport"
)

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := config.Config{BasePath: "/demo/dvdrental", SiteOwner: "zizaimai"}
	store := viewport.New(1024)
	r, err := handler.NewRenderer(cfg.BasePath)
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = r
	d := Deps{
		Config:   cfg,
		Table:    route.Default(),
		Pages:    handler.NewPageHandler(nil, route.Default(), store, cfg.BasePath, cfg.SiteOwner, nil, nil),
		Viewport: &handler.ViewportHandler{Store: store},
	}
	RegisterRoutes(e, d)
	RegisterPages(e, d)
	return e
}

func TestRoutes(t *testing.T) {
	e := newEcho(t)
	cases := []struct {
		path   string
		status int
		title  string
	}{
		{"/healthz", http.StatusOK, ""},
		{"/demo/dvdrental", http.StatusOK, "<title>Rental Manager - zizaimai</title>"},
		{"/demo/dvdrental/", http.StatusOK, "<title>Rental Manager - zizaimai</title>"},
		{"/demo/dvdrental/unknown", http.StatusNotFound, "<title>Rental Manager - zizaimai</title>"},
		{"/demo/dvdrental/viewport", http.StatusOK, ""},
		{"/elsewhere", http.StatusNotFound, "<title>Rental Manager - zizaimai</title>"},
		{"/Demo/dvdrental/film/abc", http.StatusNotFound, "<title>Rental Manager - zizaimai</title>"},
		{"/DEMO/DVDRENTAL", http.StatusOK, "<title>Rental Manager - zizaimai</title>"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.status, rec.Code, tc.path)
		if tc.title != "" {
			assert.Contains(t, rec.Body.String(), tc.title, tc.path)
		}
	}
}
