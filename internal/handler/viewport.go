package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zizaimai/rental-manager/internal/viewport"
)

// ViewportHandler is the media-query listener of the responsive flag store.
type ViewportHandler struct {
	Store *viewport.Store
}

// viewportReq carries the media queries whose state changed.  A missing key
// leaves that flag untouched.
type viewportReq struct {
	MinWidth768 *bool `json:"min_width_768"`
	MinWidth425 *bool `json:"min_width_425"`
}

// Update applies the reported breakpoint states and returns the resulting
// flags.
func (h *ViewportHandler) Update(c echo.Context) error {
	var req viewportReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.MinWidth768 != nil {
		h.Store.SetIsMinWidth768Px(*req.MinWidth768)
	}
	if req.MinWidth425 != nil {
		h.Store.SetIsMinWidth425Px(*req.MinWidth425)
	}
	return c.JSON(http.StatusOK, h.Store.Snapshot())
}

// Get returns the current flags.
func (h *ViewportHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Snapshot())
}
