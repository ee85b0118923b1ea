package handler

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dbaylabs/dbay-backend/internal/ledger"
)

// DebugTokenHeader carries the capability token for the diagnostic surface.
const DebugTokenHeader = "X-Dbay-Debug-Token"

// DebugHandler exposes the read-only item lookup for white-box inspection.
// It is gated by a configured token and never mutates state; production
// flows do not go through it.
type DebugHandler struct {
	ledger *ledger.Ledger
	token  string
}

func NewDebugHandler(lg *ledger.Ledger, token string) *DebugHandler {
	return &DebugHandler{ledger: lg, token: token}
}

func (h *DebugHandler) FindGoodByID(c echo.Context) error {
	if h.token == "" {
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "not found"))
	}
	supplied := c.Request().Header.Get(DebugTokenHeader)
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(h.token)) != 1 {
		return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "not allowed"))
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid item id"))
	}
	item, err := h.ledger.FindGoodByID(c.Request().Context(), itemID)
	if err != nil {
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
	}
	return c.JSON(http.StatusOK, item)
}
