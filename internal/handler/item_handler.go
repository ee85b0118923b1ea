package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dbaylabs/dbay-backend/internal/ledger"
)

type ItemHandler struct {
	ledger *ledger.Ledger
	budget int64
}

func NewItemHandler(lg *ledger.Ledger, defaultBudget int64) *ItemHandler {
	return &ItemHandler{ledger: lg, budget: defaultBudget}
}

type ListItemRequest struct {
	Price    int64  `json:"price"`
	Name     string `json:"name"`
	Quantity uint   `json:"quantity"`
}

func (h *ItemHandler) Create(c echo.Context) error {
	caller, _ := c.Get("caller").(string)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing caller"))
	}
	var body ListItemRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid body"))
	}
	item, err := h.ledger.ListItem(c.Request().Context(), caller, body.Price, body.Name, body.Quantity, callBudget(c, h.budget))
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrPermissionDenied):
			return c.JSON(http.StatusForbidden, NewErrorResponse("permission_denied", "caller is not registered"))
		case errors.Is(err, ledger.ErrBudgetExceeded):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("budget_exceeded", "call budget exhausted"))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) ListMine(c echo.Context) error {
	caller, _ := c.Get("caller").(string)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing caller"))
	}
	items, err := h.ledger.GetOwnItems(c.Request().Context(), caller, callBudget(c, h.budget))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("budget_exceeded", "call budget exhausted"))
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) ListListed(c echo.Context) error {
	items, err := h.ledger.GetListedItems(c.Request().Context(), callBudget(c, h.budget))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("budget_exceeded", "call budget exhausted"))
	}
	return c.JSON(http.StatusOK, items)
}
