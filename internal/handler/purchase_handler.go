package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dbaylabs/dbay-backend/internal/ledger"
)

type PurchaseHandler struct {
	ledger *ledger.Ledger
	budget int64
}

func NewPurchaseHandler(lg *ledger.Ledger, defaultBudget int64) *PurchaseHandler {
	return &PurchaseHandler{ledger: lg, budget: defaultBudget}
}

type BuyItemRequest struct {
	Payment int64 `json:"payment"`
}

type CountResponse struct {
	Count int `json:"count"`
}

func (h *PurchaseHandler) Buy(c echo.Context) error {
	caller, _ := c.Get("caller").(string)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing caller"))
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid item id"))
	}
	var body BuyItemRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid body"))
	}
	item, err := h.ledger.BuyItem(c.Request().Context(), caller, itemID, body.Payment, callBudget(c, h.budget))
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
		case errors.Is(err, ledger.ErrItemUnavailable):
			return c.JSON(http.StatusConflict, NewErrorResponse("item_unavailable", "item is not listed"))
		case errors.Is(err, ledger.ErrInvalidPayment):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid_payment", "payment must equal twice the price"))
		case errors.Is(err, ledger.ErrBudgetExceeded):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("budget_exceeded", "call budget exhausted"))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusOK, item)
}

func (h *PurchaseHandler) SoldCount(c echo.Context) error {
	caller, _ := c.Get("caller").(string)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing caller"))
	}
	n, err := h.ledger.SoldLength(c.Request().Context(), caller, callBudget(c, h.budget))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("budget_exceeded", "call budget exhausted"))
	}
	return c.JSON(http.StatusOK, CountResponse{Count: n})
}

func (h *PurchaseHandler) PurchasesCount(c echo.Context) error {
	caller, _ := c.Get("caller").(string)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing caller"))
	}
	n, err := h.ledger.PurchasesLength(c.Request().Context(), caller, callBudget(c, h.budget))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("budget_exceeded", "call budget exhausted"))
	}
	return c.JSON(http.StatusOK, CountResponse{Count: n})
}
