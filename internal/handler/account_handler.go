package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dbaylabs/dbay-backend/internal/ledger"
)

type AccountHandler struct {
	ledger *ledger.Ledger
	budget int64
}

func NewAccountHandler(lg *ledger.Ledger, defaultBudget int64) *AccountHandler {
	return &AccountHandler{ledger: lg, budget: defaultBudget}
}

type CreateProfileRequest struct {
	Username     string `json:"username"`
	ShippingAddr string `json:"shippingAddr"`
}

func (h *AccountHandler) CreateProfile(c echo.Context) error {
	caller, _ := c.Get("caller").(string)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing caller"))
	}
	var body CreateProfileRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid body"))
	}
	err := h.ledger.CreateProfile(c.Request().Context(), caller, body.Username, body.ShippingAddr, callBudget(c, h.budget))
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrAlreadyRegistered):
			return c.JSON(http.StatusConflict, NewErrorResponse("already_registered", "profile already exists"))
		case errors.Is(err, ledger.ErrBudgetExceeded):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("budget_exceeded", "call budget exhausted"))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	acc, err := h.ledger.GetAccount(c.Request().Context(), caller, ledger.Unmetered())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to load account"))
	}
	return c.JSON(http.StatusCreated, acc)
}

func (h *AccountHandler) GetAccount(c echo.Context) error {
	caller, _ := c.Get("caller").(string)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing caller"))
	}
	acc, err := h.ledger.GetAccount(c.Request().Context(), caller, callBudget(c, h.budget))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("budget_exceeded", "call budget exhausted"))
	}
	return c.JSON(http.StatusOK, acc)
}
