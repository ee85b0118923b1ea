package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dbaylabs/dbay-backend/internal/ledger"
)

// BudgetHeader carries the caller's resource budget for the call. Absent or
// malformed values fall back to the configured default.
const BudgetHeader = "X-Dbay-Budget"

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope every handler returns. The host
// environment may drop the reason before it reaches the caller, so clients
// must not depend on Code beyond best effort.
type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

func callBudget(c echo.Context, fallback int64) *ledger.Budget {
	if raw := c.Request().Header.Get(BudgetHeader); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			return ledger.NewBudget(n)
		}
	}
	return ledger.NewBudget(fallback)
}
