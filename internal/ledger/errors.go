package ledger

import "errors"

var (
	ErrAlreadyRegistered = errors.New("already_registered")
	ErrPermissionDenied  = errors.New("permission_denied")
	ErrNotFound          = errors.New("not_found")
	ErrItemUnavailable   = errors.New("item_unavailable")
	ErrInvalidPayment    = errors.New("invalid_payment")
	ErrBudgetExceeded    = errors.New("budget_exceeded")
)
