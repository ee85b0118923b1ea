package ledger

// Budget is the caller-supplied computation allowance for one call. Charges
// happen during validation, before any mutation, so running out of budget
// aborts the call with nothing committed.
type Budget struct {
	remaining int64
	unmetered bool
}

// Coarse per-operation costs. Reads over collections additionally pay
// costPerItem for each element touched.
const (
	costRegister = 5000
	costLookup   = 1000
	costList     = 10000
	costBuy      = 15000
	costPerItem  = 500
)

func NewBudget(n int64) *Budget {
	return &Budget{remaining: n}
}

// Unmetered returns a budget that never runs out. Used for journal replay
// and internal reads.
func Unmetered() *Budget {
	return &Budget{unmetered: true}
}

func (b *Budget) charge(cost int64) error {
	if b == nil || b.unmetered {
		return nil
	}
	if b.remaining < cost {
		b.remaining = 0
		return ErrBudgetExceeded
	}
	b.remaining -= cost
	return nil
}

func (b *Budget) Remaining() int64 {
	if b == nil || b.unmetered {
		return 0
	}
	return b.remaining
}
