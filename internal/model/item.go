package model

type ItemState string

const (
	ItemStateListed ItemState = "listed"
	ItemStateSold   ItemState = "sold"
)

// Item is one ledger entry. IDs are assigned sequentially across the whole
// ledger, starting at 0, and are never reused. Owner stays the original
// lister even after a sale; buyers are tracked through the purchase index.
type Item struct {
	ID       uint64    `json:"id"`
	Price    int64     `json:"price"`
	Name     string    `json:"name"`
	Quantity uint      `json:"quantity"`
	Owner    string    `json:"owner"`
	State    ItemState `json:"state"`
}
