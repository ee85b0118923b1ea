package ledger

import "github.com/dbaylabs/dbay-backend/internal/model"

// itemLedger is the append-only item log. Slice position doubles as the
// item id, so ids are strictly increasing from 0 across all sellers.
type itemLedger struct {
	items []model.Item
}

func newItemLedger() *itemLedger {
	return &itemLedger{}
}

func (l *itemLedger) create(owner string, price int64, name string, quantity uint) uint64 {
	id := uint64(len(l.items))
	l.items = append(l.items, model.Item{
		ID:       id,
		Price:    price,
		Name:     name,
		Quantity: quantity,
		Owner:    owner,
		State:    model.ItemStateListed,
	})
	return id
}

func (l *itemLedger) get(id uint64) (model.Item, error) {
	if id >= uint64(len(l.items)) {
		return model.Item{}, ErrNotFound
	}
	return l.items[id], nil
}

// markSold flips Listed to Sold. The transition happens exactly once; a
// second call against the same id always fails.
func (l *itemLedger) markSold(id uint64) error {
	if id >= uint64(len(l.items)) {
		return ErrNotFound
	}
	if l.items[id].State != model.ItemStateListed {
		return ErrItemUnavailable
	}
	l.items[id].State = model.ItemStateSold
	return nil
}

func (l *itemLedger) size() int {
	return len(l.items)
}
