package ledger

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dbaylabs/dbay-backend/internal/model"
)

// Recorder receives every committed transition, in commit order. The append
// happens before the in-memory mutation, so a Recorder failure aborts the
// call with no observable change.
type Recorder interface {
	ProfileCreated(ctx context.Context, caller, username, shippingAddr string) error
	ItemListed(ctx context.Context, caller string, price int64, name string, quantity uint) error
	ItemPurchased(ctx context.Context, caller string, itemID uint64, payment int64) error
}

// Ledger is the marketplace state machine. All mutable state lives behind a
// single mutex: every call is one serialized transaction that either commits
// across the item log, the account registry and the indices, or aborts with
// nothing changed.
type Ledger struct {
	mu       sync.Mutex
	registry *accountRegistry
	items    *itemLedger
	index    *indexMaintainer
	journal  Recorder
}

func New() *Ledger {
	return &Ledger{
		registry: newAccountRegistry(),
		items:    newItemLedger(),
		index:    newIndexMaintainer(),
	}
}

// AttachJournal starts recording committed transitions. Attach after replay
// so restored transitions are not written back.
func (l *Ledger) AttachJournal(j Recorder) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.journal = j
}

// CreateProfile registers the caller's profile. An identity registers at
// most once; the stored profile is immutable afterwards.
func (l *Ledger) CreateProfile(ctx context.Context, caller, username, shippingAddr string, budget *Budget) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := budget.charge(costRegister); err != nil {
		return err
	}
	if strings.TrimSpace(username) == "" {
		return errors.New("username is required")
	}
	if l.registry.lookup(caller).Registered() {
		return ErrAlreadyRegistered
	}
	if l.journal != nil {
		if err := l.journal.ProfileCreated(ctx, caller, username, shippingAddr); err != nil {
			return err
		}
	}
	return l.registry.register(caller, username, shippingAddr)
}

// GetAccount never fails (beyond budget): unregistered identities get the
// default record with empty strings and a zero wallet.
func (l *Ledger) GetAccount(ctx context.Context, caller string, budget *Budget) (model.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := budget.charge(costLookup); err != nil {
		return model.Account{}, err
	}
	return l.registry.lookup(caller), nil
}

// ListItem appends a new item in state Listed and updates the indices as one
// unit. Unregistered callers are refused.
func (l *Ledger) ListItem(ctx context.Context, caller string, price int64, name string, quantity uint, budget *Budget) (model.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := budget.charge(costList); err != nil {
		return model.Item{}, err
	}
	if !l.registry.lookup(caller).Registered() {
		return model.Item{}, ErrPermissionDenied
	}
	if price < 0 {
		return model.Item{}, errors.New("price must not be negative")
	}
	if quantity == 0 {
		return model.Item{}, errors.New("quantity must be positive")
	}
	if strings.TrimSpace(name) == "" {
		return model.Item{}, errors.New("name is required")
	}
	if l.journal != nil {
		if err := l.journal.ItemListed(ctx, caller, price, name, quantity); err != nil {
			return model.Item{}, err
		}
	}
	id := l.items.create(caller, price, name, quantity)
	l.index.recordListing(id, caller)
	return l.items.items[id], nil
}

// BuyItem settles a purchase: the item flips Listed to Sold, the listing
// index drops the id, and the seller/buyer views record the sale. Payment
// must equal exactly twice the listed price; the deposit settles
// immediately, crediting price to the seller's wallet and the other half
// back to the buyer's.
func (l *Ledger) BuyItem(ctx context.Context, caller string, id uint64, payment int64, budget *Budget) (model.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := budget.charge(costBuy); err != nil {
		return model.Item{}, err
	}
	item, err := l.items.get(id)
	if err != nil {
		return model.Item{}, err
	}
	if item.State != model.ItemStateListed {
		return model.Item{}, ErrItemUnavailable
	}
	if payment != 2*item.Price {
		return model.Item{}, ErrInvalidPayment
	}
	if l.journal != nil {
		if err := l.journal.ItemPurchased(ctx, caller, id, payment); err != nil {
			return model.Item{}, err
		}
	}
	if err := l.items.markSold(id); err != nil {
		return model.Item{}, err
	}
	l.index.recordPurchase(id, item.Owner, caller)
	l.registry.credit(item.Owner, item.Price)
	l.registry.credit(caller, payment-item.Price)
	return l.items.items[id], nil
}

// GetOwnItems returns the items the caller listed, in listing order,
// regardless of their current state.
func (l *Ledger) GetOwnItems(ctx context.Context, caller string, budget *Budget) ([]model.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := l.index.ownedBy(caller)
	if err := budget.charge(costLookup + costPerItem*int64(len(ids))); err != nil {
		return nil, err
	}
	return l.resolve(ids), nil
}

// GetListedItems returns every item currently in state Listed, ledger-wide,
// in listing order.
func (l *Ledger) GetListedItems(ctx context.Context, budget *Budget) ([]model.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := l.index.listedItems()
	if err := budget.charge(costLookup + costPerItem*int64(len(ids))); err != nil {
		return nil, err
	}
	return l.resolve(ids), nil
}

func (l *Ledger) SoldLength(ctx context.Context, caller string, budget *Budget) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := budget.charge(costLookup); err != nil {
		return 0, err
	}
	return l.index.soldCount(caller), nil
}

func (l *Ledger) PurchasesLength(ctx context.Context, caller string, budget *Budget) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := budget.charge(costLookup); err != nil {
		return 0, err
	}
	return l.index.purchasedCount(caller), nil
}

// FindGoodByID is the read-only diagnostic lookup. It is surfaced through a
// capability-gated endpoint, never through production flows.
func (l *Ledger) FindGoodByID(ctx context.Context, id uint64) (model.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items.get(id)
}

// Size reports how many items have ever been listed.
func (l *Ledger) Size(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items.size()
}

func (l *Ledger) resolve(ids []uint64) []model.Item {
	out := make([]model.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, l.items.items[id])
	}
	return out
}
