package ledger

import "github.com/dbaylabs/dbay-backend/internal/model"

// accountRegistry owns the identity to profile mapping. Lookups never fail:
// an unknown identity resolves to the default record.
type accountRegistry struct {
	accounts map[string]model.Account
}

func newAccountRegistry() *accountRegistry {
	return &accountRegistry{accounts: make(map[string]model.Account)}
}

func (r *accountRegistry) register(identity, username, shippingAddr string) error {
	if r.accounts[identity].Registered() {
		return ErrAlreadyRegistered
	}
	acc := r.accounts[identity]
	acc.Identity = identity
	acc.Username = username
	acc.ShippingAddr = shippingAddr
	r.accounts[identity] = acc
	return nil
}

func (r *accountRegistry) lookup(identity string) model.Account {
	acc, ok := r.accounts[identity]
	if !ok {
		return model.Account{Identity: identity}
	}
	return acc
}

// credit adds amount to the identity's wallet, creating the default record
// for identities that never registered.
func (r *accountRegistry) credit(identity string, amount int64) {
	acc := r.accounts[identity]
	acc.Identity = identity
	acc.Wallet += amount
	r.accounts[identity] = acc
}
