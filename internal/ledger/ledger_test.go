package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbaylabs/dbay-backend/internal/model"
)

const (
	alice = "0xa11ce"
	bob   = "0xb0b"
	carol = "0xca401"
)

func register(t *testing.T, lg *Ledger, identity, username, addr string) {
	t.Helper()
	require.NoError(t, lg.CreateProfile(context.Background(), identity, username, addr, Unmetered()))
}

func TestGetAccountDefault(t *testing.T) {
	lg := New()

	acc, err := lg.GetAccount(context.Background(), alice, Unmetered())
	require.NoError(t, err)
	assert.Equal(t, "", acc.Username)
	assert.Equal(t, "", acc.ShippingAddr)
	assert.Equal(t, int64(0), acc.Wallet)
}

func TestCreateProfile(t *testing.T) {
	lg := New()
	register(t, lg, alice, "alice", "addr1")

	acc, err := lg.GetAccount(context.Background(), alice, Unmetered())
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)
	assert.Equal(t, "addr1", acc.ShippingAddr)
}

func TestCreateProfileTwice(t *testing.T) {
	lg := New()
	register(t, lg, alice, "alice", "addr1")

	err := lg.CreateProfile(context.Background(), alice, "other", "other addr", Unmetered())
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	// original profile unchanged
	acc, err := lg.GetAccount(context.Background(), alice, Unmetered())
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)
	assert.Equal(t, "addr1", acc.ShippingAddr)
}

func TestListItemAsGuest(t *testing.T) {
	lg := New()

	_, err := lg.ListItem(context.Background(), carol, 10, "widget", 1, Unmetered())
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, 0, lg.Size(context.Background()))
}

func TestListItem(t *testing.T) {
	lg := New()
	register(t, lg, alice, "alice", "addr1")

	item, err := lg.ListItem(context.Background(), alice, 10, "widget", 1, Unmetered())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), item.ID)
	assert.Equal(t, int64(10), item.Price)
	assert.Equal(t, "widget", item.Name)
	assert.Equal(t, uint(1), item.Quantity)
	assert.Equal(t, alice, item.Owner)
	assert.Equal(t, model.ItemStateListed, item.State)
}

func TestListItemValidation(t *testing.T) {
	lg := New()
	register(t, lg, alice, "alice", "addr1")
	ctx := context.Background()

	tests := []struct {
		name     string
		price    int64
		itemName string
		quantity uint
	}{
		{"negative price", -1, "widget", 1},
		{"zero quantity", 10, "widget", 0},
		{"empty name", 10, "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lg.ListItem(ctx, alice, tt.price, tt.itemName, tt.quantity, Unmetered())
			assert.Error(t, err)
		})
	}
	assert.Equal(t, 0, lg.Size(ctx))
}

func TestItemIDsAreLedgerWide(t *testing.T) {
	lg := New()
	register(t, lg, alice, "alice", "addr1")
	register(t, lg, bob, "bob", "addr2")
	ctx := context.Background()

	first, err := lg.ListItem(ctx, alice, 10, "a0", 1, Unmetered())
	require.NoError(t, err)
	second, err := lg.ListItem(ctx, bob, 20, "b0", 1, Unmetered())
	require.NoError(t, err)
	third, err := lg.ListItem(ctx, alice, 30, "a1", 1, Unmetered())
	require.NoError(t, err)

	assert.Equal(t, uint64(0), first.ID)
	assert.Equal(t, uint64(1), second.ID)
	assert.Equal(t, uint64(2), third.ID)
}

func TestGetOwnItemsScoped(t *testing.T) {
	lg := New()
	register(t, lg, alice, "alice", "addr1")
	register(t, lg, bob, "bob", "addr2")
	ctx := context.Background()

	_, err := lg.ListItem(ctx, alice, 10, "widget", 1, Unmetered())
	require.NoError(t, err)
	_, err = lg.ListItem(ctx, bob, 10, "gadget", 1, Unmetered())
	require.NoError(t, err)

	own, err := lg.GetOwnItems(ctx, alice, Unmetered())
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, alice, own[0].Owner)
	assert.Equal(t, "widget", own[0].Name)

	// unregistered identities simply own nothing
	own, err = lg.GetOwnItems(ctx, carol, Unmetered())
	require.NoError(t, err)
	assert.Empty(t, own)
}

func TestGetListedItemsTracksState(t *testing.T) {
	lg := New()
	register(t, lg, alice, "alice", "addr1")
	register(t, lg, bob, "bob", "addr2")
	ctx := context.Background()

	item, err := lg.ListItem(ctx, alice, 10, "widget", 1, Unmetered())
	require.NoError(t, err)

	listed, err := lg.GetListedItems(ctx, Unmetered())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, item.ID, listed[0].ID)

	_, err = lg.BuyItem(ctx, bob, item.ID, 20, Unmetered())
	require.NoError(t, err)

	listed, err = lg.GetListedItems(ctx, Unmetered())
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestBuyItem(t *testing.T) {
	lg := New()
	register(t, lg, alice, "seller", "seller addr")
	register(t, lg, bob, "buyer", "buyer addr")
	ctx := context.Background()

	item, err := lg.ListItem(ctx, alice, 10, "widget", 1, Unmetered())
	require.NoError(t, err)

	sold, err := lg.BuyItem(ctx, bob, item.ID, 20, Unmetered())
	require.NoError(t, err)
	assert.Equal(t, model.ItemStateSold, sold.State)
	assert.Equal(t, alice, sold.Owner, "owner stays the original lister")

	n, err := lg.SoldLength(ctx, alice, Unmetered())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = lg.PurchasesLength(ctx, bob, Unmetered())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := lg.FindGoodByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ItemStateSold, got.State)
}

func TestBuyItemSettlesDeposit(t *testing.T) {
	lg := New()
	register(t, lg, alice, "seller", "seller addr")
	register(t, lg, bob, "buyer", "buyer addr")
	ctx := context.Background()

	item, err := lg.ListItem(ctx, alice, 10, "widget", 1, Unmetered())
	require.NoError(t, err)
	_, err = lg.BuyItem(ctx, bob, item.ID, 20, Unmetered())
	require.NoError(t, err)

	seller, err := lg.GetAccount(ctx, alice, Unmetered())
	require.NoError(t, err)
	buyer, err := lg.GetAccount(ctx, bob, Unmetered())
	require.NoError(t, err)
	assert.Equal(t, int64(10), seller.Wallet)
	assert.Equal(t, int64(10), buyer.Wallet)
}

func TestBuyItemInvalidPayment(t *testing.T) {
	lg := New()
	register(t, lg, alice, "seller", "seller addr")
	register(t, lg, bob, "buyer", "buyer addr")
	ctx := context.Background()

	item, err := lg.ListItem(ctx, alice, 10, "widget", 1, Unmetered())
	require.NoError(t, err)

	for _, payment := range []int64{0, 10, 19, 21, 30} {
		_, err = lg.BuyItem(ctx, bob, item.ID, payment, Unmetered())
		assert.ErrorIs(t, err, ErrInvalidPayment)
	}

	// nothing committed
	got, err := lg.FindGoodByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ItemStateListed, got.State)
	n, err := lg.SoldLength(ctx, alice, Unmetered())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	buyer, err := lg.GetAccount(ctx, bob, Unmetered())
	require.NoError(t, err)
	assert.Equal(t, int64(0), buyer.Wallet)
}

func TestBuyItemTwice(t *testing.T) {
	lg := New()
	register(t, lg, alice, "seller", "seller addr")
	register(t, lg, bob, "buyer", "buyer addr")
	register(t, lg, carol, "carol", "carol addr")
	ctx := context.Background()

	item, err := lg.ListItem(ctx, alice, 10, "widget", 1, Unmetered())
	require.NoError(t, err)
	_, err = lg.BuyItem(ctx, bob, item.ID, 20, Unmetered())
	require.NoError(t, err)

	_, err = lg.BuyItem(ctx, carol, item.ID, 20, Unmetered())
	assert.ErrorIs(t, err, ErrItemUnavailable)

	n, err := lg.SoldLength(ctx, alice, Unmetered())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBuyItemNotFound(t *testing.T) {
	lg := New()
	register(t, lg, bob, "buyer", "buyer addr")

	_, err := lg.BuyItem(context.Background(), bob, 0, 20, Unmetered())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindGoodByIDNotFound(t *testing.T) {
	lg := New()

	_, err := lg.FindGoodByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotFound)
}
