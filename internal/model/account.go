package model

// Account is the profile stored for a registered identity. Unregistered
// identities resolve to the zero value, which is a valid default record.
type Account struct {
	Identity     string `json:"identity"`
	Username     string `json:"username"`
	ShippingAddr string `json:"shippingAddr"`
	Wallet       int64  `json:"wallet"`
}

func (a Account) Registered() bool {
	return a.Username != ""
}
