package journal

import "time"

type Kind string

const (
	KindProfileCreated Kind = "profile_created"
	KindItemListed     Kind = "item_listed"
	KindItemPurchased  Kind = "item_purchased"
)

// Record is one committed transition. Seq is the commit order; replaying
// records in Seq order reconstructs the ledger exactly.
type Record struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement"`
	TxID      string    `gorm:"column:tx_id;size:36;uniqueIndex;not null"`
	Kind      Kind      `gorm:"column:kind;size:32;not null"`
	Caller    string    `gorm:"column:caller;size:128;index;not null"`
	Payload   []byte    `gorm:"column:payload;type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Record) TableName() string {
	return "journal_records"
}

type profilePayload struct {
	Username     string `json:"username"`
	ShippingAddr string `json:"shippingAddr"`
}

type listingPayload struct {
	Price    int64  `json:"price"`
	Name     string `json:"name"`
	Quantity uint   `json:"quantity"`
}

type purchasePayload struct {
	ItemID  uint64 `json:"itemId"`
	Payment int64  `json:"payment"`
}
