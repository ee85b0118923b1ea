package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dbaylabs/dbay-backend/internal/ledger"
)

// Journal persists committed ledger transitions to an embedded sqlite
// database. It implements ledger.Recorder.
type Journal struct {
	db *gorm.DB
}

func Open(path string) (*Journal, error) {
	gcfg := &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(sqlite.Open(path), gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// single writer; the ledger serializes calls anyway
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Journal{db: db}, nil
}

func (j *Journal) ProfileCreated(ctx context.Context, caller, username, shippingAddr string) error {
	return j.append(ctx, KindProfileCreated, caller, profilePayload{
		Username:     username,
		ShippingAddr: shippingAddr,
	})
}

func (j *Journal) ItemListed(ctx context.Context, caller string, price int64, name string, quantity uint) error {
	return j.append(ctx, KindItemListed, caller, listingPayload{
		Price:    price,
		Name:     name,
		Quantity: quantity,
	})
}

func (j *Journal) ItemPurchased(ctx context.Context, caller string, itemID uint64, payment int64) error {
	return j.append(ctx, KindItemPurchased, caller, purchasePayload{
		ItemID:  itemID,
		Payment: payment,
	})
}

func (j *Journal) append(ctx context.Context, kind Kind, caller string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	rec := Record{
		TxID:    uuid.NewString(),
		Kind:    kind,
		Caller:  caller,
		Payload: raw,
	}
	return j.db.WithContext(ctx).Create(&rec).Error
}

// Replay feeds every record, in commit order, back through the ledger's
// transitions. Call it on a fresh ledger before AttachJournal, so restored
// transitions are not appended again. Records were validated when first
// committed, so an apply failure means the journal is corrupt.
func (j *Journal) Replay(ctx context.Context, lg *ledger.Ledger) error {
	var records []Record
	if err := j.db.WithContext(ctx).Order("seq asc").Find(&records).Error; err != nil {
		return err
	}
	for _, rec := range records {
		if err := j.apply(ctx, lg, rec); err != nil {
			return fmt.Errorf("journal: replay seq %d (%s): %w", rec.Seq, rec.Kind, err)
		}
	}
	return nil
}

func (j *Journal) apply(ctx context.Context, lg *ledger.Ledger, rec Record) error {
	switch rec.Kind {
	case KindProfileCreated:
		var p profilePayload
		if err := json.Unmarshal(rec.Payload, &p); err != nil {
			return err
		}
		return lg.CreateProfile(ctx, rec.Caller, p.Username, p.ShippingAddr, ledger.Unmetered())
	case KindItemListed:
		var p listingPayload
		if err := json.Unmarshal(rec.Payload, &p); err != nil {
			return err
		}
		_, err := lg.ListItem(ctx, rec.Caller, p.Price, p.Name, p.Quantity, ledger.Unmetered())
		return err
	case KindItemPurchased:
		var p purchasePayload
		if err := json.Unmarshal(rec.Payload, &p); err != nil {
			return err
		}
		_, err := lg.BuyItem(ctx, rec.Caller, p.ItemID, p.Payment, ledger.Unmetered())
		return err
	default:
		return fmt.Errorf("unknown record kind %q", rec.Kind)
	}
}

// Len reports how many transitions have been journaled.
func (j *Journal) Len(ctx context.Context) (int64, error) {
	var n int64
	err := j.db.WithContext(ctx).Model(&Record{}).Count(&n).Error
	return n, err
}

func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
