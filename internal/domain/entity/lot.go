package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lot lifecycle state. Transitions are one-directional:
// in_stock -> listed -> sold|restored, with sold and restored terminal.
type Status string

const (
	StatusInStock  Status = "in_stock"
	StatusListed   Status = "listed"
	StatusSold     Status = "sold"
	StatusRestored Status = "restored"
)

func (s Status) Terminal() bool {
	return s == StatusSold || s == StatusRestored
}

func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusInStock, StatusListed, StatusSold, StatusRestored:
		return Status(raw), true
	}
	return "", false
}

// Lot is one purchased account awaiting resale, one ledger row.
type Lot struct {
	ID          int64
	Alias       string
	SourceText  string
	Game        string
	AccountDesc string
	BuyPrice    decimal.Decimal
	BuyDate     time.Time
	Status      Status

	// Last computed minimum sale price; unset until a target is chosen.
	MinSaleForTarget decimal.NullDecimal

	Notes string

	// Set only on the transition to sold or restored.
	SellPrice decimal.NullDecimal
	SellDate  *time.Time
	NetProfit decimal.NullDecimal
}
