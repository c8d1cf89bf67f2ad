// Package pricing holds the money math: minimum sale price for a target
// net profit, realized net profit, and psychological price endings.
// Everything runs on exact decimals; results are quantized to cents with
// shopspring's Round (half away from zero).
package pricing

import (
	"github.com/shopspring/decimal"

	"tg_ledger/internal/domain"
	"tg_ledger/pkg/errcodes"
)

// Ending is a price-rounding convention applied to a freshly computed
// minimum sale price.
type Ending string

const (
	EndingTenth9 Ending = "tenth_9" // up to the next multiple of 0.10, minus a cent
	Ending99     Ending = ".99"
	Ending49     Ending = ".49"
)

var one = decimal.NewFromInt(1) //nolint:gochecknoglobals

// MinSaleForTarget returns the sale price at which the seller nets
// targetNet after the marketplace takes commissionRate of the sale:
//
//	round2((buy + target) / (1 - rate))
//
// targetNet may be negative (an accepted loss); commissionRate must be
// in [0, 1).
func MinSaleForTarget(buyPrice, targetNet, commissionRate decimal.Decimal) (decimal.Decimal, error) {
	if err := validateRate(commissionRate); err != nil {
		return decimal.Zero, err
	}
	if buyPrice.IsNegative() {
		return decimal.Zero, domain.NewError(errcodes.InvalidPrice, "Цена покупки не может быть отрицательной")
	}

	return buyPrice.Add(targetNet).Div(one.Sub(commissionRate)).Round(2), nil
}

// NetFromSale returns what the seller actually nets from a realized sale:
//
//	round2(sale * (1 - rate) - buy)
func NetFromSale(salePrice, buyPrice, commissionRate decimal.Decimal) (decimal.Decimal, error) {
	if err := validateRate(commissionRate); err != nil {
		return decimal.Zero, err
	}

	return salePrice.Mul(one.Sub(commissionRate)).Sub(buyPrice).Round(2), nil
}

// ApplyEnding rounds amount up to the requested psychological ending.
// The transform is idempotent and total over non-negative amounts;
// negative input is rejected.
func ApplyEnding(amount decimal.Decimal, ending Ending) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, domain.NewError(errcodes.InvalidPrice, "Цена не может быть отрицательной")
	}

	cents := amount.Round(2).Mul(decimal.NewFromInt(100)).IntPart()

	switch ending {
	case EndingTenth9:
		return decimal.New(ceil10(cents)-1, -2), nil
	case Ending99:
		return decimal.New(endingCents(cents, 99), -2), nil
	case Ending49:
		return decimal.New(endingCents(cents, 49), -2), nil
	default:
		return decimal.Zero, domain.NewError(errcodes.ValidationError, "Неизвестный режим округления")
	}
}

// ceil10 is the next multiple of 10 strictly greater than cents-1, with
// exact multiples pushed to the following tenth (2.00 ends at 2.09, not 1.99).
func ceil10(cents int64) int64 {
	if cents%10 == 0 {
		return cents + 10
	}
	return (cents/10 + 1) * 10
}

// endingCents returns the smallest value with the given fractional ending
// that is >= cents.
func endingCents(cents, ending int64) int64 {
	candidate := cents/100*100 + ending
	if candidate < cents {
		candidate += 100
	}
	return candidate
}

func validateRate(commissionRate decimal.Decimal) error {
	if commissionRate.IsNegative() || commissionRate.GreaterThanOrEqual(one) {
		return domain.NewError(errcodes.ValidationError, "Комиссия должна быть в диапазоне [0, 1)")
	}
	return nil
}
