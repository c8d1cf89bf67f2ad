package config

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Market struct {
	// Marketplace cut of the sale price, as a rate in [0, 1).
	Commission string `env:"MARKET_COMMISSION" envDefault:"0.06"`

	// Brand prefix for generated listing descriptions.
	Brand string `env:"MARKET_BRAND" envDefault:"Stirka"`

	// Psychological price ending applied to computed minimum prices.
	Ending string `env:"MARKET_ENDING" envDefault:"tenth_9" validate:"oneof=tenth_9 .99 .49"`
}

// CommissionRate parses and range-checks the commission. Kept as a string
// in the env so the rate stays an exact decimal, never a binary float.
func (m Market) CommissionRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(m.Commission)
	if err != nil {
		return decimal.Zero, fmt.Errorf("MARKET_COMMISSION %q: %w", m.Commission, err)
	}

	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("MARKET_COMMISSION %q: must be in [0, 1)", m.Commission)
	}

	return rate, nil
}

// Rate is CommissionRate for configs that already passed Load.
func (m Market) Rate() decimal.Decimal {
	return mustDecimal(m.Commission)
}
