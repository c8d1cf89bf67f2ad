package tests

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Money   func(max int64) decimal.Decimal
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Money: func(max int64) decimal.Decimal {
			// Random non-negative amount with cent precision.
			return decimal.New(random.Int63n(max*100), -2)
		},
	}
}
