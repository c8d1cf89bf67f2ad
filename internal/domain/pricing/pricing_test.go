package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"tg_ledger/internal/domain/pricing"
	"tg_ledger/pkg/tests"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMinSaleForTarget(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		buy    string
		target string
		rate   string
		want   string
	}{
		{name: "spec example", buy: "10.00", target: "1.00", rate: "0.06", want: "11.70"},
		{name: "zero buy price", buy: "0", target: "1.00", rate: "0.06", want: "1.06"},
		{name: "zero commission", buy: "5.00", target: "2.00", rate: "0", want: "7.00"},
		{name: "negative target is an accepted loss", buy: "10.00", target: "-2.00", rate: "0.06", want: "8.51"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got, err := pricing.MinSaleForTarget(dec(tc.buy), dec(tc.target), dec(tc.rate))
			rq.NoError(err)
			rq.True(dec(tc.want).Equal(got), "want %s got %s", tc.want, got)
		})
	}
}

func TestMinSaleForTargetGuards(t *testing.T) {
	rq := require.New(t)

	_, err := pricing.MinSaleForTarget(dec("10"), dec("1"), dec("1"))
	rq.Error(err)

	_, err = pricing.MinSaleForTarget(dec("10"), dec("1"), dec("-0.01"))
	rq.Error(err)

	_, err = pricing.MinSaleForTarget(dec("-1"), dec("1"), dec("0.06"))
	rq.Error(err)
}

func TestNetFromSale(t *testing.T) {
	rq := require.New(t)

	net, err := pricing.NetFromSale(dec("11.70"), dec("10.00"), dec("0.06"))
	rq.NoError(err)
	rq.True(dec("1.00").Equal(net), "got %s", net)

	net, err = pricing.NetFromSale(dec("5.00"), dec("10.00"), dec("0.06"))
	rq.NoError(err)
	rq.True(dec("-5.30").Equal(net), "got %s", net)
}

// Selling at the computed minimum realizes the target net, up to the
// cent-level rounding of both sides.
func TestRoundTripProperty(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	rate := dec("0.06")
	tolerance := dec("0.01")

	for range 1000 {
		buy := random.Money(200)
		target := random.Money(10)

		minSale, err := pricing.MinSaleForTarget(buy, target, rate)
		rq.NoError(err)

		net, err := pricing.NetFromSale(minSale, buy, rate)
		rq.NoError(err)

		diff := net.Sub(target).Abs()
		rq.True(diff.LessThanOrEqual(tolerance),
			"buy=%s target=%s minSale=%s net=%s", buy, target, minSale, net)
	}
}

func TestApplyEndingTenth9(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		in   string
		want string
	}{
		{in: "3.66", want: "3.69"},
		{in: "6.30", want: "6.39"},
		{in: "2.00", want: "2.09"},
		{in: "3.69", want: "3.69"},
		{in: "11.70", want: "11.79"},
		{in: "0", want: "0.09"},
	}

	for _, tc := range testCases {
		got, err := pricing.ApplyEnding(dec(tc.in), pricing.EndingTenth9)
		rq.NoError(err)
		rq.True(dec(tc.want).Equal(got), "in %s want %s got %s", tc.in, tc.want, got)
	}
}

func TestApplyEndingTenth9Idempotent(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	for range 1000 {
		amount := random.Money(100)

		once, err := pricing.ApplyEnding(amount, pricing.EndingTenth9)
		rq.NoError(err)

		twice, err := pricing.ApplyEnding(once, pricing.EndingTenth9)
		rq.NoError(err)

		rq.True(once.Equal(twice), "amount=%s once=%s twice=%s", amount, once, twice)
	}
}

func TestApplyEndingNinetyNine(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		ending pricing.Ending
		in     string
		want   string
	}{
		{ending: pricing.Ending99, in: "2.50", want: "2.99"},
		{ending: pricing.Ending99, in: "2.99", want: "2.99"},
		{ending: pricing.Ending99, in: "3.00", want: "3.99"},
		{ending: pricing.Ending49, in: "2.50", want: "3.49"},
		{ending: pricing.Ending49, in: "2.49", want: "2.49"},
		{ending: pricing.Ending49, in: "2.10", want: "2.49"},
	}

	for _, tc := range testCases {
		got, err := pricing.ApplyEnding(dec(tc.in), tc.ending)
		rq.NoError(err)
		rq.True(dec(tc.want).Equal(got), "in %s want %s got %s", tc.in, tc.want, got)
	}
}

func TestApplyEndingRejectsNegative(t *testing.T) {
	rq := require.New(t)

	_, err := pricing.ApplyEnding(dec("-0.01"), pricing.EndingTenth9)
	rq.Error(err)
}
