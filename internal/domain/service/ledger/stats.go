package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"tg_ledger/internal/domain/entity"
)

// Stats is the all-time summary behind /stats. Spent counts every lot
// ever bought, restored ones included: a refunded account still cost
// its buy price up front, the loss shows up in Net instead.
type Stats struct {
	Total    int
	InStock  int
	Listed   int
	Sold     int
	Restored int

	Spent  decimal.Decimal
	Earned decimal.Decimal
	Net    decimal.Decimal
}

func (s *LedgerService) Stats(ctx context.Context) (Stats, error) {
	lots, err := s.store.LoadAll(ctx)
	if err != nil {
		return Stats{}, err
	}

	return summarize(lots), nil
}

// MonthlyStats is the /month summary: purchases by buy date, closures
// by sell date, both within the given month.
type MonthlyStats struct {
	Year  int
	Month time.Month

	Bought   int
	Sold     int
	Restored int

	Spent  decimal.Decimal
	Earned decimal.Decimal
	Net    decimal.Decimal
}

func (s *LedgerService) MonthlyStats(ctx context.Context, year int, month time.Month) (MonthlyStats, error) {
	lots, err := s.store.LoadAll(ctx)
	if err != nil {
		return MonthlyStats{}, err
	}

	bought := lo.Filter(lots, func(lot entity.Lot, _ int) bool {
		return sameMonth(lot.BuyDate, year, month)
	})

	closed := lo.Filter(lots, func(lot entity.Lot, _ int) bool {
		return lot.Status.Terminal() && lot.SellDate != nil && sameMonth(*lot.SellDate, year, month)
	})

	stats := MonthlyStats{
		Year:   year,
		Month:  month,
		Bought: len(bought),
		Spent: lo.Reduce(bought, func(sum decimal.Decimal, lot entity.Lot, _ int) decimal.Decimal {
			return sum.Add(lot.BuyPrice)
		}, decimal.Zero),
	}

	for _, lot := range closed {
		switch lot.Status {
		case entity.StatusSold:
			stats.Sold++
			if lot.SellPrice.Valid {
				stats.Earned = stats.Earned.Add(lot.SellPrice.Decimal)
			}
		case entity.StatusRestored:
			stats.Restored++
		}
		if lot.NetProfit.Valid {
			stats.Net = stats.Net.Add(lot.NetProfit.Decimal)
		}
	}

	return stats, nil
}

func summarize(lots []entity.Lot) Stats {
	stats := Stats{Total: len(lots)}

	for _, lot := range lots {
		stats.Spent = stats.Spent.Add(lot.BuyPrice)

		switch lot.Status {
		case entity.StatusInStock:
			stats.InStock++
		case entity.StatusListed:
			stats.Listed++
		case entity.StatusSold:
			stats.Sold++
			if lot.SellPrice.Valid {
				stats.Earned = stats.Earned.Add(lot.SellPrice.Decimal)
			}
		case entity.StatusRestored:
			stats.Restored++
		}

		if lot.Status.Terminal() && lot.NetProfit.Valid {
			stats.Net = stats.Net.Add(lot.NetProfit.Decimal)
		}
	}

	return stats
}

func sameMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}
