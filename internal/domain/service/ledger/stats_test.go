package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateManual(ctx, "GTA 5", "steam", decimal.NewFromInt(5))
	require.NoError(t, err)

	listed, err := svc.CreateManual(ctx, "CS 2", "steam", decimal.NewFromInt(3))
	require.NoError(t, err)
	_, _, err = svc.MarkListed(ctx, listed.ID)
	require.NoError(t, err)

	sold, err := svc.CreateManual(ctx, "GTA 5", "epic", decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = svc.MarkSold(ctx, sold.ID, decimal.RequireFromString("11.70"))
	require.NoError(t, err)

	restored, err := svc.CreateManual(ctx, "CS 2", "epic", decimal.RequireFromString("2.50"))
	require.NoError(t, err)
	_, err = svc.MarkRestored(ctx, restored.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	require.Equal(t, 4, stats.Total)
	require.Equal(t, 1, stats.InStock)
	require.Equal(t, 1, stats.Listed)
	require.Equal(t, 1, stats.Sold)
	require.Equal(t, 1, stats.Restored)

	// restored lots still count into total spend
	require.True(t, stats.Spent.Equal(decimal.RequireFromString("20.50")), "spent = %s", stats.Spent)
	require.True(t, stats.Earned.Equal(decimal.RequireFromString("11.70")), "earned = %s", stats.Earned)
	// 1.00 from the sale, -2.50 from the restore
	require.True(t, stats.Net.Equal(decimal.RequireFromString("-1.50")), "net = %s", stats.Net)
}

func TestStatsEmptyLedger(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, stats.Total)
	require.True(t, stats.Net.IsZero())
}

func TestMonthlyStats(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	lot, err := svc.CreateManual(ctx, "GTA 5", "steam", decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = svc.MarkSold(ctx, lot.ID, decimal.RequireFromString("11.70"))
	require.NoError(t, err)

	now := time.Now().UTC()

	stats, err := svc.MonthlyStats(ctx, now.Year(), now.Month())
	require.NoError(t, err)
	require.Equal(t, 1, stats.Bought)
	require.Equal(t, 1, stats.Sold)
	require.True(t, stats.Spent.Equal(decimal.NewFromInt(10)))
	require.True(t, stats.Earned.Equal(decimal.RequireFromString("11.70")))
	require.True(t, stats.Net.Equal(decimal.RequireFromString("1.00")), "net = %s", stats.Net)

	prev := now.AddDate(0, -1, 0)
	empty, err := svc.MonthlyStats(ctx, prev.Year(), prev.Month())
	require.NoError(t, err)
	require.Equal(t, 0, empty.Bought)
	require.Equal(t, 0, empty.Sold)
	require.True(t, empty.Net.IsZero())
}
