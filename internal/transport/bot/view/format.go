package view

import (
	"fmt"
	"strings"

	"tg_ledger/internal/domain/entity"
	service "tg_ledger/internal/domain/service/ledger"
)

//nolint:gochecknoglobals
var statusTitles = map[entity.Status]string{
	entity.StatusInStock:  "📦 на складе",
	entity.StatusListed:   "📣 выставлен",
	entity.StatusSold:     "✅ продан",
	entity.StatusRestored: "♻️ восстановлен",
}

func StatusTitle(status entity.Status) string {
	if title, ok := statusTitles[status]; ok {
		return title
	}
	return string(status)
}

// NewLotMessage announces a freshly recorded lot.
func NewLotMessage(lot entity.Lot) string {
	return fmt.Sprintf(`🆕 <b>Новый лот #%d</b> <code>%s</code>

🎮 %s
📝 %s
💵 Закуп: %s$

Выбери профит:`,
		lot.ID, lot.Alias, lot.Game, lot.AccountDesc, lot.BuyPrice.StringFixed(2))
}

// LotCard is the detailed view behind the open button and /posted etc.
func LotCard(lot entity.Lot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>Лот #%d</b> <code>%s</code>\n", lot.ID, lot.Alias)
	fmt.Fprintf(&sb, "🎮 %s\n", lot.Game)
	if lot.AccountDesc != "" {
		fmt.Fprintf(&sb, "📝 %s\n", lot.AccountDesc)
	}
	fmt.Fprintf(&sb, "💵 Закуп: %s$ (%s)\n", lot.BuyPrice.StringFixed(2), lot.BuyDate.Format("02.01.2006"))
	fmt.Fprintf(&sb, "Статус: %s\n", StatusTitle(lot.Status))

	if lot.MinSaleForTarget.Valid {
		fmt.Fprintf(&sb, "💰 Мин. цена: %s$\n", lot.MinSaleForTarget.Decimal.StringFixed(2))
	}
	if lot.SellPrice.Valid {
		fmt.Fprintf(&sb, "🤝 Продано за: %s$\n", lot.SellPrice.Decimal.StringFixed(2))
	}
	if lot.NetProfit.Valid {
		fmt.Fprintf(&sb, "📈 Чистыми: %s$\n", lot.NetProfit.Decimal.StringFixed(2))
	}

	return sb.String()
}

// LotLine is one row of the /stock and /listed lists.
func LotLine(lot entity.Lot) string {
	return fmt.Sprintf("#%d %s — %s$", lot.ID, lot.Game, lot.BuyPrice.StringFixed(2))
}

func SoldMessage(lot entity.Lot) string {
	return fmt.Sprintf("✅ Лот #%d продан за %s$, чистыми %s$",
		lot.ID, lot.SellPrice.Decimal.StringFixed(2), lot.NetProfit.Decimal.StringFixed(2))
}

func RestoredMessage(lot entity.Lot) string {
	return fmt.Sprintf("♻️ Лот #%d восстановлен, минус %s$",
		lot.ID, lot.BuyPrice.StringFixed(2))
}

func PostedMessage(lot entity.Lot) string {
	return fmt.Sprintf("📣 Лот #%d отмечен выставленным", lot.ID)
}

func StatsMessage(stats service.Stats) string {
	return fmt.Sprintf(`📊 <b>Сводка за всё время</b>

Всего лотов: %d
📦 На складе: %d
📣 Выставлено: %d
✅ Продано: %d
♻️ Восстановлено: %d

💵 Потрачено: %s$
🤝 Выручка: %s$
📈 Чистыми: %s$`,
		stats.Total, stats.InStock, stats.Listed, stats.Sold, stats.Restored,
		stats.Spent.StringFixed(2), stats.Earned.StringFixed(2), stats.Net.StringFixed(2))
}

func MonthlyStatsMessage(stats service.MonthlyStats) string {
	return fmt.Sprintf(`📅 <b>Сводка за %04d-%02d</b>

Куплено: %d на %s$
Продано: %d на %s$
Восстановлено: %d
📈 Чистыми: %s$`,
		stats.Year, int(stats.Month),
		stats.Bought, stats.Spent.StringFixed(2),
		stats.Sold, stats.Earned.StringFixed(2),
		stats.Restored,
		stats.Net.StringFixed(2))
}
