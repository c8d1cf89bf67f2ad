package view

import (
	"fmt"

	"github.com/shopspring/decimal"

	"tg_ledger/internal/domain/entity"
)

// ComposeListing builds the marketplace-ready listing text: title with
// the brand tag, the minimum sale price and the per-game description.
func ComposeListing(lot entity.Lot, minSale decimal.Decimal, description, brand string) string {
	return fmt.Sprintf(`%s | %s | %s

💵 %s$

%s`,
		lot.Game, lot.AccountDesc, brand, minSale.StringFixed(2), description)
}

// ListingMessage wraps the listing into the chat reply with a reminder
// which lot it belongs to.
func ListingMessage(lot entity.Lot, target, minSale decimal.Decimal, description, brand string) string {
	return fmt.Sprintf(`Лот #%d, профит %s$, минимальная цена <b>%s$</b>

Готовый текст объявления:

<pre>%s</pre>`,
		lot.ID, target.StringFixed(2), minSale.StringFixed(2),
		ComposeListing(lot, minSale, description, brand))
}
