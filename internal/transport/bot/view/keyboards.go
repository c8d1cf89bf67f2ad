package view

import (
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"tg_ledger/internal/domain/entity"
)

// ProfitKeyboard offers the usual targets plus a free-form one.
func ProfitKeyboard(lotID int64) *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("$0.5").WithCallbackData(fmt.Sprintf("profit:%d:0.5", lotID)),
			tu.InlineKeyboardButton("$1").WithCallbackData(fmt.Sprintf("profit:%d:1", lotID)),
			tu.InlineKeyboardButton("$2").WithCallbackData(fmt.Sprintf("profit:%d:2", lotID)),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("✏️ Свой профит").WithCallbackData(fmt.Sprintf("custom:%d", lotID)),
		),
	)
}

// ListingKeyboard follows a composed listing: repost the description or
// confirm the lot went up.
func ListingKeyboard(lotID int64, target string) *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("✏️ Изменить описание").WithCallbackData(fmt.Sprintf("edit_desc:%d:%s", lotID, target)),
			tu.InlineKeyboardButton("📣 Выставил").WithCallbackData(fmt.Sprintf("posted:%d", lotID)),
		),
	)
}

// LotKeyboard is attached to an open lot card; actions depend on where
// the lot is in its lifecycle.
func LotKeyboard(lot entity.Lot) *telego.InlineKeyboardMarkup {
	if lot.Status.Terminal() {
		return nil
	}

	rows := []telego.InlineKeyboardButton{
		tu.InlineKeyboardButton("💰 Выбрать профит").WithCallbackData(fmt.Sprintf("custom:%d", lot.ID)),
	}

	if lot.Status == entity.StatusInStock {
		rows = append(rows,
			tu.InlineKeyboardButton("📣 Выставил").WithCallbackData(fmt.Sprintf("posted:%d", lot.ID)))
	}

	second := []telego.InlineKeyboardButton{
		tu.InlineKeyboardButton("✅ Продан").WithCallbackData(fmt.Sprintf("sold:%d", lot.ID)),
		tu.InlineKeyboardButton("♻️ Восстановлен").WithCallbackData(fmt.Sprintf("restored:%d", lot.ID)),
	}

	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(rows...),
		tu.InlineKeyboardRow(second...),
	)
}

// LotListKeyboard renders one open button per lot.
func LotListKeyboard(lots []entity.Lot) *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(lots))
	for _, lot := range lots {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(LotLine(lot)).WithCallbackData(fmt.Sprintf("open:%d", lot.ID)),
		))
	}

	return tu.InlineKeyboard(rows...)
}

func ResetConfirmKeyboard() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🗑 Да, стереть").WithCallbackData("reset_confirm"),
			tu.InlineKeyboardButton("Отмена").WithCallbackData("noop"),
		),
	)
}
