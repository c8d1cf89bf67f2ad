package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"tg_ledger/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	msgGroup := bh.Group(th.AnyMessage())
	msgGroup.Use(middleware.AdminOnly(adminID))
	msgGroup.Use(middleware.TraceID())

	msgGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	msgGroup.HandleMessage(h.OnStart, th.CommandEqual("help"))
	msgGroup.HandleMessage(h.OnAdd, th.CommandEqual("add"))
	msgGroup.HandleMessage(h.OnStock, th.CommandEqual("stock"))
	msgGroup.HandleMessage(h.OnListed, th.CommandEqual("listed"))
	msgGroup.HandleMessage(h.OnCalc, th.CommandEqual("calc"))
	msgGroup.HandleMessage(h.OnPosted, th.CommandEqual("posted"))
	msgGroup.HandleMessage(h.OnSold, th.CommandEqual("sold"))
	msgGroup.HandleMessage(h.OnRestored, th.CommandEqual("restored"))
	msgGroup.HandleMessage(h.OnStats, th.CommandEqual("stats"))
	msgGroup.HandleMessage(h.OnMonth, th.CommandEqual("month"))
	msgGroup.HandleMessage(h.OnExport, th.CommandEqual("export"))
	msgGroup.HandleMessage(h.OnReset, th.CommandEqual("reset"))

	// everything that is not a command: conversation answers and
	// forwarded purchase notifications
	msgGroup.HandleMessage(h.OnFreeText, th.AnyMessageWithText(), th.Not(th.AnyCommand()))

	cbGroup := bh.Group(th.AnyCallbackQuery())
	cbGroup.Use(middleware.AdminOnly(adminID))
	cbGroup.Use(middleware.TraceID())

	cbGroup.HandleCallbackQuery(h.OnProfitCallback, th.CallbackDataPrefix("profit:"))
	cbGroup.HandleCallbackQuery(h.OnCustomProfitCallback, th.CallbackDataPrefix("custom:"))
	cbGroup.HandleCallbackQuery(h.OnEditDescCallback, th.CallbackDataPrefix("edit_desc:"))
	cbGroup.HandleCallbackQuery(h.OnPostedCallback, th.CallbackDataPrefix("posted:"))
	cbGroup.HandleCallbackQuery(h.OnSoldCallback, th.CallbackDataPrefix("sold:"))
	cbGroup.HandleCallbackQuery(h.OnRestoredCallback, th.CallbackDataPrefix("restored:"))
	cbGroup.HandleCallbackQuery(h.OnOpenCallback, th.CallbackDataPrefix("open:"))
	cbGroup.HandleCallbackQuery(h.OnResetConfirmCallback, th.CallbackDataEqual("reset_confirm"))
	cbGroup.HandleCallbackQuery(h.OnNoopCallback, th.CallbackDataEqual("noop"))
}
