package handler

import (
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/shopspring/decimal"

	"tg_ledger/internal/transport/bot/view"
)

// OnProfitCallback handles the fixed-amount profit buttons.
// Data: "profit:<lotID>:<amount>"
func (h *Handler) OnProfitCallback(ctx *th.Context, query telego.CallbackQuery) error {
	defer h.ack(ctx, query)

	parts := strings.Split(query.Data, ":")
	if len(parts) != 3 {
		return nil
	}

	lotID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil
	}

	target, err := decimal.NewFromString(parts[2])
	if err != nil {
		return nil
	}

	chatID := query.Message.GetChat().ID

	outcome, err := h.svc.ChooseTarget(ctx, query.From.ID, lotID, target)
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	if outcome.NeedDescription {
		return h.reply(ctx, chatID, view.AskDescription)
	}

	return h.replyHTML(ctx, chatID,
		view.ListingMessage(outcome.Lot, outcome.Target, outcome.MinSale, outcome.Description, h.brand),
		view.ListingKeyboard(outcome.Lot.ID, outcome.Target.String()))
}

// OnCustomProfitCallback starts the free-form profit flow.
// Data: "custom:<lotID>"
func (h *Handler) OnCustomProfitCallback(ctx *th.Context, query telego.CallbackQuery) error {
	defer h.ack(ctx, query)

	lotID, ok := callbackID(query.Data)
	if !ok {
		return nil
	}

	h.svc.RequestCustomProfit(query.From.ID, lotID)

	return h.reply(ctx, query.Message.GetChat().ID, view.AskProfit)
}

// OnEditDescCallback starts the description-replacement flow.
// Data: "edit_desc:<lotID>:<target>"
func (h *Handler) OnEditDescCallback(ctx *th.Context, query telego.CallbackQuery) error {
	defer h.ack(ctx, query)

	parts := strings.Split(query.Data, ":")
	if len(parts) != 3 {
		return nil
	}

	lotID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil
	}

	target, err := decimal.NewFromString(parts[2])
	if err != nil {
		return nil
	}

	h.svc.RequestEditDescription(query.From.ID, lotID, target)

	return h.reply(ctx, query.Message.GetChat().ID, "Пришли новый текст описания")
}

// OnPostedCallback marks the lot listed. Data: "posted:<lotID>"
func (h *Handler) OnPostedCallback(ctx *th.Context, query telego.CallbackQuery) error {
	defer h.ack(ctx, query)

	lotID, ok := callbackID(query.Data)
	if !ok {
		return nil
	}

	chatID := query.Message.GetChat().ID

	lot, already, err := h.svc.MarkListed(ctx, lotID)
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	if already {
		return h.reply(ctx, chatID, view.AlreadyListed)
	}

	return h.reply(ctx, chatID, view.PostedMessage(lot))
}

// OnSoldCallback closes the lot at its computed minimum price; a sale
// at another price goes through the /sold command instead.
// Data: "sold:<lotID>"
func (h *Handler) OnSoldCallback(ctx *th.Context, query telego.CallbackQuery) error {
	defer h.ack(ctx, query)

	lotID, ok := callbackID(query.Data)
	if !ok {
		return nil
	}

	chatID := query.Message.GetChat().ID

	lot, err := h.svc.Get(ctx, lotID)
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	if !lot.MinSaleForTarget.Valid {
		return h.reply(ctx, chatID, view.SoldUsage)
	}

	sold, err := h.svc.MarkSold(ctx, lotID, lot.MinSaleForTarget.Decimal)
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	return h.reply(ctx, chatID, view.SoldMessage(sold))
}

// OnRestoredCallback. Data: "restored:<lotID>"
func (h *Handler) OnRestoredCallback(ctx *th.Context, query telego.CallbackQuery) error {
	defer h.ack(ctx, query)

	lotID, ok := callbackID(query.Data)
	if !ok {
		return nil
	}

	chatID := query.Message.GetChat().ID

	lot, err := h.svc.MarkRestored(ctx, lotID)
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	return h.reply(ctx, chatID, view.RestoredMessage(lot))
}

// OnOpenCallback shows the full lot card. Data: "open:<lotID>"
func (h *Handler) OnOpenCallback(ctx *th.Context, query telego.CallbackQuery) error {
	defer h.ack(ctx, query)

	lotID, ok := callbackID(query.Data)
	if !ok {
		return nil
	}

	chatID := query.Message.GetChat().ID

	lot, err := h.svc.Get(ctx, lotID)
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	return h.replyHTML(ctx, chatID, view.LotCard(*lot), view.LotKeyboard(*lot))
}

func (h *Handler) OnResetConfirmCallback(ctx *th.Context, query telego.CallbackQuery) error {
	defer h.ack(ctx, query)

	chatID := query.Message.GetChat().ID

	if err := h.svc.ResetAll(ctx); err != nil {
		return h.replyError(ctx, chatID, err)
	}

	return h.reply(ctx, chatID, view.ResetDone)
}

func (h *Handler) OnNoopCallback(ctx *th.Context, query telego.CallbackQuery) error {
	defer h.ack(ctx, query)

	// cancel also abandons whatever flow was open
	h.svc.EndConversation(query.From.ID)

	return h.reply(ctx, query.Message.GetChat().ID, view.ResetCancelled)
}

// ack removes the spinner on the pressed button.
func (h *Handler) ack(ctx *th.Context, query telego.CallbackQuery) {
	_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
}

// callbackID parses "<prefix>:<lotID>".
func callbackID(data string) (int64, bool) {
	_, raw, found := strings.Cut(data, ":")
	if !found {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}
