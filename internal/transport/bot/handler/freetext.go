package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	service "tg_ledger/internal/domain/service/ledger"
	"tg_ledger/internal/transport/bot/view"
)

// OnFreeText handles everything that is not a command: answers to open
// conversations and forwarded purchase notifications. Non-notification
// noise is dropped without a reply.
func (h *Handler) OnFreeText(ctx *th.Context, msg telego.Message) error {
	outcome, err := h.svc.HandleFreeText(ctx, msg.From.ID, msg.Text)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	switch outcome.Kind {
	case service.OutcomeIgnored:
		return nil

	case service.OutcomeLotCreated:
		return h.replyHTML(ctx, msg.Chat.ID,
			view.NewLotMessage(outcome.Lot), view.ProfitKeyboard(outcome.Lot.ID))

	case service.OutcomeReprompt:
		return h.reply(ctx, msg.Chat.ID, view.ProfitRetry)

	case service.OutcomeNeedDescription:
		return h.reply(ctx, msg.Chat.ID, view.AskDescription)

	case service.OutcomeListingReady, service.OutcomeDescriptionSaved:
		return h.replyHTML(ctx, msg.Chat.ID,
			view.ListingMessage(outcome.Lot, outcome.Target, outcome.MinSale, outcome.Description, h.brand),
			view.ListingKeyboard(outcome.Lot.ID, outcome.Target.String()))

	default:
		return nil
	}
}
