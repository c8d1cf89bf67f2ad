// Package handler translates Telegram updates into ledger operations.
// Handlers never compose success replies before the underlying write
// has returned: the operator only sees confirmations for durable state.
package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"tg_ledger/internal/domain"
	service "tg_ledger/internal/domain/service/ledger"
	"tg_ledger/pkg/contextx"
	"tg_ledger/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Handler struct {
	svc   *service.LedgerService
	brand string
}

func New(svc *service.LedgerService, brand string) *Handler {
	return &Handler{
		svc:   svc,
		brand: brand,
	}
}

// replyError surfaces the operator-facing message of a failed
// operation; internals stay in the logs.
func (h *Handler) replyError(ctx *th.Context, chatID int64, err error) error {
	logger(ctx).Warn("operation failed", logx.Error(err))
	return h.reply(ctx, chatID, domain.UserMessage(err))
}

func (h *Handler) reply(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: chatID},
		Text:   text,
	})
	return err
}

func (h *Handler) replyHTML(ctx *th.Context, chatID int64, text string, keyboard *telego.InlineKeyboardMarkup) error {
	params := &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	}

	// a typed nil must not end up in the ReplyMarkup interface
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}

	_, err := ctx.Bot().SendMessage(ctx, params)
	return err
}
