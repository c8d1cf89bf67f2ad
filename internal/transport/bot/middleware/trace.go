package middleware

import (
	"log/slog"
	"strconv"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/rs/xid"

	"tg_ledger/pkg/contextx"
	"tg_ledger/pkg/logx"
)

// TraceID tags every update with its own trace id and puts the
// decorated logger into the handler context, so all log lines of one
// update can be grepped together.
func TraceID() th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		traceID := contextx.TraceID(xid.New().String())

		log := contextx.LoggerFromContextOrDefault(ctx).With(
			slog.String(logx.FieldTraceID, traceID.String()),
			slog.String(logx.FieldUpdateKind, updateKind(update)),
		)

		next := contextx.WithLogger(contextx.WithTraceID(ctx, traceID), log)

		if id := operatorID(update); id != 0 {
			next = contextx.WithUserID(next, contextx.UserID(strconv.FormatInt(id, 10)))
		}

		return ctx.WithContext(next).Next(update)
	}
}

func operatorID(update telego.Update) int64 {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID
	case update.CallbackQuery != nil:
		return update.CallbackQuery.From.ID
	default:
		return 0
	}
}

func updateKind(update telego.Update) string {
	switch {
	case update.Message != nil:
		return "message"
	case update.CallbackQuery != nil:
		return "callback"
	default:
		return "other"
	}
}
