package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/shopspring/decimal"

	"tg_ledger/internal/domain/entity"
	"tg_ledger/internal/transport/bot/view"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.replyHTML(ctx, msg.Chat.ID, view.StartMessage, nil)
}

// OnAdd records a lot by hand: /add игра | описание | цена
func (h *Handler) OnAdd(ctx *th.Context, msg telego.Message) error {
	args := strings.TrimSpace(strings.TrimPrefix(msg.Text, "/add"))

	parts := strings.Split(args, "|")
	if len(parts) != 3 {
		return h.reply(ctx, msg.Chat.ID, view.AddUsage)
	}

	game := strings.TrimSpace(parts[0])
	accountDesc := strings.TrimSpace(parts[1])
	price, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(parts[2]), ",", "."))
	if err != nil || game == "" {
		return h.reply(ctx, msg.Chat.ID, view.AddUsage)
	}

	lot, err := h.svc.CreateManual(ctx, game, accountDesc, price)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	return h.replyHTML(ctx, msg.Chat.ID, view.NewLotMessage(*lot), view.ProfitKeyboard(lot.ID))
}

func (h *Handler) OnStock(ctx *th.Context, msg telego.Message) error {
	return h.listByStatus(ctx, msg.Chat.ID, entity.StatusInStock, view.StockEmpty)
}

func (h *Handler) OnListed(ctx *th.Context, msg telego.Message) error {
	return h.listByStatus(ctx, msg.Chat.ID, entity.StatusListed, view.ListedEmpty)
}

func (h *Handler) listByStatus(ctx *th.Context, chatID int64, status entity.Status, emptyText string) error {
	lots, err := h.svc.ListByStatus(ctx, status)
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	if len(lots) == 0 {
		return h.reply(ctx, chatID, emptyText)
	}

	return h.replyHTML(ctx, chatID, view.StatusTitle(status), view.LotListKeyboard(lots))
}

// OnCalc generates the listing for a lot at the given profit target:
// /calc 3 1.5 — same path as the profit buttons, typed by hand. The
// target may be negative for an accepted loss.
func (h *Handler) OnCalc(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) != 3 {
		return h.reply(ctx, msg.Chat.ID, view.CalcUsage)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return h.reply(ctx, msg.Chat.ID, view.InvalidID)
	}

	target, err := parseAmount(parts[2])
	if err != nil {
		return h.reply(ctx, msg.Chat.ID, view.CalcUsage)
	}

	outcome, err := h.svc.ChooseTarget(ctx, msg.From.ID, id, target)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	if outcome.NeedDescription {
		return h.reply(ctx, msg.Chat.ID, view.AskDescription)
	}

	return h.replyHTML(ctx, msg.Chat.ID,
		view.ListingMessage(outcome.Lot, outcome.Target, outcome.MinSale, outcome.Description, h.brand),
		view.ListingKeyboard(outcome.Lot.ID, outcome.Target.String()))
}

func (h *Handler) OnPosted(ctx *th.Context, msg telego.Message) error {
	id, ok := commandID(msg.Text)
	if !ok {
		return h.reply(ctx, msg.Chat.ID, view.PostedUsage)
	}

	lot, already, err := h.svc.MarkListed(ctx, id)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	if already {
		return h.reply(ctx, msg.Chat.ID, view.AlreadyListed)
	}

	return h.reply(ctx, msg.Chat.ID, view.PostedMessage(lot))
}

func (h *Handler) OnSold(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) != 3 {
		return h.reply(ctx, msg.Chat.ID, view.SoldUsage)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return h.reply(ctx, msg.Chat.ID, view.InvalidID)
	}

	price, err := parseAmount(parts[2])
	if err != nil {
		return h.reply(ctx, msg.Chat.ID, view.InvalidPrice)
	}

	lot, err := h.svc.MarkSold(ctx, id, price)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	return h.reply(ctx, msg.Chat.ID, view.SoldMessage(lot))
}

func (h *Handler) OnRestored(ctx *th.Context, msg telego.Message) error {
	id, ok := commandID(msg.Text)
	if !ok {
		return h.reply(ctx, msg.Chat.ID, view.RestoredUsage)
	}

	lot, err := h.svc.MarkRestored(ctx, id)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	return h.reply(ctx, msg.Chat.ID, view.RestoredMessage(lot))
}

func (h *Handler) OnStats(ctx *th.Context, msg telego.Message) error {
	stats, err := h.svc.Stats(ctx)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	return h.replyHTML(ctx, msg.Chat.ID, view.StatsMessage(stats), nil)
}

// OnMonth reports a month: /month 2025-07, no argument means now.
func (h *Handler) OnMonth(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)

	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	if len(parts) > 1 {
		parsed, err := time.Parse("2006-01", parts[1])
		if err != nil {
			return h.reply(ctx, msg.Chat.ID, view.MonthUsage)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	stats, err := h.svc.MonthlyStats(ctx, year, month)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	return h.replyHTML(ctx, msg.Chat.ID, view.MonthlyStatsMessage(stats), nil)
}

func (h *Handler) OnExport(ctx *th.Context, msg telego.Message) error {
	raw, err := h.svc.ExportLedger(ctx)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	if len(raw) == 0 {
		return h.reply(ctx, msg.Chat.ID, view.ExportEmpty)
	}

	_, err = ctx.Bot().SendDocument(ctx, &telego.SendDocumentParams{
		ChatID:   telego.ChatID{ID: msg.Chat.ID},
		Document: tu.FileFromBytes(raw, "inventory.csv"),
		Caption:  view.ExportCaption,
	})
	return err
}

func (h *Handler) OnReset(ctx *th.Context, msg telego.Message) error {
	return h.replyHTML(ctx, msg.Chat.ID, view.ResetQuestion, view.ResetConfirmKeyboard())
}

func commandID(text string) (int64, bool) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return 0, false
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(raw), "$")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	return decimal.NewFromString(cleaned)
}
