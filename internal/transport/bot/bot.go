// Package bot owns the Telegram transport: long polling, routing and
// announcements for lots recorded by the background poller.
package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"tg_ledger/internal/config"
	"tg_ledger/internal/domain/entity"
	service "tg_ledger/internal/domain/service/ledger"
	"tg_ledger/internal/transport/bot/handler"
	"tg_ledger/internal/transport/bot/view"
	"tg_ledger/pkg/contextx"
	"tg_ledger/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const longPollTimeoutSeconds = 60

type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler

	chatID  int64
	created <-chan entity.Lot
}

// New wires the bot transport. The created channel carries lots
// recorded by the alerts poller; each one is announced in the admin
// chat with the profit keyboard attached.
func New(
	cfg config.Config,
	svc *service.LedgerService,
	created <-chan entity.Lot,
) (*Bot, error) {
	tgBot, err := telego.NewBot(cfg.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	updates, err := tgBot.UpdatesViaLongPolling(context.Background(), &telego.GetUpdatesParams{
		Timeout: longPollTimeoutSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(tgBot, updates)
	if err != nil {
		return nil, fmt.Errorf("th.NewBotHandler: %w", err)
	}

	handler.New(svc, cfg.Market.Brand).RegisterRoutes(botHandler, cfg.Bot.AdminID)

	return &Bot{
		bot:        tgBot,
		botHandler: botHandler,
		chatID:     cfg.Bot.ChatID,
		created:    created,
	}, nil
}

func (b *Bot) Run(ctx context.Context) error {
	go func() {
		if err := b.botHandler.Start(); err != nil {
			logger(ctx).Error("botHandler.Start", logx.Error(err))
		}
	}()

	logger(ctx).Info("bot started")

	b.announceLoop(ctx)

	if err := b.botHandler.Stop(); err != nil {
		return fmt.Errorf("botHandler.Stop: %w", err)
	}

	logger(ctx).Info("bot stopped")

	return nil
}

// announceLoop pushes poller-recorded lots into the admin chat until
// the context ends.
func (b *Bot) announceLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case lot, ok := <-b.created:
			if !ok {
				<-ctx.Done()
				return
			}

			_, err := b.bot.SendMessage(ctx, &telego.SendMessageParams{
				ChatID:      telego.ChatID{ID: b.chatID},
				Text:        view.NewLotMessage(lot),
				ParseMode:   telego.ModeHTML,
				ReplyMarkup: view.ProfitKeyboard(lot.ID),
			})
			if err != nil {
				logger(ctx).Error("lot announcement failed", logx.Error(err))
			}
		}
	}
}
