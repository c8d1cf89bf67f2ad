// Package application assembles the process: storage, ledger service,
// the Telegram transport, the alerts poller and the ops servers, all
// under one errgroup so any fatal module takes the process down.
package application

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"tg_ledger/internal/config"
	"tg_ledger/internal/domain/entity"
	"tg_ledger/internal/domain/pricing"
	service "tg_ledger/internal/domain/service/ledger"
	"tg_ledger/internal/infrastructure/alerts"
	"tg_ledger/internal/infrastructure/persistence"
	"tg_ledger/internal/transport/bot"
	"tg_ledger/internal/worker"
	"tg_ledger/pkg/application/modules"
	"tg_ledger/pkg/contextx"
)

const createdLotsBuffer = 16

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func Run(ctx context.Context, cfg config.Config) error {
	ledger := persistence.NewLedger(cfg.Storage.LedgerPath)
	templates := persistence.NewTemplateStore(cfg.Storage.TemplatesPath)

	// fail on unreadable storage now, not on the first command
	if _, err := ledger.LoadAll(ctx); err != nil {
		return fmt.Errorf("ledger storage check: %w", err)
	}

	svc := service.NewLedgerService(ledger, templates, cfg.Market.Rate(), pricing.Ending(cfg.Market.Ending)).
		WithConversationTTL(cfg.Bot.ConversationTTL)

	created := make(chan entity.Lot, createdLotsBuffer)

	tgBot, err := bot.New(cfg, svc, created)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.App.ProbeAddress,
	}.Run(gCtx, g)

	modules.MetricServer{
		ListenAddress: cfg.App.MetricsAddress,
	}.Run(gCtx, g)

	g.Go(func() error {
		return tgBot.Run(gCtx)
	})

	if cfg.Alerts.Enabled() {
		seen, err := alerts.NewSeenIndex(cfg.Alerts.StatePath)
		if err != nil {
			return fmt.Errorf("alerts.NewSeenIndex: %w", err)
		}

		poller := worker.NewAlertsPoller(
			alerts.NewSource(cfg.Alerts),
			seen,
			svc,
			created,
			cfg.Alerts.Interval,
		)

		g.Go(func() error {
			defer close(created)
			return poller.Run(gCtx)
		})
	} else {
		logger(ctx).Info("alerts poller disabled, no feed URL configured")
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
