// Package worker hosts the background loops of the bot.
package worker

import (
	"context"
	"time"

	"tg_ledger/internal/domain/entity"
	service "tg_ledger/internal/domain/service/ledger"
	"tg_ledger/pkg/contextx"
	"tg_ledger/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type NotificationSource interface {
	Fetch(ctx context.Context) ([]string, error)
}

type SeenIndex interface {
	MarkSeen(text string) (bool, error)
}

// AlertsPoller periodically pulls the notification feed and records
// the purchases it has not seen before. Newly created lots are pushed
// to the created channel so the bot can announce them in chat.
type AlertsPoller struct {
	source  NotificationSource
	seen    SeenIndex
	ledger  *service.LedgerService
	created chan<- entity.Lot

	interval time.Duration
}

func NewAlertsPoller(
	source NotificationSource,
	seen SeenIndex,
	ledger *service.LedgerService,
	created chan<- entity.Lot,
	interval time.Duration,
) *AlertsPoller {
	return &AlertsPoller{
		source:   source,
		seen:     seen,
		ledger:   ledger,
		created:  created,
		interval: interval,
	}
}

func (w *AlertsPoller) Run(ctx context.Context) error {
	logger(ctx).Info("alerts poller started", "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.poll(ctx)

		select {
		case <-ctx.Done():
			logger(ctx).Info("alerts poller stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// poll never fails the loop: a broken cycle is logged and the next tick
// retries from scratch.
func (w *AlertsPoller) poll(ctx context.Context) {
	texts, err := w.source.Fetch(ctx)
	if err != nil {
		logger(ctx).Error("alerts fetch failed", logx.Error(err))
		return
	}

	var created int

	for _, text := range texts {
		select {
		case <-ctx.Done():
			return
		default:
		}

		isNew, err := w.seen.MarkSeen(text)
		if err != nil {
			logger(ctx).Error("seen index write failed", logx.Error(err))
			return
		}
		if !isNew {
			continue
		}

		lot, err := w.ledger.CreateFromText(ctx, text)
		if err != nil {
			logger(ctx).Error("lot creation from alert failed", logx.Error(err))
			continue
		}
		if lot == nil {
			continue
		}

		created++

		select {
		case w.created <- *lot:
		case <-ctx.Done():
			return
		}
	}

	if created > 0 {
		logger(ctx).Info("poll cycle recorded new lots", "count", created)
	}
}
