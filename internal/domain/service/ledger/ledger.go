// Package service is the lot lifecycle and conversation engine: it turns
// inbound events into ledger mutations and decides what the operator is
// asked next. Every mutation runs as one read-modify-write unit inside
// the store's exclusive region; replies are composed by the transport
// only after the write has committed.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"tg_ledger/internal/domain"
	"tg_ledger/internal/domain/alias"
	"tg_ledger/internal/domain/entity"
	"tg_ledger/internal/domain/parser"
	"tg_ledger/internal/domain/pricing"
	"tg_ledger/pkg/errcodes"
	"tg_ledger/pkg/logx"
)

type LedgerStore interface {
	LoadAll(ctx context.Context) ([]entity.Lot, error)
	Update(ctx context.Context, fn func(lots []entity.Lot) ([]entity.Lot, error)) ([]entity.Lot, error)
	Snapshot(ctx context.Context) ([]byte, error)
}

type TemplateStore interface {
	Get(ctx context.Context, gameKey string) (entity.DescriptionTemplate, bool, error)
	Save(ctx context.Context, gameKey, description string) error
	Clear(ctx context.Context) error
}

type LedgerService struct {
	store      LedgerStore
	templates  TemplateStore
	commission decimal.Decimal
	ending     pricing.Ending

	conversations *ConversationStore
}

func NewLedgerService(
	store LedgerStore,
	templates TemplateStore,
	commission decimal.Decimal,
	ending pricing.Ending,
) *LedgerService {
	return &LedgerService{
		store:         store,
		templates:     templates,
		commission:    commission,
		ending:        ending,
		conversations: NewConversationStore(defaultConversationTTL),
	}
}

func (s *LedgerService) WithConversationTTL(ttl time.Duration) *LedgerService {
	s.conversations = NewConversationStore(ttl)
	return s
}

// CreateFromText parses a raw notification and, when it is a purchase,
// records a new in_stock lot. Returns nil without error for texts that
// are not purchase notifications; callers drop those silently.
func (s *LedgerService) CreateFromText(ctx context.Context, text string) (*entity.Lot, error) {
	result := parser.ParseNotification(text)
	if !result.IsPurchase() {
		notificationsIgnored.Inc()
		logger(ctx).Debug("text is not a purchase notification")
		return nil, nil //nolint:nilnil // "not a purchase" is not an error
	}

	return s.create(ctx, entity.Lot{
		SourceText:  result.SourceText,
		Game:        result.Game,
		AccountDesc: result.AccountDesc,
		BuyPrice:    result.BuyPrice.Decimal,
	})
}

// CreateManual records an operator-entered lot.
func (s *LedgerService) CreateManual(ctx context.Context, game, accountDesc string, buyPrice decimal.Decimal) (*entity.Lot, error) {
	if buyPrice.IsNegative() {
		return nil, domain.NewError(errcodes.InvalidPrice, "Цена покупки не может быть отрицательной")
	}

	return s.create(ctx, entity.Lot{
		Game:        game,
		AccountDesc: accountDesc,
		BuyPrice:    buyPrice,
	})
}

// create assigns id and alias from the freshest table snapshot, inside
// the same exclusive region as the write. Two concurrent creations can
// therefore never collide on either.
func (s *LedgerService) create(ctx context.Context, lot entity.Lot) (*entity.Lot, error) {
	var created entity.Lot

	_, err := s.store.Update(ctx, func(lots []entity.Lot) ([]entity.Lot, error) {
		code, err := alias.GenerateUnique(entity.AliasSet(lots), alias.Length)
		if err != nil {
			return nil, err
		}

		lot.ID = entity.NextLotID(lots)
		lot.Alias = code
		lot.BuyDate = time.Now().UTC()
		lot.Status = entity.StatusInStock

		created = lot
		return append(lots, lot), nil
	})
	if err != nil {
		return nil, err
	}

	lotsCreated.Inc()
	logger(ctx).Info("lot created",
		slog.Int64(logx.FieldLotID, created.ID),
		slog.String(logx.FieldAlias, created.Alias),
		slog.String(logx.FieldGame, created.Game),
	)

	return &created, nil
}

func (s *LedgerService) Get(ctx context.Context, id int64) (*entity.Lot, error) {
	lots, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range lots {
		if lots[i].ID == id {
			return &lots[i], nil
		}
	}

	return nil, domain.NewError(errcodes.LotNotFound, "Лот не найден")
}

// MarkListed publishes a lot. Marking an already listed lot again is a
// no-op acknowledged to the operator, not an error.
func (s *LedgerService) MarkListed(ctx context.Context, id int64) (lot entity.Lot, already bool, err error) {
	_, err = s.store.Update(ctx, func(lots []entity.Lot) ([]entity.Lot, error) {
		i, findErr := findLot(lots, id)
		if findErr != nil {
			return nil, findErr
		}

		if lots[i].Status.Terminal() {
			return nil, domain.NewError(errcodes.LotTerminal, "Лот уже закрыт, публикация невозможна")
		}

		already = lots[i].Status == entity.StatusListed
		lots[i].Status = entity.StatusListed
		lot = lots[i]
		return lots, nil
	})
	if err != nil {
		return entity.Lot{}, false, err
	}

	return lot, already, nil
}

// MarkSold closes a lot with a realized sale price and computes the net.
func (s *LedgerService) MarkSold(ctx context.Context, id int64, salePrice decimal.Decimal) (entity.Lot, error) {
	if salePrice.IsNegative() {
		return entity.Lot{}, domain.NewError(errcodes.InvalidPrice, "Цена продажи не может быть отрицательной")
	}

	var sold entity.Lot

	_, err := s.store.Update(ctx, func(lots []entity.Lot) ([]entity.Lot, error) {
		i, findErr := findLot(lots, id)
		if findErr != nil {
			return nil, findErr
		}

		if lots[i].Status.Terminal() {
			return nil, domain.NewError(errcodes.LotTerminal, "Лот уже закрыт")
		}

		net, priceErr := pricing.NetFromSale(salePrice, lots[i].BuyPrice, s.commission)
		if priceErr != nil {
			return nil, priceErr
		}

		now := time.Now().UTC()
		lots[i].Status = entity.StatusSold
		lots[i].SellPrice = decimal.NullDecimal{Decimal: salePrice, Valid: true}
		lots[i].SellDate = &now
		lots[i].NetProfit = decimal.NullDecimal{Decimal: net, Valid: true}

		sold = lots[i]
		return lots, nil
	})
	if err != nil {
		return entity.Lot{}, err
	}

	lotsSold.Inc()
	logger(ctx).Info("lot sold",
		slog.Int64(logx.FieldLotID, sold.ID),
		slog.String("net", sold.NetProfit.Decimal.String()),
	)

	return sold, nil
}

// MarkRestored closes a returned/refunded lot as a pure loss: the net is
// exactly -buy_price and no sale price is recorded.
func (s *LedgerService) MarkRestored(ctx context.Context, id int64) (entity.Lot, error) {
	var restored entity.Lot

	_, err := s.store.Update(ctx, func(lots []entity.Lot) ([]entity.Lot, error) {
		i, findErr := findLot(lots, id)
		if findErr != nil {
			return nil, findErr
		}

		if lots[i].Status.Terminal() {
			return nil, domain.NewError(errcodes.LotTerminal, "Лот уже закрыт")
		}

		now := time.Now().UTC()
		lots[i].Status = entity.StatusRestored
		lots[i].SellDate = &now
		lots[i].NetProfit = decimal.NullDecimal{Decimal: lots[i].BuyPrice.Neg(), Valid: true}

		restored = lots[i]
		return lots, nil
	})
	if err != nil {
		return entity.Lot{}, err
	}

	lotsRestored.Inc()
	logger(ctx).Info("lot restored", slog.Int64(logx.FieldLotID, restored.ID))

	return restored, nil
}

func (s *LedgerService) ListByStatus(ctx context.Context, status entity.Status) ([]entity.Lot, error) {
	lots, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]entity.Lot, 0, len(lots))
	for _, lot := range lots {
		if lot.Status == status {
			filtered = append(filtered, lot)
		}
	}

	return filtered, nil
}

// ExportLedger returns the raw table for the /export command.
func (s *LedgerService) ExportLedger(ctx context.Context) ([]byte, error) {
	return s.store.Snapshot(ctx)
}

// ResetAll wipes the ledger and the description memory.
func (s *LedgerService) ResetAll(ctx context.Context) error {
	if _, err := s.store.Update(ctx, func([]entity.Lot) ([]entity.Lot, error) {
		return nil, nil
	}); err != nil {
		return err
	}

	if err := s.templates.Clear(ctx); err != nil {
		return err
	}

	logger(ctx).Warn("ledger reset by operator")
	return nil
}

func findLot(lots []entity.Lot, id int64) (int, error) {
	for i := range lots {
		if lots[i].ID == id {
			return i, nil
		}
	}
	return 0, domain.NewError(errcodes.LotNotFound, "Лот не найден")
}
