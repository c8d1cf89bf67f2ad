package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"tg_ledger/internal/domain"
	"tg_ledger/internal/domain/entity"
	"tg_ledger/internal/domain/parser"
	"tg_ledger/internal/domain/pricing"
	"tg_ledger/pkg/errcodes"
)

// TargetOutcome is the result of choosing a profit target for a lot.
// When NeedDescription is set the engine has opened a description
// conversation and the transport should prompt for one; otherwise the
// listing is complete and ready to post.
type TargetOutcome struct {
	Lot             entity.Lot
	Target          decimal.Decimal
	MinSale         decimal.Decimal
	Description     string
	NeedDescription bool
}

// ChooseTarget computes the minimum sale price for the requested net
// profit, persists it on the lot and either completes the listing from
// a remembered description or opens a conversation to collect one.
// A negative target is an accepted loss, not an error.
//
// The price is computed inside the same exclusive region that writes
// it: a storage failure leaves neither the lot nor the published price
// half-updated.
func (s *LedgerService) ChooseTarget(ctx context.Context, operatorID, lotID int64, target decimal.Decimal) (TargetOutcome, error) {
	var (
		updated entity.Lot
		minSale decimal.Decimal
	)

	_, err := s.store.Update(ctx, func(lots []entity.Lot) ([]entity.Lot, error) {
		i, findErr := findLot(lots, lotID)
		if findErr != nil {
			return nil, findErr
		}

		if lots[i].Status.Terminal() {
			return nil, domain.NewError(errcodes.LotTerminal, "Лот уже закрыт")
		}

		raw, priceErr := pricing.MinSaleForTarget(lots[i].BuyPrice, target, s.commission)
		if priceErr != nil {
			return nil, priceErr
		}

		rounded, priceErr := pricing.ApplyEnding(raw, s.ending)
		if priceErr != nil {
			return nil, priceErr
		}

		lots[i].MinSaleForTarget = decimal.NullDecimal{Decimal: rounded, Valid: true}

		updated = lots[i]
		minSale = rounded
		return lots, nil
	})
	if err != nil {
		return TargetOutcome{}, err
	}

	outcome := TargetOutcome{Lot: updated, Target: target, MinSale: minSale}

	tpl, found, err := s.templates.Get(ctx, parser.NormalizeGameKey(updated.Game))
	if err != nil {
		return TargetOutcome{}, err
	}

	if found {
		s.conversations.Clear(operatorID)
		outcome.Description = tpl.Description
		return outcome, nil
	}

	s.conversations.Start(operatorID, entity.Conversation{
		Mode:   entity.ModeAwaitDesc,
		LotID:  lotID,
		Target: decimal.NullDecimal{Decimal: target, Valid: true},
	})
	outcome.NeedDescription = true

	return outcome, nil
}

// RequestCustomProfit opens a conversation waiting for a free-form
// profit amount from the operator.
func (s *LedgerService) RequestCustomProfit(operatorID, lotID int64) {
	s.conversations.Start(operatorID, entity.Conversation{
		Mode:  entity.ModeAwaitProfit,
		LotID: lotID,
	})
}

// RequestEditDescription opens a conversation that replaces the
// remembered description for the lot's game.
func (s *LedgerService) RequestEditDescription(operatorID, lotID int64, target decimal.Decimal) {
	s.conversations.Start(operatorID, entity.Conversation{
		Mode:   entity.ModeAwaitEditDesc,
		LotID:  lotID,
		Target: decimal.NullDecimal{Decimal: target, Valid: true},
	})
}

// EndConversation abandons whatever flow the operator had open.
func (s *LedgerService) EndConversation(operatorID int64) {
	s.conversations.Clear(operatorID)
}

// FreeTextKind classifies what a free-form operator message produced.
type FreeTextKind int

const (
	// OutcomeIgnored: no open conversation and the text is not a
	// purchase notification. The transport stays silent.
	OutcomeIgnored FreeTextKind = iota
	// OutcomeLotCreated: the text was a purchase notification and a new
	// lot was recorded.
	OutcomeLotCreated
	// OutcomeReprompt: the text did not parse as what the open
	// conversation expects; the conversation is kept and the operator
	// is asked again.
	OutcomeReprompt
	// OutcomeListingReady: a profit target was applied and a remembered
	// description completed the listing.
	OutcomeListingReady
	// OutcomeNeedDescription: a profit target was applied but no
	// description is remembered for the game.
	OutcomeNeedDescription
	// OutcomeDescriptionSaved: the text was consumed as a description,
	// remembered for the game and the listing is complete.
	OutcomeDescriptionSaved
)

// FreeTextOutcome carries everything the transport needs to reply
// without touching storage again.
type FreeTextOutcome struct {
	Kind        FreeTextKind
	Lot         entity.Lot
	Target      decimal.Decimal
	MinSale     decimal.Decimal
	Description string
}

// HandleFreeText routes a non-command message: an open conversation
// consumes it first, otherwise it is treated as a possible purchase
// notification.
func (s *LedgerService) HandleFreeText(ctx context.Context, operatorID int64, text string) (FreeTextOutcome, error) {
	conv, open := s.conversations.Get(operatorID)
	if !open {
		lot, err := s.CreateFromText(ctx, text)
		if err != nil {
			return FreeTextOutcome{}, err
		}
		if lot == nil {
			return FreeTextOutcome{Kind: OutcomeIgnored}, nil
		}
		return FreeTextOutcome{Kind: OutcomeLotCreated, Lot: *lot}, nil
	}

	switch conv.Mode {
	case entity.ModeAwaitProfit:
		return s.consumeProfit(ctx, operatorID, conv, text)
	case entity.ModeAwaitDesc, entity.ModeAwaitEditDesc:
		return s.consumeDescription(ctx, operatorID, conv, text)
	default:
		s.conversations.Clear(operatorID)
		return FreeTextOutcome{Kind: OutcomeIgnored}, nil
	}
}

func (s *LedgerService) consumeProfit(ctx context.Context, operatorID int64, conv entity.Conversation, text string) (FreeTextOutcome, error) {
	target, ok := parseMoney(text)
	if !ok {
		// conversation survives a bad amount, the operator just retries
		return FreeTextOutcome{Kind: OutcomeReprompt, Lot: entity.Lot{ID: conv.LotID}}, nil
	}

	outcome, err := s.ChooseTarget(ctx, operatorID, conv.LotID, target)
	if err != nil {
		return FreeTextOutcome{}, err
	}

	kind := OutcomeListingReady
	if outcome.NeedDescription {
		kind = OutcomeNeedDescription
	}

	return FreeTextOutcome{
		Kind:        kind,
		Lot:         outcome.Lot,
		Target:      outcome.Target,
		MinSale:     outcome.MinSale,
		Description: outcome.Description,
	}, nil
}

func (s *LedgerService) consumeDescription(ctx context.Context, operatorID int64, conv entity.Conversation, text string) (FreeTextOutcome, error) {
	description := strings.TrimSpace(text)
	if description == "" {
		return FreeTextOutcome{Kind: OutcomeReprompt, Lot: entity.Lot{ID: conv.LotID}}, nil
	}

	lot, err := s.Get(ctx, conv.LotID)
	if err != nil {
		return FreeTextOutcome{}, err
	}

	if err := s.templates.Save(ctx, parser.NormalizeGameKey(lot.Game), description); err != nil {
		return FreeTextOutcome{}, err
	}

	s.conversations.Clear(operatorID)

	outcome := FreeTextOutcome{
		Kind:        OutcomeDescriptionSaved,
		Lot:         *lot,
		Description: description,
	}
	if conv.Target.Valid {
		outcome.Target = conv.Target.Decimal
	}
	if lot.MinSaleForTarget.Valid {
		outcome.MinSale = lot.MinSaleForTarget.Decimal
	}

	return outcome, nil
}

// parseMoney reads an operator-typed amount: "1", "1.5", "1,5", "$2".
func parseMoney(text string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.TrimSuffix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.TrimSpace(cleaned)

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return value, true
}
