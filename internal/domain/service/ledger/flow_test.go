package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"tg_ledger/internal/domain/entity"
	service "tg_ledger/internal/domain/service/ledger"
	"tg_ledger/pkg/errcodes"
)

func TestChooseTargetFirstTimeAsksForDescription(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	lot, err := svc.CreateManual(ctx, "GTA 5", "steam", decimal.NewFromInt(10))
	require.NoError(t, err)

	outcome, err := svc.ChooseTarget(ctx, operatorID, lot.ID, decimal.NewFromInt(1))
	require.NoError(t, err)
	require.True(t, outcome.NeedDescription)
	// (10 + 1) / 0.94 = 11.70, tenth_9 -> 11.79
	require.True(t, outcome.MinSale.Equal(decimal.RequireFromString("11.79")),
		"min sale = %s", outcome.MinSale)

	got, err := svc.Get(ctx, lot.ID)
	require.NoError(t, err)
	require.True(t, got.MinSaleForTarget.Valid)
	require.True(t, got.MinSaleForTarget.Decimal.Equal(outcome.MinSale))
}

func TestChooseTargetReusesRememberedDescription(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateManual(ctx, "GTA 5", "steam", decimal.NewFromInt(10))
	require.NoError(t, err)

	outcome, err := svc.ChooseTarget(ctx, operatorID, first.ID, decimal.NewFromInt(1))
	require.NoError(t, err)
	require.True(t, outcome.NeedDescription)

	// description arrives as free text and is remembered per game
	saved, err := svc.HandleFreeText(ctx, operatorID, "Отличный аккаунт, полный доступ")
	require.NoError(t, err)
	require.Equal(t, service.OutcomeDescriptionSaved, saved.Kind)
	require.Equal(t, "Отличный аккаунт, полный доступ", saved.Description)

	second, err := svc.CreateManual(ctx, "gta 5", "epic", decimal.NewFromInt(8))
	require.NoError(t, err)

	outcome, err = svc.ChooseTarget(ctx, operatorID, second.ID, decimal.NewFromInt(1))
	require.NoError(t, err)
	require.False(t, outcome.NeedDescription)
	require.Equal(t, "Отличный аккаунт, полный доступ", outcome.Description)
}

func TestChooseTargetAcceptsLossTarget(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	lot, err := svc.CreateManual(ctx, "GTA 5", "steam", decimal.NewFromInt(10))
	require.NoError(t, err)

	// selling below cost is a legitimate choice
	outcome, err := svc.ChooseTarget(ctx, operatorID, lot.ID, decimal.NewFromInt(-2))
	require.NoError(t, err)
	// (10 - 2) / 0.94 = 8.51, tenth_9 -> 8.59
	require.True(t, outcome.MinSale.Equal(decimal.RequireFromString("8.59")),
		"min sale = %s", outcome.MinSale)
}

func TestChooseTargetRejectsTerminalLot(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	lot, err := svc.CreateManual(ctx, "GTA 5", "steam", decimal.NewFromInt(10))
	require.NoError(t, err)

	_, err = svc.MarkSold(ctx, lot.ID, decimal.NewFromInt(12))
	require.NoError(t, err)

	_, err = svc.ChooseTarget(ctx, operatorID, lot.ID, decimal.NewFromInt(1))
	require.Error(t, err)
	requireCode(t, err, errcodes.LotTerminal)
}

func TestCustomProfitFlow(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	lot, err := svc.CreateManual(ctx, "GTA 5", "steam", decimal.NewFromInt(10))
	require.NoError(t, err)

	svc.RequestCustomProfit(operatorID, lot.ID)

	// garbage keeps the conversation open
	outcome, err := svc.HandleFreeText(ctx, operatorID, "сколько-то")
	require.NoError(t, err)
	require.Equal(t, service.OutcomeReprompt, outcome.Kind)

	outcome, err = svc.HandleFreeText(ctx, operatorID, "1,5$")
	require.NoError(t, err)
	require.Equal(t, service.OutcomeNeedDescription, outcome.Kind)
	require.True(t, outcome.Target.Equal(decimal.RequireFromString("1.5")))
	// (10 + 1.5) / 0.94 = 12.23..., round2 -> 12.23, tenth_9 -> 12.29
	require.True(t, outcome.MinSale.Equal(decimal.RequireFromString("12.29")),
		"min sale = %s", outcome.MinSale)
}

func TestFreeTextWithoutConversation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	outcome, err := svc.HandleFreeText(ctx, operatorID, "просто сообщение")
	require.NoError(t, err)
	require.Equal(t, service.OutcomeIgnored, outcome.Kind)

	outcome, err = svc.HandleFreeText(ctx, operatorID, `По вашей ссылке "GTA 5" куплен аккаунт test за 5.53$`)
	require.NoError(t, err)
	require.Equal(t, service.OutcomeLotCreated, outcome.Kind)
	require.Equal(t, "GTA 5", outcome.Lot.Game)
}

func TestEditDescriptionFlow(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	lot, err := svc.CreateManual(ctx, "GTA 5", "steam", decimal.NewFromInt(10))
	require.NoError(t, err)

	outcome, err := svc.ChooseTarget(ctx, operatorID, lot.ID, decimal.NewFromInt(1))
	require.NoError(t, err)
	require.True(t, outcome.NeedDescription)

	_, err = svc.HandleFreeText(ctx, operatorID, "первое описание")
	require.NoError(t, err)

	svc.RequestEditDescription(operatorID, lot.ID, decimal.NewFromInt(1))

	saved, err := svc.HandleFreeText(ctx, operatorID, "новое описание")
	require.NoError(t, err)
	require.Equal(t, service.OutcomeDescriptionSaved, saved.Kind)
	require.Equal(t, "новое описание", saved.Description)
	require.True(t, saved.MinSale.Equal(decimal.RequireFromString("11.79")))

	// the remembered description changed for the whole game
	next, err := svc.CreateManual(ctx, "GTA 5", "other", decimal.NewFromInt(10))
	require.NoError(t, err)

	outcome, err = svc.ChooseTarget(ctx, operatorID, next.ID, decimal.NewFromInt(1))
	require.NoError(t, err)
	require.False(t, outcome.NeedDescription)
	require.Equal(t, "новое описание", outcome.Description)
}

func TestStartingNewFlowReplacesOldOne(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateManual(ctx, "GTA 5", "steam", decimal.NewFromInt(10))
	require.NoError(t, err)
	second, err := svc.CreateManual(ctx, "CS 2", "steam", decimal.NewFromInt(3))
	require.NoError(t, err)

	svc.RequestCustomProfit(operatorID, first.ID)
	svc.RequestCustomProfit(operatorID, second.ID)

	outcome, err := svc.HandleFreeText(ctx, operatorID, "2")
	require.NoError(t, err)
	require.Equal(t, service.OutcomeNeedDescription, outcome.Kind)
	require.Equal(t, second.ID, outcome.Lot.ID)
}

func TestEndConversation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	lot, err := svc.CreateManual(ctx, "GTA 5", "steam", decimal.NewFromInt(10))
	require.NoError(t, err)

	svc.RequestCustomProfit(operatorID, lot.ID)
	svc.EndConversation(operatorID)

	outcome, err := svc.HandleFreeText(ctx, operatorID, "1")
	require.NoError(t, err)
	require.Equal(t, service.OutcomeIgnored, outcome.Kind)
}

func TestConversationsArePerOperator(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	lot, err := svc.CreateManual(ctx, "GTA 5", "steam", decimal.NewFromInt(10))
	require.NoError(t, err)

	svc.RequestCustomProfit(operatorID, lot.ID)

	other, err := svc.HandleFreeText(ctx, operatorID+1, "1")
	require.NoError(t, err)
	require.Equal(t, service.OutcomeIgnored, other.Kind)

	outcome, err := svc.HandleFreeText(ctx, operatorID, "1")
	require.NoError(t, err)
	require.Equal(t, service.OutcomeNeedDescription, outcome.Kind)
}

func TestConversationStoreExpiry(t *testing.T) {
	t.Parallel()

	store := service.NewConversationStore(10 * time.Millisecond)

	store.Start(operatorID, entity.Conversation{Mode: entity.ModeAwaitProfit, LotID: 1})

	_, found := store.Get(operatorID)
	require.True(t, found)

	time.Sleep(50 * time.Millisecond)

	_, found = store.Get(operatorID)
	require.False(t, found)
}
