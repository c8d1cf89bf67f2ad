package persistence

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tg_ledger/internal/domain/entity"
)

// Column layouts of the two flat tables. Both files are rewritten
// wholesale on every mutation, so the order here is the storage contract.
var (
	ledgerColumns = []string{
		"id", "alias", "source_text", "game", "account_desc",
		"buy_price", "buy_date", "status", "min_sale_for_target",
		"notes", "sell_price", "sell_date", "net_profit",
	}

	templateColumns = []string{"game_key", "description", "updated_at"}
)

func lotToRecord(lot entity.Lot) []string {
	return []string{
		fmt.Sprintf("%d", lot.ID),
		lot.Alias,
		lot.SourceText,
		lot.Game,
		lot.AccountDesc,
		lot.BuyPrice.StringFixed(2),
		lot.BuyDate.Format(time.RFC3339),
		string(lot.Status),
		nullDecimalToField(lot.MinSaleForTarget),
		lot.Notes,
		nullDecimalToField(lot.SellPrice),
		timeToField(lot.SellDate),
		nullDecimalToField(lot.NetProfit),
	}
}

func recordToLot(record []string) (entity.Lot, error) {
	if len(record) != len(ledgerColumns) {
		return entity.Lot{}, fmt.Errorf("row has %d columns, want %d", len(record), len(ledgerColumns))
	}

	var (
		lot entity.Lot
		err error
	)

	if _, err = fmt.Sscanf(record[0], "%d", &lot.ID); err != nil {
		return entity.Lot{}, fmt.Errorf("id %q: %w", record[0], err)
	}

	lot.Alias = record[1]
	lot.SourceText = record[2]
	lot.Game = record[3]
	lot.AccountDesc = record[4]

	if lot.BuyPrice, err = decimal.NewFromString(record[5]); err != nil {
		return entity.Lot{}, fmt.Errorf("buy_price %q: %w", record[5], err)
	}

	if lot.BuyDate, err = time.Parse(time.RFC3339, record[6]); err != nil {
		return entity.Lot{}, fmt.Errorf("buy_date %q: %w", record[6], err)
	}

	status, ok := entity.ParseStatus(record[7])
	if !ok {
		return entity.Lot{}, fmt.Errorf("unknown status %q", record[7])
	}
	lot.Status = status

	if lot.MinSaleForTarget, err = fieldToNullDecimal(record[8]); err != nil {
		return entity.Lot{}, fmt.Errorf("min_sale_for_target %q: %w", record[8], err)
	}

	lot.Notes = record[9]

	if lot.SellPrice, err = fieldToNullDecimal(record[10]); err != nil {
		return entity.Lot{}, fmt.Errorf("sell_price %q: %w", record[10], err)
	}

	if lot.SellDate, err = fieldToTime(record[11]); err != nil {
		return entity.Lot{}, fmt.Errorf("sell_date %q: %w", record[11], err)
	}

	if lot.NetProfit, err = fieldToNullDecimal(record[12]); err != nil {
		return entity.Lot{}, fmt.Errorf("net_profit %q: %w", record[12], err)
	}

	return lot, nil
}

func templateToRecord(template entity.DescriptionTemplate) []string {
	return []string{
		template.GameKey,
		template.Description,
		template.UpdatedAt.Format(time.RFC3339),
	}
}

func recordToTemplate(record []string) (entity.DescriptionTemplate, error) {
	if len(record) != len(templateColumns) {
		return entity.DescriptionTemplate{}, fmt.Errorf("row has %d columns, want %d", len(record), len(templateColumns))
	}

	updatedAt, err := time.Parse(time.RFC3339, record[2])
	if err != nil {
		return entity.DescriptionTemplate{}, fmt.Errorf("updated_at %q: %w", record[2], err)
	}

	return entity.DescriptionTemplate{
		GameKey:     record[0],
		Description: record[1],
		UpdatedAt:   updatedAt,
	}, nil
}

func nullDecimalToField(value decimal.NullDecimal) string {
	if !value.Valid {
		return ""
	}
	return value.Decimal.StringFixed(2)
}

func fieldToNullDecimal(raw string) (decimal.NullDecimal, error) {
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}

	return decimal.NullDecimal{Decimal: value, Valid: true}, nil
}

func timeToField(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(time.RFC3339)
}

func fieldToTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil // empty column means unset
	}

	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
