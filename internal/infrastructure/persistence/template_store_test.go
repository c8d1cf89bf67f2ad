package persistence_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tg_ledger/internal/infrastructure/persistence"
)

func TestTemplateStoreLastWriteWins(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "templates.csv")
	store := persistence.NewTemplateStore(path)

	_, found, err := store.Get(ctx, "gta 5")
	rq.NoError(err)
	rq.False(found)

	rq.NoError(store.Save(ctx, "gta 5", "Stirka | \"GTA 5\" | почта в комплекте"))
	rq.NoError(store.Save(ctx, "cs2", "Stirka | \"CS2\" | prime"))
	rq.NoError(store.Save(ctx, "gta 5", "Stirka | \"GTA 5\" | обновлённый текст\nвторая строка"))

	template, found, err := store.Get(ctx, "gta 5")
	rq.NoError(err)
	rq.True(found)
	rq.Equal("Stirka | \"GTA 5\" | обновлённый текст\nвторая строка", template.Description)
	rq.False(template.UpdatedAt.IsZero())

	// Still exactly one row per key after the overwrite.
	other, found, err := persistence.NewTemplateStore(path).Get(ctx, "cs2")
	rq.NoError(err)
	rq.True(found)
	rq.Equal("Stirka | \"CS2\" | prime", other.Description)
}

func TestTemplateStoreClear(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := persistence.NewTemplateStore(filepath.Join(t.TempDir(), "templates.csv"))

	rq.NoError(store.Save(ctx, "gta 5", "текст"))
	rq.NoError(store.Clear(ctx))

	_, found, err := store.Get(ctx, "gta 5")
	rq.NoError(err)
	rq.False(found)
}
