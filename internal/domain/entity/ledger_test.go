package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tg_ledger/internal/domain/entity"
)

func TestNextLotID(t *testing.T) {
	rq := require.New(t)

	rq.Equal(int64(1), entity.NextLotID(nil))

	lots := []entity.Lot{{ID: 1}, {ID: 3}, {ID: 4}}
	rq.Equal(int64(5), entity.NextLotID(lots))
}

func TestAliasSet(t *testing.T) {
	rq := require.New(t)

	set := entity.AliasSet([]entity.Lot{{Alias: "abc"}, {Alias: "xyz"}})
	rq.Len(set, 2)

	_, ok := set["abc"]
	rq.True(ok)
}

func TestStatusTerminal(t *testing.T) {
	rq := require.New(t)

	rq.False(entity.StatusInStock.Terminal())
	rq.False(entity.StatusListed.Terminal())
	rq.True(entity.StatusSold.Terminal())
	rq.True(entity.StatusRestored.Terminal())

	_, ok := entity.ParseStatus("in_stock")
	rq.True(ok)

	_, ok = entity.ParseStatus("refunded")
	rq.False(ok)
}
