// Package alias produces short human-memorable lot codes.
package alias

import (
	"math/rand/v2"
	"strings"

	"tg_ledger/internal/domain"
	"tg_ledger/pkg/errcodes"
)

const (
	Length   = 3
	alphabet = "abcdefghijklmnopqrstuvwxyz"

	// 26^3 is 17576; the inventory is tiny, so a handful of draws is
	// already generous.
	maxDraws = 10000
)

// GenerateUnique draws random lowercase codes until one is not present in
// existing. The caller must pass a set computed from the latest ledger
// snapshot and hold the ledger lock until the new alias is written,
// otherwise two concurrent creations can collide.
func GenerateUnique(existing map[string]struct{}, length int) (string, error) {
	if length <= 0 {
		length = Length
	}

	for range maxDraws {
		code := draw(length)
		if _, taken := existing[code]; !taken {
			return code, nil
		}
	}

	return "", domain.NewError(errcodes.AliasSpaceExhausted, "Не удалось подобрать свободный код лота")
}

func draw(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for range length {
		sb.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return sb.String()
}
