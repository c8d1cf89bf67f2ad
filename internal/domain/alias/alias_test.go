package alias_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tg_ledger/internal/domain/alias"
)

func TestGenerateUniqueShape(t *testing.T) {
	rq := require.New(t)

	code, err := alias.GenerateUnique(nil, alias.Length)
	rq.NoError(err)
	rq.Len(code, alias.Length)

	for _, r := range code {
		rq.True(r >= 'a' && r <= 'z', "unexpected rune %q in %q", r, code)
	}
}

func TestGenerateUniqueAvoidsExisting(t *testing.T) {
	rq := require.New(t)

	// Population well under the 17576-code space.
	existing := make(map[string]struct{}, 500)
	for len(existing) < 500 {
		code, err := alias.GenerateUnique(existing, alias.Length)
		rq.NoError(err)
		existing[code] = struct{}{}
	}

	for range 10000 {
		code, err := alias.GenerateUnique(existing, alias.Length)
		rq.NoError(err)

		_, taken := existing[code]
		rq.False(taken, "generator returned an occupied code %q", code)
	}
}
