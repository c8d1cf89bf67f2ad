// Package parser extracts {game, account description, buy price} from raw
// marketplace purchase notifications. Extraction is an ordered list of
// independent strategies tried until one yields a value; a missing price
// marks the text as "not a purchase notification" and callers drop it
// silently. Zero is a valid price and is distinct from a missing one.
package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

type Result struct {
	Game        string
	AccountDesc string
	BuyPrice    decimal.NullDecimal
	SourceText  string
}

// IsPurchase reports whether the text looked like a purchase notification.
func (r Result) IsPurchase() bool {
	return r.BuyPrice.Valid
}

var (
	// "По вашей ссылке «GTA 5» куплен аккаунт ..."
	reLinkTitle = regexp.MustCompile(`(?i)по\s+вашей\s+ссылке\s*["«“]([^"»”]+)["»”]`)

	// Description fragment between the purchase marker and the next
	// "онлайн:" / "за" marker.
	reAccountDesc = regexp.MustCompile(`(?is)куплен\s+аккаунт\s+(.+?)\s+(?:онлайн:|за[\s:])`)

	// Price token after a "за"-style marker, currency sigil optional on
	// either side.
	rePrice = regexp.MustCompile(`(?i)(?:на\s?сумму|куплен[оа]?\s?за:?|за)\s*\$?\s*(\d[\d ]*(?:[.,]\d+)?)\s*\$?`)

	reAnyQuoted  = regexp.MustCompile(`["«“]([^"»”]+)["»”]`)
	reBeforeBuy  = regexp.MustCompile(`(?i)(\S+)\s+куплен\s+аккаунт`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

func ParseNotification(text string) Result {
	normalized := normalize(text)

	result := Result{
		SourceText:  text,
		Game:        extractGame(normalized),
		AccountDesc: extractAccountDesc(normalized),
		BuyPrice:    extractPrice(normalized),
	}

	return result
}

// normalize collapses whitespace and turns non-breaking spaces into plain
// ones so the price token regex does not trip over them.
func normalize(text string) string {
	text = strings.ReplaceAll(text, " ", " ")
	return strings.TrimSpace(reWhitespace.ReplaceAllString(text, " "))
}

func extractGame(text string) string {
	if m := reLinkTitle.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reAnyQuoted.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reBeforeBuy.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractAccountDesc(text string) string {
	if m := reAccountDesc.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractPrice(text string) decimal.NullDecimal {
	m := rePrice.FindStringSubmatch(text)
	if m == nil {
		return decimal.NullDecimal{}
	}

	raw := strings.ReplaceAll(m[1], " ", "")
	raw = strings.ReplaceAll(raw, ",", ".")

	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: price, Valid: true}
}

// NormalizeGameKey builds the description-memory lookup key: trimmed,
// collapsed whitespace, lower case.
func NormalizeGameKey(game string) string {
	return strings.ToLower(strings.TrimSpace(reWhitespace.ReplaceAllString(game, " ")))
}
