package entity

import "github.com/shopspring/decimal"

// ConversationMode says what free text from the operator means right now.
type ConversationMode string

const (
	ModeAwaitProfit   ConversationMode = "await_profit"
	ModeAwaitDesc     ConversationMode = "await_desc"
	ModeAwaitEditDesc ConversationMode = "await_edit_desc"
)

// Conversation is the ephemeral per-operator state of a multi-step flow.
// It is never persisted; a process restart abandons in-progress flows.
type Conversation struct {
	Mode  ConversationMode
	LotID int64

	// Target collected so far (custom-profit flow fills it before the
	// description step needs it).
	Target decimal.NullDecimal
}
