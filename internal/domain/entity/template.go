package entity

import "time"

// DescriptionTemplate remembers the last listing text an operator approved
// for a game. At most one per key, last write wins.
type DescriptionTemplate struct {
	GameKey     string
	Description string
	UpdatedAt   time.Time
}
