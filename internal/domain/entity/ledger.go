package entity

// NextLotID is 1 on an empty ledger, max(id)+1 otherwise. Ids are never
// reused even when lower ones are free.
func NextLotID(lots []Lot) int64 {
	var maxID int64
	for _, lot := range lots {
		maxID = max(maxID, lot.ID)
	}
	return maxID + 1
}

// AliasSet returns the codes currently present, for the alias generator.
func AliasSet(lots []Lot) map[string]struct{} {
	existing := make(map[string]struct{}, len(lots))
	for _, lot := range lots {
		existing[lot.Alias] = struct{}{}
	}
	return existing
}
