package availability

import (
	"sort"

	"mesafy/models"
)

// perfectFitMargin is how many seats beyond the party size still count as a
// "perfect fit" for a single table.
const perfectFitMargin = 2

// AllocateTables selects which of the conflict-free, capacity-eligible tables
// to assign to a party. Preference order: a single table seating the party
// with at most two spare seats, then the smallest table alone when it seats
// the party, then a greedy ascending-capacity combination covering the party
// size. It is a first-fit heuristic, not an optimal packing; ties keep input
// order.
func AllocateTables(available []models.Table, partySize int) []string {
	if len(available) == 0 {
		return nil
	}

	sorted := make([]models.Table, len(available))
	copy(sorted, available)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Capacity < sorted[j].Capacity
	})

	for _, t := range sorted {
		if t.Capacity >= partySize && t.Capacity <= partySize+perfectFitMargin {
			return []string{t.ID}
		}
	}

	if sorted[0].Capacity >= partySize {
		return []string{sorted[0].ID}
	}

	var ids []string
	total := 0
	for _, t := range sorted {
		ids = append(ids, t.ID)
		total += t.Capacity
		if total >= partySize {
			return ids
		}
	}

	// Even every table combined cannot seat the party.
	return nil
}
