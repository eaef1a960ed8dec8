package availability

import (
	"testing"

	"mesafy/models"

	"github.com/stretchr/testify/assert"
)

func tablesWithCapacities(caps ...int) []models.Table {
	tables := make([]models.Table, 0, len(caps))
	for i, c := range caps {
		tables = append(tables, models.Table{
			ID:       string(rune('a' + i)),
			Capacity: c,
		})
	}
	return tables
}

func TestAllocateTablesPerfectFit(t *testing.T) {
	tables := tablesWithCapacities(2, 4, 6, 10)
	// Party of 4: the 4-top is a perfect fit; never a combination.
	assert.Equal(t, []string{"b"}, AllocateTables(tables, 4))
	// Party of 3 fits the 4-top within the two-seat margin even though 2+2 is impossible here.
	assert.Equal(t, []string{"b"}, AllocateTables(tables, 3))
	// Party of 5: the 6-top is within margin, preferred over 2+4.
	assert.Equal(t, []string{"c"}, AllocateTables(tables, 5))
}

func TestAllocateTablesSmallestSeatsParty(t *testing.T) {
	// No perfect fit (both tables exceed the two-seat margin), but the
	// smallest table alone seats the party.
	tables := tablesWithCapacities(9, 12)
	assert.Equal(t, []string{"a"}, AllocateTables(tables, 5))
}

func TestAllocateTablesCombinesWhenSmallestTooSmall(t *testing.T) {
	// Party of 5 with tables 2 and 10: no perfect fit and the smallest table
	// is too small, so the greedy accumulation covers the party even though
	// the 10-top alone would suffice. First-fit covering, not
	// minimal-cardinality.
	tables := tablesWithCapacities(2, 10)
	assert.Equal(t, []string{"a", "b"}, AllocateTables(tables, 5))
}

func TestAllocateTablesGreedyCombination(t *testing.T) {
	// Party of 7 with tables 2, 2, 4: no single table fits, so combine
	// ascending by capacity until the party is covered.
	tables := tablesWithCapacities(2, 2, 4)
	assert.Equal(t, []string{"a", "b", "c"}, AllocateTables(tables, 7))

	// Party of 4 among the same tables takes the 4-top outright.
	assert.Equal(t, []string{"c"}, AllocateTables(tables, 4))
}

func TestAllocateTablesInsufficientCapacity(t *testing.T) {
	tables := tablesWithCapacities(2, 4)
	assert.Nil(t, AllocateTables(tables, 12))
	assert.Nil(t, AllocateTables(nil, 2))
}

func TestAllocateTablesDoesNotMutateInput(t *testing.T) {
	tables := tablesWithCapacities(6, 2, 4)
	AllocateTables(tables, 7)
	assert.Equal(t, 6, tables[0].Capacity)
	assert.Equal(t, 2, tables[1].Capacity)
	assert.Equal(t, 4, tables[2].Capacity)
}
