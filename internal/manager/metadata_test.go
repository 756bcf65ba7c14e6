package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataTable_CreateCountsAndOrders(t *testing.T) {
	tbl := &MetadataTable{}

	tbl.recordCreate("new")
	tbl.recordCreate("ready")
	tbl.recordCreate("new")

	entries := tbl.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].Value)
	assert.Equal(t, 2, entries[0].Count)
	assert.Equal(t, "ready", entries[1].Value)
	assert.Equal(t, 1, entries[1].Count)
}

func TestMetadataTable_DeleteRemovesAtZero(t *testing.T) {
	tbl := &MetadataTable{}
	tbl.recordCreate("new")
	tbl.recordCreate("new")

	tbl.recordDelete("new")
	assert.Equal(t, 1, tbl.Count("new"))

	tbl.recordDelete("new")
	assert.Equal(t, 0, tbl.Count("new"))
	assert.Empty(t, tbl.All())

	// deleting an absent value is a no-op
	tbl.recordDelete("new")
	assert.Empty(t, tbl.All())
}

func TestMetadataTable_UpdateMovesOccurrence(t *testing.T) {
	tbl := &MetadataTable{}
	tbl.recordCreate("new")
	tbl.recordCreate("new")

	tbl.recordUpdate("new", "ready")
	assert.Equal(t, 1, tbl.Count("new"))
	assert.Equal(t, 1, tbl.Count("ready"))

	// одинаковые значения — без изменений
	tbl.recordUpdate("ready", "ready")
	assert.Equal(t, 1, tbl.Count("ready"))
}

func TestMetadataTable_EmptyValuesNeverTracked(t *testing.T) {
	tbl := &MetadataTable{}

	tbl.recordCreate(nil)
	tbl.recordCreate("")
	tbl.recordCreate(false)
	tbl.recordCreate(float64(0))
	tbl.recordCreate(0)
	assert.Empty(t, tbl.All())

	// переход из пустого в непустое регистрирует только новое значение
	tbl.recordUpdate("", "alice")
	assert.Equal(t, 1, tbl.Count("alice"))

	// and back again only unregisters the old one
	tbl.recordUpdate("alice", "")
	assert.Empty(t, tbl.All())
}

func TestMetadataTable_FalseAndZeroStayUntracked(t *testing.T) {
	tbl := &MetadataTable{}

	tbl.recordCreate(true)
	tbl.recordCreate(float64(42))
	assert.Equal(t, 1, tbl.Count(true))
	assert.Equal(t, 1, tbl.Count(float64(42)))

	tbl.recordUpdate(true, false)
	assert.Equal(t, 0, tbl.Count(true))
	assert.Equal(t, 0, tbl.Count(false))
}
