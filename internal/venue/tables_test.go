package venue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	tables := Catalog()
	require.NotEmpty(t, tables)

	seen := map[string]bool{}
	for _, tbl := range tables {
		assert.False(t, seen[tbl.ID], "duplicate table id %s", tbl.ID)
		seen[tbl.ID] = true

		assert.GreaterOrEqual(t, tbl.Capacity, 2, "table %s", tbl.ID)
		switch tbl.Zone {
		case ZoneOutside:
			assert.True(t, strings.HasPrefix(tbl.ID, "O"), "outside table %s", tbl.ID)
		case ZoneInside:
			assert.True(t, strings.HasPrefix(tbl.ID, "I"), "inside table %s", tbl.ID)
		default:
			t.Fatalf("unknown zone %q for table %s", tbl.Zone, tbl.ID)
		}
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	tables := Catalog()
	tables[0].Capacity = 99
	fresh := Catalog()
	assert.NotEqual(t, 99, fresh[0].Capacity)
}

func TestByID(t *testing.T) {
	tbl, ok := ByID("O1")
	require.True(t, ok)
	assert.Equal(t, ZoneOutside, tbl.Zone)
	assert.Equal(t, 2, tbl.Capacity)

	_, ok = ByID("X9")
	assert.False(t, ok)
}

func TestParseZone(t *testing.T) {
	zone, ok := ParseZone("outside")
	require.True(t, ok)
	assert.Equal(t, ZoneOutside, zone)

	_, ok = ParseZone("rooftop")
	assert.False(t, ok)

	_, ok = ParseZone("")
	assert.False(t, ok)
}
