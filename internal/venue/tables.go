package venue

// Zone is a coarse table location used as an allocation preference,
// not a hard constraint.
type Zone string

const (
	ZoneOutside Zone = "outside"
	ZoneInside  Zone = "inside"
)

type Table struct {
	ID       string
	Zone     Zone
	Capacity int
}

// catalog is fixed at process start. Order matters: allocation tie
// breaks follow catalog order.
var catalog = []Table{
	{ID: "O1", Zone: ZoneOutside, Capacity: 2},
	{ID: "O2", Zone: ZoneOutside, Capacity: 2},
	{ID: "O3", Zone: ZoneOutside, Capacity: 4},
	{ID: "O4", Zone: ZoneOutside, Capacity: 4},
	{ID: "O5", Zone: ZoneOutside, Capacity: 6},
	{ID: "O6", Zone: ZoneOutside, Capacity: 8},
	{ID: "I1", Zone: ZoneInside, Capacity: 2},
	{ID: "I2", Zone: ZoneInside, Capacity: 4},
	{ID: "I3", Zone: ZoneInside, Capacity: 4},
	{ID: "I4", Zone: ZoneInside, Capacity: 6},
	{ID: "I5", Zone: ZoneInside, Capacity: 10},
}

// Catalog returns a copy so callers cannot mutate the inventory.
func Catalog() []Table {
	out := make([]Table, len(catalog))
	copy(out, catalog)
	return out
}

func ByID(id string) (Table, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Table{}, false
}

func ParseZone(s string) (Zone, bool) {
	switch Zone(s) {
	case ZoneOutside, ZoneInside:
		return Zone(s), true
	}
	return "", false
}
