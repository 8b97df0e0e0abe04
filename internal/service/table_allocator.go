package service

import (
	"sort"

	"braseria/internal/venue"
)

// FindBestTable picks the free table with the smallest capacity that
// still fits the party (tightest fit). Zone preference restricts the
// search first; the full free set is only consulted when the preferred
// zone yields nothing. Ties break by catalog order. Returns nil when no
// single table fits.
func (s *AvailabilityService) FindBestTable(partySize int, occupied map[string]bool, preferredZone venue.Zone) *venue.Table {
	free := s.freeTables(occupied)

	candidates := free
	if preferredZone != "" {
		zoned := filterZone(free, preferredZone)
		if len(zoned) > 0 {
			candidates = zoned
		}
	}

	var best *venue.Table
	for i := range candidates {
		t := &candidates[i]
		if t.Capacity < partySize {
			continue
		}
		if best == nil || t.Capacity < best.Capacity {
			best = t
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

// FindTableCombination covers the party with one table when possible,
// otherwise accumulates free tables largest-first until the seat total
// reaches the party size. This greedy pass is deliberately not a
// minimal-table-count solver; which tables get chosen is part of the
// observable behavior, so keep the heuristic as is.
func (s *AvailabilityService) FindTableCombination(partySize int, occupied map[string]bool, preferredZone venue.Zone) []venue.Table {
	if t := s.FindBestTable(partySize, occupied, preferredZone); t != nil {
		return []venue.Table{*t}
	}

	if preferredZone != "" {
		if combo := s.accumulate(partySize, occupied, preferredZone); combo != nil {
			return combo
		}
	}
	return s.accumulate(partySize, occupied, "")
}

func (s *AvailabilityService) accumulate(partySize int, occupied map[string]bool, zone venue.Zone) []venue.Table {
	free := s.freeTables(occupied)
	if zone != "" {
		free = filterZone(free, zone)
	}
	// Largest first; equal capacities keep catalog order.
	sort.SliceStable(free, func(i, j int) bool {
		return free[i].Capacity > free[j].Capacity
	})

	var combo []venue.Table
	seats := 0
	for _, t := range free {
		combo = append(combo, t)
		seats += t.Capacity
		if seats >= partySize {
			return combo
		}
	}
	return nil
}

func (s *AvailabilityService) freeTables(occupied map[string]bool) []venue.Table {
	var out []venue.Table
	for _, t := range s.tables {
		if !occupied[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

func filterZone(tables []venue.Table, zone venue.Zone) []venue.Table {
	var out []venue.Table
	for _, t := range tables {
		if t.Zone == zone {
			out = append(out, t)
		}
	}
	return out
}
