package service

import (
	"fmt"

	"braseria/internal/db"
	"braseria/internal/entities"
	"braseria/internal/venue"
)

const (
	// EventCapacity is the shared seat pool for non-NORMAL bookings,
	// independent of the table inventory.
	EventCapacity = 100

	childPartyLatestStart  = 20*60 + 30 // 20:30
	exclusiveEarliestStart = 21*60 + 30 // 21:30
	minutesPerDay          = 24 * 60
	alternativesWanted     = 3
)

// altOffsets is the fixed search order for alternative start times:
// slightly later first, then slightly earlier, then further out.
var altOffsets = []int{30, 60, -30, -60, 90, -90}

// Overlapping returns the reservations whose window conflicts with
// [startMin, endMin). Intervals are half-open: [a,b) and [c,d) overlap
// iff a < d && b > c. Callers pre-filter by date and status.
func Overlapping(startMin, endMin int, reservations []db.Reservation) []db.Reservation {
	var out []db.Reservation
	for _, r := range reservations {
		if startMin < r.EndMinutes() && endMin > r.StartMin {
			out = append(out, r)
		}
	}
	return out
}

// EventGuestCount sums party sizes of event-type reservations,
// ignoring NORMAL ones, which sit on tables instead of the shared pool.
func EventGuestCount(reservations []db.Reservation) int {
	total := 0
	for _, r := range reservations {
		if r.EventType != db.EventNormal {
			total += r.PartySize
		}
	}
	return total
}

type AvailabilityService struct {
	tables []venue.Table
}

func NewAvailabilityService(tables []venue.Table) *AvailabilityService {
	return &AvailabilityService{tables: tables}
}

// CheckSlot decides whether one slot is bookable against a snapshot of
// the day's active reservations. Pure: no locking, no I/O.
func (s *AvailabilityService) CheckSlot(req entities.SlotRequest, active []db.Reservation) entities.SlotDecision {
	startMin := req.StartMin
	endMin := req.EndMin
	if endMin == 0 {
		endMin = startMin + db.BlockMinutes
	}

	if req.EventType == db.EventChildParty && startMin > childPartyLatestStart {
		return entities.SlotDecision{
			Reason: "Las fiestas infantiles deben empezar a las 20:30 como muy tarde",
		}
	}
	if req.EventType == db.EventExclusiveNight && startMin < exclusiveEarliestStart {
		return entities.SlotDecision{
			Reason: "Las noches exclusivas empiezan a partir de las 21:30",
		}
	}

	overlapping := Overlapping(startMin, endMin, active)

	for _, r := range overlapping {
		if r.IsExclusive {
			return entities.SlotDecision{
				Reason: "Esa franja está bloqueada por un evento exclusivo",
			}
		}
	}

	switch req.EventType {
	case db.EventNormal:
		occupied := make(map[string]bool)
		for _, r := range overlapping {
			for _, id := range r.TableIDList() {
				occupied[id] = true
			}
		}
		tables := s.FindTableCombination(req.PartySize, occupied, req.PreferredZone)
		if tables == nil {
			reason := fmt.Sprintf("No hay mesa libre para %d personas", req.PartySize)
			if req.PreferredZone != "" {
				reason = fmt.Sprintf("No hay mesa libre para %d personas en la zona %s", req.PartySize, req.PreferredZone)
			}
			return entities.SlotDecision{Reason: reason}
		}
		return entities.SlotDecision{Available: true, Tables: tables}

	case db.EventExclusiveNight:
		// An exclusive night needs the whole block empty, not just
		// free of exclusive overlaps.
		if len(overlapping) > 0 {
			return entities.SlotDecision{
				Reason: fmt.Sprintf("Para una noche exclusiva el local debe estar vacío y ya hay %d reservas en esa franja", len(overlapping)),
			}
		}
		return entities.SlotDecision{Available: true}

	default:
		current := EventGuestCount(overlapping)
		if current+req.PartySize > EventCapacity {
			return entities.SlotDecision{
				Reason: fmt.Sprintf("Aforo de eventos %d/%d ocupado, no caben %d personas más", current, EventCapacity, req.PartySize),
			}
		}
		return entities.SlotDecision{Available: true}
	}
}

// FindAlternatives proposes up to 3 alternative start times after a
// rejection, probing fixed offsets in order and re-running the full
// check at each candidate. Candidates that would leave the day are
// skipped.
func (s *AvailabilityService) FindAlternatives(req entities.SlotRequest, active []db.Reservation) []string {
	endMin := req.EndMin
	if endMin == 0 {
		endMin = req.StartMin + db.BlockMinutes
	}
	duration := endMin - req.StartMin

	var out []string
	for _, offset := range altOffsets {
		start := req.StartMin + offset
		if start < 0 || start+duration > minutesPerDay {
			continue
		}
		candidate := req
		candidate.StartMin = start
		candidate.EndMin = start + duration
		if s.CheckSlot(candidate, active).Available {
			out = append(out, MinutesToClock(start))
			if len(out) == alternativesWanted {
				break
			}
		}
	}
	return out
}

// MinutesToClock renders minutes-of-day as HH:MM.
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
