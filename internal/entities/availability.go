package entities

import (
	"time"

	"braseria/internal/venue"
)

// SlotRequest describes a candidate booking window. Times are minutes
// within the day (0-1439, half-open interval).
type SlotRequest struct {
	Date          time.Time
	StartMin      int
	EndMin        int // 0 means default block
	EventType     string
	PartySize     int
	PreferredZone venue.Zone // empty means no preference
}

// SlotDecision is the availability verdict for one slot. Reason is a
// user-facing sentence, only set on rejection. Tables is only set for
// NORMAL reservations.
type SlotDecision struct {
	Available bool          `json:"available"`
	Reason    string        `json:"reason,omitempty"`
	Tables    []venue.Table `json:"tables,omitempty"`
}

// DateAvailability summarizes one day for the consult flow.
type DateAvailability struct {
	Date               time.Time `json:"date"`
	FreeTablesAtPrime  int       `json:"free_tables_at_prime"`
	EventSeatsRemained int       `json:"event_seats_remaining"`
	ExclusiveBlocked   bool      `json:"exclusive_blocked"`
}
