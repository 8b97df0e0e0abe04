package db

import (
	"strings"
	"time"
)

// BlockMinutes is the default reservation window when no explicit end
// time is given.
const BlockMinutes = 120

// Event types.
const (
	EventNormal         = "NORMAL"
	EventChildParty     = "CHILD_PARTY"
	EventSeatedGroup    = "SEATED_GROUP"
	EventStandingGroup  = "STANDING_GROUP"
	EventExclusiveNight = "EXCLUSIVE_NIGHT"
)

// Reservation statuses. HOLD_BLOCKED and CONFIRMED are the only ones
// that count toward conflicts and capacity.
const (
	StatusHoldBlocked = "HOLD_BLOCKED"
	StatusConfirmed   = "CONFIRMED"
	StatusCompleted   = "COMPLETED"
	StatusCanceled    = "CANCELED"
	StatusNoShow      = "NO_SHOW"
)

func IsEventType(t string) bool {
	switch t {
	case EventChildParty, EventSeatedGroup, EventStandingGroup, EventExclusiveNight:
		return true
	}
	return false
}

func IsKnownEventType(t string) bool {
	return t == EventNormal || IsEventType(t)
}

type Reservation struct {
	ID              int
	Code            string
	Date            time.Time
	StartMin        int
	EndMin          int // 0 means StartMin + BlockMinutes
	PartySize       int
	EventType       string
	Status          string
	IsExclusive     bool
	TableIDs        string // comma-joined, empty for event types
	CustomerName    string
	Phone           string
	Email           string
	MenuCode        string
	DrinkTickets    int
	ExtrasCode      string
	Total           float64
	Deposit         float64
	PaymentDeadline *time.Time
	StripeSessionID string
	PaymentStatus   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r *Reservation) EndMinutes() int {
	if r.EndMin > 0 {
		return r.EndMin
	}
	return r.StartMin + BlockMinutes
}

func (r *Reservation) Active() bool {
	return r.Status == StatusHoldBlocked || r.Status == StatusConfirmed
}

func (r *Reservation) TableIDList() []string {
	if r.TableIDs == "" {
		return nil
	}
	return strings.Split(r.TableIDs, ",")
}

// ConversationState is the phone-keyed dialog session row.
type ConversationState struct {
	Phone     string
	Step      string
	Data      map[string]string
	UpdatedAt time.Time
}
