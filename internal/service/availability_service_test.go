package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braseria/internal/db"
	"braseria/internal/entities"
	"braseria/internal/venue"
)

func clock(hh, mm int) int { return hh*60 + mm }

func activeReservation(startMin, endMin, partySize int, eventType string, tableIDs string) db.Reservation {
	return db.Reservation{
		StartMin:  startMin,
		EndMin:    endMin,
		PartySize: partySize,
		EventType: eventType,
		Status:    db.StatusConfirmed,
		TableIDs:  tableIDs,
	}
}

func TestOverlapping(t *testing.T) {
	t.Run("half-open intervals", func(t *testing.T) {
		res := []db.Reservation{activeReservation(clock(14, 0), clock(16, 0), 2, db.EventNormal, "O1")}

		assert.Len(t, Overlapping(clock(15, 0), clock(17, 0), res), 1)
		assert.Len(t, Overlapping(clock(13, 0), clock(14, 30), res), 1)
		// Touching endpoints do not overlap.
		assert.Empty(t, Overlapping(clock(16, 0), clock(18, 0), res))
		assert.Empty(t, Overlapping(clock(12, 0), clock(14, 0), res))
	})

	t.Run("symmetry", func(t *testing.T) {
		windows := [][2]int{
			{clock(12, 0), clock(14, 0)},
			{clock(13, 30), clock(15, 30)},
			{clock(14, 0), clock(16, 0)},
			{clock(20, 0), clock(22, 0)},
			{clock(0, 0), clock(23, 59)},
		}
		for _, a := range windows {
			for _, b := range windows {
				asRes := []db.Reservation{activeReservation(b[0], b[1], 2, db.EventNormal, "O1")}
				bsRes := []db.Reservation{activeReservation(a[0], a[1], 2, db.EventNormal, "O1")}
				ab := len(Overlapping(a[0], a[1], asRes)) > 0
				ba := len(Overlapping(b[0], b[1], bsRes)) > 0
				assert.Equal(t, ab, ba, "overlap(%v,%v) must be symmetric", a, b)
			}
		}
	})

	t.Run("missing end time defaults to 120 minutes", func(t *testing.T) {
		res := []db.Reservation{activeReservation(clock(20, 0), 0, 2, db.EventNormal, "O1")}
		assert.Len(t, Overlapping(clock(21, 30), clock(23, 30), res), 1)
		assert.Empty(t, Overlapping(clock(22, 0), clock(23, 59), res))
	})
}

func TestEventGuestCount(t *testing.T) {
	res := []db.Reservation{
		activeReservation(clock(20, 0), clock(22, 0), 4, db.EventNormal, "O3"),
		activeReservation(clock(20, 0), clock(22, 0), 30, db.EventSeatedGroup, ""),
		activeReservation(clock(20, 0), clock(22, 0), 50, db.EventStandingGroup, ""),
	}
	assert.Equal(t, 80, EventGuestCount(res))
}

func TestCheckSlot(t *testing.T) {
	svc := NewAvailabilityService(venue.Catalog())

	t.Run("normal booking on empty day gets tightest outside table", func(t *testing.T) {
		decision := svc.CheckSlot(entities.SlotRequest{
			StartMin:      clock(14, 0),
			EndMin:        clock(16, 0),
			EventType:     db.EventNormal,
			PartySize:     2,
			PreferredZone: venue.ZoneOutside,
		}, nil)

		require.True(t, decision.Available)
		require.Len(t, decision.Tables, 1)
		assert.Equal(t, 2, decision.Tables[0].Capacity)
		assert.Equal(t, venue.ZoneOutside, decision.Tables[0].Zone)
	})

	t.Run("child party after 20:30 is rejected", func(t *testing.T) {
		decision := svc.CheckSlot(entities.SlotRequest{
			StartMin:  clock(21, 0),
			EventType: db.EventChildParty,
			PartySize: 10,
		}, nil)

		require.False(t, decision.Available)
		assert.Contains(t, decision.Reason, "20:30")
	})

	t.Run("exclusive night before 21:30 is rejected", func(t *testing.T) {
		decision := svc.CheckSlot(entities.SlotRequest{
			StartMin:  clock(20, 0),
			EventType: db.EventExclusiveNight,
			PartySize: 30,
		}, nil)

		require.False(t, decision.Available)
		assert.Contains(t, decision.Reason, "21:30")
	})

	t.Run("exclusive overlap blocks everything", func(t *testing.T) {
		exclusive := activeReservation(clock(21, 30), clock(23, 30), 60, db.EventExclusiveNight, "")
		exclusive.IsExclusive = true

		decision := svc.CheckSlot(entities.SlotRequest{
			StartMin:  clock(22, 0),
			EventType: db.EventNormal,
			PartySize: 2,
		}, []db.Reservation{exclusive})

		require.False(t, decision.Available)
		assert.Contains(t, decision.Reason, "exclusivo")
	})

	t.Run("exclusive night needs the block completely empty", func(t *testing.T) {
		decision := svc.CheckSlot(entities.SlotRequest{
			StartMin:  clock(21, 30),
			EventType: db.EventExclusiveNight,
			PartySize: 40,
		}, []db.Reservation{activeReservation(clock(21, 0), clock(23, 0), 2, db.EventNormal, "I1")})

		assert.False(t, decision.Available)
	})

	t.Run("event capacity rejection cites the numbers", func(t *testing.T) {
		active := []db.Reservation{
			activeReservation(clock(20, 0), clock(22, 0), 30, db.EventSeatedGroup, ""),
			activeReservation(clock(20, 0), clock(22, 0), 50, db.EventStandingGroup, ""),
		}
		decision := svc.CheckSlot(entities.SlotRequest{
			StartMin:  clock(20, 0),
			EventType: db.EventChildParty,
			PartySize: 30,
		}, active)

		require.False(t, decision.Available)
		assert.Contains(t, decision.Reason, "80/100")
		assert.Contains(t, decision.Reason, "30")
	})

	t.Run("event capacity accepts when the pool still fits", func(t *testing.T) {
		active := []db.Reservation{
			activeReservation(clock(20, 0), clock(22, 0), 30, db.EventSeatedGroup, ""),
			// NORMAL party sizes never count against the event pool.
			activeReservation(clock(20, 0), clock(22, 0), 8, db.EventNormal, "O6"),
		}
		decision := svc.CheckSlot(entities.SlotRequest{
			StartMin:  clock(20, 0),
			EventType: db.EventSeatedGroup,
			PartySize: 70,
		}, active)

		assert.True(t, decision.Available)
	})

	t.Run("normal rejection names party size and zone", func(t *testing.T) {
		// All inside tables taken.
		active := []db.Reservation{activeReservation(clock(20, 0), clock(22, 0), 20, db.EventNormal, "I1,I2,I3,I4,I5")}
		all := append(active, activeReservation(clock(20, 0), clock(22, 0), 20, db.EventNormal, "O1,O2,O3,O4,O5,O6"))

		decision := svc.CheckSlot(entities.SlotRequest{
			StartMin:      clock(20, 0),
			EventType:     db.EventNormal,
			PartySize:     6,
			PreferredZone: venue.ZoneInside,
		}, all)

		require.False(t, decision.Available)
		assert.Contains(t, decision.Reason, "6")
		assert.Contains(t, decision.Reason, "inside")
	})

	t.Run("default block duration applies when end is zero", func(t *testing.T) {
		active := []db.Reservation{activeReservation(clock(21, 0), clock(23, 0), 60, db.EventStandingGroup, "")}
		decision := svc.CheckSlot(entities.SlotRequest{
			StartMin:  clock(20, 0), // runs until 22:00, overlapping the group
			EventType: db.EventSeatedGroup,
			PartySize: 50,
		}, active)

		assert.False(t, decision.Available)
	})
}

func TestFindAlternatives(t *testing.T) {
	svc := NewAvailabilityService(venue.Catalog())

	t.Run("fixed probe order and cap of three", func(t *testing.T) {
		// Pool: 70 guests from 19:00 to 23:59 except a gap; craft so the
		// original 20:00 and +30 fail but later probes succeed.
		active := []db.Reservation{
			activeReservation(clock(19, 0), clock(22, 30), 90, db.EventSeatedGroup, ""),
		}
		req := entities.SlotRequest{
			StartMin:  clock(20, 0),
			EventType: db.EventSeatedGroup,
			PartySize: 30,
		}
		require.False(t, svc.CheckSlot(req, active).Available)

		// +30 (20:30) and +60 (21:00) still overlap the block; -30, -60
		// overlap too; +90 (21:30) ends 23:30, overlaps; -90 (18:30) ends
		// 20:30, overlaps. Nothing fits.
		assert.Empty(t, svc.FindAlternatives(req, active))

		// Shrink the block so probes after it succeed.
		active = []db.Reservation{
			activeReservation(clock(19, 0), clock(20, 30), 90, db.EventSeatedGroup, ""),
		}
		got := svc.FindAlternatives(req, active)
		// +30 → 20:30 ok, +60 → 21:00 ok, -30 → 19:30 overlaps, -60 →
		// 19:00 overlaps, +90 → 21:30 ok. Three found, search stops.
		assert.Equal(t, []string{"20:30", "21:00", "21:30"}, got)
	})

	t.Run("never proposes the rejected slot", func(t *testing.T) {
		active := []db.Reservation{
			activeReservation(clock(19, 0), clock(20, 30), 90, db.EventSeatedGroup, ""),
		}
		req := entities.SlotRequest{
			StartMin:  clock(20, 0),
			EventType: db.EventSeatedGroup,
			PartySize: 30,
		}
		for _, alt := range svc.FindAlternatives(req, active) {
			assert.NotEqual(t, MinutesToClock(req.StartMin), alt)
		}
	})

	t.Run("skips candidates that leave the day", func(t *testing.T) {
		req := entities.SlotRequest{
			StartMin:  clock(0, 15),
			EventType: db.EventSeatedGroup,
			PartySize: 101, // always rejected, so every probe re-fails too
		}
		assert.Empty(t, svc.FindAlternatives(req, nil))

		// A bookable party near midnight only yields in-day candidates.
		req.PartySize = 10
		got := svc.FindAlternatives(req, []db.Reservation{
			activeReservation(clock(0, 0), clock(23, 59), 95, db.EventStandingGroup, ""),
		})
		assert.Empty(t, got)
	})

	t.Run("respects time-window gates at each candidate", func(t *testing.T) {
		// Child party at 20:30 rejected only by occupancy; +30/+60/+90
		// would pass capacity but violate the 20:30 gate.
		active := []db.Reservation{
			activeReservation(clock(19, 30), clock(21, 0), 95, db.EventSeatedGroup, ""),
		}
		req := entities.SlotRequest{
			StartMin:  clock(20, 30),
			EventType: db.EventChildParty,
			PartySize: 20,
		}
		require.False(t, svc.CheckSlot(req, active).Available)

		got := svc.FindAlternatives(req, active)
		// Only earlier probes are eligible: -30 → 20:00 overlaps, -60 →
		// 19:30 overlaps, -90 → 19:00 ends 21:00... overlaps too.
		assert.Empty(t, got)
	})
}

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "09:05", MinutesToClock(clock(9, 5)))
	assert.Equal(t, "21:30", MinutesToClock(clock(21, 30)))
	assert.Equal(t, "00:00", MinutesToClock(0))
}
