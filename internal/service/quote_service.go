package service

import (
	"fmt"
	"math"
	"time"

	"braseria/internal/db"
	"braseria/internal/entities"
	errsx "braseria/internal/errors"
)

// Business constants. Prices and windows are fixed, not configurable.
const (
	DrinkTicketPrice = 3
	DepositRate      = 0.40

	MinAdvanceNormal = 4 * time.Hour
	MinAdvanceEvent  = 5 * 24 * time.Hour
	PaymentDeadline  = 5 * 24 * time.Hour
	CancelNotice     = 72 * time.Hour
)

// menus is the closed set of bookable menus. Anything else is a
// configuration problem, never passed through.
var menus = []entities.MenuOption{
	{Code: "menu_infantil_15", Label: "Menú infantil", PricePerPerson: 15},
	{Code: "menu_picoteo_20", Label: "Menú picoteo", PricePerPerson: 20},
	{Code: "menu_grupo_29", Label: "Menú de grupo", PricePerPerson: 29},
	{Code: "menu_grupo_39", Label: "Menú de grupo premium", PricePerPerson: 39},
	{Code: "menu_degustacion_49", Label: "Menú degustación", PricePerPerson: 49},
}

// extrasSurcharge maps extra-hour blocks to their flat surcharge.
var extrasSurcharge = map[string]float64{
	"02:00": 100,
	"03:00": 300,
}

type QuoteService struct{}

func NewQuoteService() *QuoteService {
	return &QuoteService{}
}

func (s *QuoteService) Menus() []entities.MenuOption {
	out := make([]entities.MenuOption, len(menus))
	copy(out, menus)
	return out
}

func (s *QuoteService) MenuByCode(code string) (entities.MenuOption, bool) {
	for _, m := range menus {
		if m.Code == code {
			return m, true
		}
	}
	return entities.MenuOption{}, false
}

// Calculate prices a booking: menu price per person times party size,
// plus drink tickets, plus extra-hour surcharges. The deposit is 40% of
// the total, rounded to cents.
func (s *QuoteService) Calculate(menuCode string, partySize, drinkTickets int, extras []string) (*entities.Quote, error) {
	if partySize <= 0 {
		return nil, errsx.NewValidation("party_size", "debe ser mayor que cero")
	}
	if drinkTickets < 0 {
		return nil, errsx.NewValidation("drink_tickets", "no puede ser negativo")
	}
	menu, ok := s.MenuByCode(menuCode)
	if !ok {
		return nil, errsx.NewConfiguration(fmt.Sprintf("menú desconocido: %q", menuCode))
	}

	var extrasTotal float64
	for _, code := range extras {
		surcharge, ok := extrasSurcharge[code]
		if !ok {
			return nil, errsx.NewConfiguration(fmt.Sprintf("extra desconocido: %q", code))
		}
		extrasTotal += surcharge
	}

	total := float64(menu.PricePerPerson*partySize+drinkTickets*DrinkTicketPrice) + extrasTotal
	return &entities.Quote{
		MenuCode:     menuCode,
		PartySize:    partySize,
		DrinkTickets: drinkTickets,
		Extras:       extrasTotal,
		Total:        total,
		Deposit:      round2(total * DepositRate),
	}, nil
}

// MinAdvance returns the minimum advance notice for a booking type.
func MinAdvance(eventType string) time.Duration {
	if db.IsEventType(eventType) {
		return MinAdvanceEvent
	}
	return MinAdvanceNormal
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
