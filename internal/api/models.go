package api

// Availability
type AvailabilityRequest struct {
	Date      string `json:"date"`       // 2006-01-02
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time,omitempty"`
	EventType string `json:"event_type"`
	PartySize int    `json:"party_size"`
	Zone      string `json:"zone,omitempty"`
}

type AlternativesResponse struct {
	Alternatives []string `json:"alternatives"`
}

// Quote
type QuoteRequest struct {
	MenuCode     string   `json:"menu_code"`
	PartySize    int      `json:"party_size"`
	DrinkTickets int      `json:"drink_tickets,omitempty"`
	Extras       []string `json:"extras,omitempty"`
}

// Reservation
type CreateReservationRequest struct {
	Date         string   `json:"date"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time,omitempty"`
	EventType    string   `json:"event_type"`
	PartySize    int      `json:"party_size"`
	Zone         string   `json:"zone,omitempty"`
	MenuCode     string   `json:"menu_code,omitempty"`
	DrinkTickets int      `json:"drink_tickets,omitempty"`
	Extras       []string `json:"extras,omitempty"`
	CustomerName string   `json:"customer_name"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email,omitempty"`
}
