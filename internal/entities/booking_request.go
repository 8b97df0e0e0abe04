package entities

import (
	"time"

	"braseria/internal/venue"
)

// BookingRequest carries everything needed to create a reservation,
// whether it was collected over the conversation flow or the HTTP API.
type BookingRequest struct {
	Date          time.Time
	StartMin      int
	EndMin        int // 0 means default block
	EventType     string
	PartySize     int
	PreferredZone venue.Zone
	MenuCode      string
	DrinkTickets  int
	Extras        []string
	CustomerName  string
	Phone         string
	Email         string
}

type BookingResponse struct {
	Code            string     `json:"code"`
	Status          string     `json:"status"`
	Tables          []string   `json:"tables,omitempty"`
	Total           float64    `json:"total,omitempty"`
	Deposit         float64    `json:"deposit,omitempty"`
	PaymentURL      string     `json:"payment_url,omitempty"`
	PaymentDeadline *time.Time `json:"payment_deadline,omitempty"`
}
