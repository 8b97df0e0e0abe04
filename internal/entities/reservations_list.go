package entities

import "time"

type ReservationResponse struct {
	Code            string     `json:"code"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	PartySize       int        `json:"party_size"`
	EventType       string     `json:"event_type"`
	Status          string     `json:"status"`
	Tables          []string   `json:"tables,omitempty"`
	CustomerName    string     `json:"customer_name"`
	Phone           string     `json:"phone"`
	MenuCode        string     `json:"menu_code,omitempty"`
	Total           float64    `json:"total,omitempty"`
	Deposit         float64    `json:"deposit,omitempty"`
	PaymentStatus   string     `json:"payment_status,omitempty"`
	PaymentDeadline *time.Time `json:"payment_deadline,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ReservationsList struct {
	Total        int                   `json:"total"`
	Reservations []ReservationResponse `json:"reservations"`
}
