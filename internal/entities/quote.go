package entities

type Quote struct {
	MenuCode     string  `json:"menu_code"`
	PartySize    int     `json:"party_size"`
	DrinkTickets int     `json:"drink_tickets"`
	Extras       float64 `json:"extras"`
	Total        float64 `json:"total"`
	Deposit      float64 `json:"deposit"`
}

type MenuOption struct {
	Code           string `json:"code"`
	Label          string `json:"label"`
	PricePerPerson int    `json:"price_per_person"`
}
